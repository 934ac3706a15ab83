package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/gramfile"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <grammar.toml>",
		Short: "Dump compiled symbols, productions and parse tables as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, start, err := gramfile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := gramdef.Compile(def, start)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(g, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
