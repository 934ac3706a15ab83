package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/gramfile"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.toml>",
		Short: "Compile a grammar file and report its size",
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

			fmt.Printf("%s: %d symbols, %d productions, %d states\n",
				args[0], len(g.Symbols), len(g.Prods), len(g.States))
			return nil
		},
	}
}
