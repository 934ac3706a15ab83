package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/gramfile"
	"github.com/hansoksendahl/cowbird/parser"
	"github.com/hansoksendahl/cowbird/source"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <grammar.toml> [input-file]",
		Short: "Parse a text with a grammar file, printing the parse tree",
		Long: `Parse a text with a grammar file.

Grammar files carry no semantic actions, so every alternative gets a
tree-building one and the result is printed as an s-expression. With no
input file the text is read from stdin. A trailing newline is trimmed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, start, err := gramfile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := gramdef.Compile(gramfile.WithTrees(def), start)
			if err != nil {
				return err
			}

			name := "stdin"
			var data []byte
			if len(args) > 1 {
				name = args[1]
				data, err = os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			data = bytes.TrimRight(data, "\r\n")

			vals, err := parser.New(g).Parse(source.New(name, data), nil)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Println(v)
			}
			return nil
		},
	}
}
