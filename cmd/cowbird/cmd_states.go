package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/gramfile"
	"github.com/hansoksendahl/cowbird/grammar"
)

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states <grammar.toml>",
		Short: "Dump automaton states with their configurations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, start, err := gramfile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := gramdef.Compile(def, start, gramdef.WithDebug())
			if err != nil {
				return err
			}

			var b strings.Builder
			for i, cs := range g.Configs {
				fmt.Fprintf(&b, "state %d\n", i)
				for _, cfg := range cs {
					b.WriteString("  ")
					b.WriteString(g.Symbols[cfg.Nonterm].Name)
					b.WriteString(" ->")
					for j, s := range cfg.Symbols {
						if j == cfg.Dot {
							b.WriteString(" .")
						}
						b.WriteByte(' ')
						b.WriteString(symbolText(g, s))
					}
					if cfg.Dot == len(cfg.Symbols) {
						b.WriteString(" .")
					}
					b.WriteByte('\n')
				}
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

// symbolText renders a symbol the way definitions spell it: non-terminals
// bracketed, terminals as their bare pattern.
func symbolText(g *grammar.Grammar, i int) string {
	s := g.Symbols[i]
	if s.Kind == grammar.NontermSymbol {
		return "<" + s.Name + ">"
	}
	return s.Re
}
