// Package gramfile loads grammar definitions from TOML files.
package gramfile

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/tree"
)

// File is the TOML shape of a grammar file:
//
//	start = "sum"
//
//	[rules]
//	sum = ["<num>", "<this> \\+ <num>"]
//	num = ["[0-9]+"]
type File struct {
	Start string              `toml:"start"`
	Rules map[string][]string `toml:"rules"`
}

// Parse decodes a TOML grammar definition and returns it together with the
// declared start symbol. TOML carries no functions, so the definition has no
// semantic actions, see WithTrees.
func Parse(data []byte) (gramdef.Def, string, error) {
	var f File
	e := toml.Unmarshal(data, &f)
	if e != nil {
		return nil, "", decodeError(e)
	}
	if len(f.Rules) == 0 {
		return nil, "", noRulesError()
	}
	if f.Start == "" {
		return nil, "", noStartError()
	}

	def := make(gramdef.Def, len(f.Rules))
	for name, alts := range f.Rules {
		items := make([]any, len(alts))
		for i, alt := range alts {
			items[i] = alt
		}
		def[name] = items
	}
	return def, f.Start, nil
}

// Load reads and decodes a TOML grammar file.
func Load(path string) (gramdef.Def, string, error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, "", readError(path, e)
	}
	return Parse(data)
}

// WithTrees returns a copy of the definition where every alternative is
// followed by a tree.NodeAction for its non-terminal, so parsing yields a
// single tree.Node. Alternatives that already carry an action keep it.
func WithTrees(def gramdef.Def) gramdef.Def {
	res := make(gramdef.Def, len(def))
	for name, items := range def {
		action := tree.NodeAction(name)
		out := make([]any, 0, len(items)*2)
		for _, item := range items {
			out = append(out, item)
			if _, is := item.(string); is {
				out = append(out, action)
			}
		}
		res[name] = out
	}
	return res
}
