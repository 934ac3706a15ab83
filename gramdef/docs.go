/*
Package gramdef compiles grammar definitions to grammar.Grammar structure.

A definition maps non-terminal names to ordered lists of alternatives:

	def := gramdef.Def{
		"sum": {
			"<num>",
			`<this> \+ <num>`, func(args []any, binding any) (any, error) {
				return args[0].(float64) + args[2].(float64), nil
			},
		},
		"num": {`[0-9]+`, parseNum},
	}
	g, e := gramdef.Compile(def, "sum")

An alternative is a string of whitespace-separated tokens. A bare token is a
terminal: an RE2 regular expression matched directly against input text,
anchored at the current scan position. Since alternatives are split on
whitespace a pattern itself must not contain space characters, use escapes
like \x20 or \s instead. Terminals are identified by pattern text: the same
text in any alternative of any non-terminal names the same terminal.

A <name> token references the non-terminal called name, which must have an
entry in the definition map. The reference <this> stands for the non-terminal
being defined:

	"list": {"<item>", "<this> , <item>"}

accepts one or more comma-separated items. Entries not reachable from the
start non-terminal are ignored.

A cowbird.Action value placed in the list right after an alternative becomes
that alternative's semantic action. When the alternative is recognized the
action receives the values its matched symbols produced, in order, plus the
binding passed to the parse call, and its single result replaces them. A
matched terminal yields its matched text, a matched non-terminal yields
whatever its own alternative's action returned. An alternative without an
action yields nothing, so it never contributes an argument to actions above
it.

Grammars are not required to be unambiguous. When several parse decisions
compete, the terminal with the longest match is preferred, then the
alternative declared first; grammars relying on this must declare the winning
alternative first. After every matched terminal a run of space characters
(U+0020) is skipped.

Compile fails with cowbird.Error when the definition map is empty, the start
name is empty, a referenced non-terminal has no entry, a terminal pattern
does not compile, a definition list holds a value that is neither a string
nor an action, or an action has no alternative before it.
*/
package gramdef
