package parser

import (
	"regexp"

	"github.com/tliron/commonlog"

	"github.com/hansoksendahl/cowbird/grammar"
	"github.com/hansoksendahl/cowbird/source"
)

var log = commonlog.GetLogger("cowbird.parser")

// Parser executes a compiled grammar against source texts. It holds no
// mutable state, one Parser may serve any number of concurrent Parse calls.
type Parser struct {
	g        *grammar.Grammar
	patterns []*regexp.Regexp
}

// New prepares a parser for a compiled grammar. Terminal patterns were
// already validated during grammar compilation, so compiling their anchored
// forms here cannot fail.
func New(g *grammar.Grammar) *Parser {
	p := &Parser{g: g, patterns: make([]*regexp.Regexp, len(g.Symbols))}
	for i, s := range g.Symbols {
		if s.Kind == grammar.TermSymbol {
			p.patterns[i] = regexp.MustCompile(grammar.Anchor(s.Re))
		}
	}
	return p
}

// Parse runs the automaton over the whole source. binding is handed to every
// invoked semantic action. On acceptance returns the final value stack, on
// failure a ChokedError pointing at the position the automaton stopped at.
// The first error returned by an action aborts the parse.
func (p *Parser) Parse(src *source.Source, binding any) ([]any, error) {
	pc := &parseContext{
		parser:  p,
		src:     src,
		binding: binding,
		states:  []int{grammar.InitialState},
	}
	return pc.run()
}

// ParseString parses an unnamed source holding the given text.
func (p *Parser) ParseString(text string, binding any) ([]any, error) {
	return p.Parse(source.New("", []byte(text)), binding)
}

// parseContext is the state of one Parse call: the automaton state stack,
// the value stack growing and shrinking in lockstep with it, and the scan
// position. Discarded when the call returns.
type parseContext struct {
	parser  *Parser
	src     *source.Source
	binding any

	states []int
	vals   []any
	pos    int
}

func (pc *parseContext) run() ([]any, error) {
	g := pc.parser.g
	content := pc.src.Content()

	for len(pc.states) > 0 {
		row := g.States[pc.states[len(pc.states)-1]].Actions
		rest := content[pc.pos:]

		// The end marker entry, if any, sorts first in the row. A shift
		// match always beats it, the longest match beats a shorter one and
		// ties keep the earliest entry.
		bestLen := -1
		bestState := 0
		candidate := 0
		hasCandidate := false
		for _, ta := range row {
			switch {
			case ta.Action > 0:
				m := pc.parser.patterns[ta.Term].Find(rest)
				if m != nil && len(m) > bestLen {
					bestLen = len(m)
					bestState = ta.Action
				}
			case ta.Action < 0, pc.pos == len(content):
				candidate = ta.Action
				hasCandidate = true
			}
		}

		switch {
		case bestLen >= 0:
			pc.shift(string(rest[:bestLen]), bestState)

		case !hasCandidate:
			return nil, chokedError(pc.src, pc.pos)

		case candidate == grammar.Accept:
			log.Debugf("source %q: accepted, %d values", pc.src.Name(), len(pc.vals))
			return pc.vals, nil

		default:
			e := pc.reduce(grammar.ReduceProd(candidate))
			if e != nil {
				return nil, e
			}
		}
	}

	return nil, chokedError(pc.src, pc.pos)
}

// shift consumes the matched text and any spaces right after it, then pushes
// the text and the target state. Only the matched text lands on the value
// stack, elided spaces never do.
func (pc *parseContext) shift(matched string, state int) {
	pc.vals = append(pc.vals, matched)
	pc.states = append(pc.states, state)

	content := pc.src.Content()
	pc.pos += len(matched)
	for pc.pos < len(content) && content[pc.pos] == ' ' {
		pc.pos++
	}
}

// reduce pops the production's symbols off both stacks, follows the exposed
// state's goto for the left side, then runs the action if there is one. An
// alternative without an action consumes its values and produces none, so
// either stack may run out before the full length is popped.
func (pc *parseContext) reduce(prod int) error {
	g := pc.parser.g
	p := g.Prods[prod]

	si := len(pc.states) - len(p.Symbols)
	if si < 0 {
		si = 0
	}
	pc.states = pc.states[:si]

	vi := len(pc.vals) - len(p.Symbols)
	if vi < 0 {
		vi = 0
	}
	args := make([]any, len(pc.vals)-vi)
	copy(args, pc.vals[vi:])
	pc.vals = pc.vals[:vi]

	if len(pc.states) > 0 {
		next, found := g.States[pc.states[len(pc.states)-1]].Goto(p.Nonterm)
		if found {
			pc.states = append(pc.states, next)
		}
	}

	if p.Action == nil {
		return nil
	}

	res, e := p.Action(args, pc.binding)
	if e != nil {
		return e
	}
	pc.vals = append(pc.vals, res)
	return nil
}
