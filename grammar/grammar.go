package grammar

import (
	"sort"

	"github.com/hansoksendahl/cowbird"
)

const (
	InitialState = 0
	EndMarker    = -1
)

// Accept is the action stored under EndMarker when the augmented production
// is fully recognized. Positive actions are shift targets, negative ones are
// encoded reductions.
const Accept = 0

// Reduce encodes reduction by given production as a table action.
func Reduce(prod int) int {
	return -(prod + 1)
}

// ReduceProd decodes a production index from a negative table action.
func ReduceProd(action int) int {
	return -action - 1
}

type SymbolKind int

const (
	TermSymbol SymbolKind = iota
	NontermSymbol
)

type Symbol struct {
	Kind SymbolKind
	Name string `json:",omitempty"`
	Re   string `json:",omitempty"`
	Uses int    `json:",omitempty"`
}

// Text returns the defining text of the symbol: pattern source for terminals,
// name for non-terminals.
func (s Symbol) Text() string {
	if s.Kind == TermSymbol {
		return s.Re
	}
	return s.Name
}

// Anchor wraps a terminal pattern so it only matches at the start of input.
func Anchor(re string) string {
	return `\A(?:` + re + `)`
}

type Production struct {
	Nonterm int
	Symbols []int
	Action  cowbird.Action `json:"-"`
}

type TermAction struct {
	Term, Action int
}

type NontermGoto struct {
	Nonterm, State int
}

// State holds one row of each parse table.
// Both slices are sorted by symbol index, EndMarker entry (if any) first.
type State struct {
	Actions []TermAction  `json:",omitempty"`
	Gotos   []NontermGoto `json:",omitempty"`
}

func (st State) Action(term int) (action int, found bool) {
	i := sort.Search(len(st.Actions), func(i int) bool {
		return st.Actions[i].Term >= term
	})
	if i < len(st.Actions) && st.Actions[i].Term == term {
		return st.Actions[i].Action, true
	}
	return 0, false
}

func (st State) Goto(nonterm int) (state int, found bool) {
	i := sort.Search(len(st.Gotos), func(i int) bool {
		return st.Gotos[i].Nonterm >= nonterm
	})
	if i < len(st.Gotos) && st.Gotos[i].Nonterm == nonterm {
		return st.Gotos[i].State, true
	}
	return 0, false
}

// Config is a production with a dot position marking recognition progress.
type Config struct {
	Nonterm int
	Symbols []int
	Dot     int
}

type ConfigSet []Config

type Grammar struct {
	Symbols []Symbol
	Prods   []Production
	States  []State

	// Configs holds the raw configuration set behind each state.
	// Filled only when the grammar is compiled in debug mode.
	Configs []ConfigSet `json:",omitempty"`

	// Start and Augmented are symbol indexes of the start non-terminal
	// and the synthetic augmented one.
	Start     int
	Augmented int
}
