package gramdef

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/hansoksendahl/cowbird"
	"github.com/hansoksendahl/cowbird/grammar"
	"github.com/hansoksendahl/cowbird/internal/bmap"
)

var log = commonlog.GetLogger("cowbird.gramdef")

// Def maps non-terminal names to their definitions. Each definition is an
// ordered list of alternatives; an alternative is a string of
// whitespace-separated tokens, optionally followed by a cowbird.Action value
// attached to it. A bare token is a terminal pattern (RE2 syntax), <name>
// references the non-terminal called name, <this> references the
// non-terminal being defined.
type Def map[string][]any

type Option func(*compiler)

// WithDebug makes the compiled grammar retain the configuration set behind
// every automaton state.
func WithDebug() Option {
	return func(c *compiler) {
		c.debug = true
	}
}

const thisName = "this"

type symEntry struct {
	kind grammar.SymbolKind
	text string
	uses int
}

type prodEntry struct {
	nonterm int
	symbols []int
	action  cowbird.Action
}

// compiler holds all intermediate construction state, local to one Compile
// call. Symbols and productions are collected in discovery order first and
// renumbered by usage in finalize.
type compiler struct {
	def   Def
	start string
	debug bool

	syms  []symEntry
	index map[string]int
	prods []prodEntry

	g         *grammar.Grammar
	prodIndex map[string]int
	byNonterm map[int][]int

	sets []grammar.ConfigSet
	keys *bmap.BMap[int]
}

// Compile builds a parse-ready grammar from its definition. start names the
// root non-terminal; only non-terminals reachable from the root are compiled.
// Returns nil and cowbird.Error on error.
func Compile(def Def, start string, opts ...Option) (*grammar.Grammar, error) {
	c := &compiler{
		def:   def,
		start: start,
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}

	e := c.validate()
	e = c.tokenize(e)
	e = c.finalize(e)
	e = c.discover(e)
	e = c.buildTables(e)
	if e != nil {
		return nil, e
	}

	return c.g, nil
}

func (c *compiler) validate() error {
	if len(c.def) == 0 {
		return noDefError()
	}
	if c.start == "" {
		return noStartError()
	}
	return nil
}

func termKey(re string) string {
	return "$" + re
}

func nontermKey(name string) string {
	return ":" + name
}

// tokenize interns every symbol reachable from the augmented root and
// collects raw productions. The augmented alternative is processed like any
// other one, so its production lands last in the list, after everything the
// recursion discovered.
func (c *compiler) tokenize(e error) error {
	if e != nil {
		return e
	}

	augName := c.start + "'"
	aug := len(c.syms)
	c.syms = append(c.syms, symEntry{grammar.NontermSymbol, augName, 0})
	c.index[nontermKey(augName)] = aug

	_, e = c.alternative(augName, aug, "<"+c.start+">")
	return e
}

func (c *compiler) alternative(lhsName string, lhsSym int, body string) (int, error) {
	tokens := strings.Fields(body)
	symbols := make([]int, 0, len(tokens))
	for _, token := range tokens {
		var (
			si int
			e  error
		)
		if len(token) >= 2 && token[0] == '<' && token[len(token)-1] == '>' {
			name := token[1 : len(token)-1]
			if name == thisName {
				name = lhsName
			}
			si, e = c.useNonterm(name)
		} else {
			si, e = c.useTerm(token)
		}
		if e != nil {
			return 0, e
		}

		symbols = append(symbols, si)
	}

	c.prods = append(c.prods, prodEntry{lhsSym, symbols, nil})
	return len(c.prods) - 1, nil
}

func (c *compiler) useTerm(re string) (int, error) {
	key := termKey(re)
	i, has := c.index[key]
	if !has {
		_, e := regexp.Compile(grammar.Anchor(re))
		if e != nil {
			return 0, wrongPatternError(re, e)
		}

		i = len(c.syms)
		c.syms = append(c.syms, symEntry{grammar.TermSymbol, re, 0})
		c.index[key] = i
	}
	c.syms[i].uses++
	return i, nil
}

// useNonterm interns a non-terminal reference. The first reference to a name
// recurses into its definition, so productions of inner non-terminals are
// collected before the production of the referencing alternative.
func (c *compiler) useNonterm(name string) (int, error) {
	key := nontermKey(name)
	i, has := c.index[key]
	if !has {
		i = len(c.syms)
		c.syms = append(c.syms, symEntry{grammar.NontermSymbol, name, 0})
		c.index[key] = i

		e := c.nonterm(name, i)
		if e != nil {
			return 0, e
		}
	}
	c.syms[i].uses++
	return i, nil
}

func (c *compiler) nonterm(name string, sym int) error {
	items, has := c.def[name]
	if !has {
		return undefinedNontermError(name)
	}

	lastProd := -1
	for i, item := range items {
		switch it := item.(type) {
		case string:
			pi, e := c.alternative(name, sym, it)
			if e != nil {
				return e
			}
			lastProd = pi

		case cowbird.Action:
			if lastProd < 0 {
				return strayActionError(name, i)
			}
			c.prods[lastProd].action = it

		default:
			return wrongItemError(name, i, item)
		}
	}
	return nil
}

// finalize assigns permanent symbol indexes by descending usage count, stable
// on ties, and rewrites all productions to reference them.
func (c *compiler) finalize(e error) error {
	if e != nil {
		return e
	}

	order := make([]int, len(c.syms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return c.syms[order[i]].uses > c.syms[order[j]].uses
	})

	final := make([]int, len(c.syms))
	symbols := make([]grammar.Symbol, len(c.syms))
	for fi, di := range order {
		final[di] = fi
		entry := c.syms[di]
		s := grammar.Symbol{Kind: entry.kind, Uses: entry.uses}
		if entry.kind == grammar.TermSymbol {
			s.Re = entry.text
		} else {
			s.Name = entry.text
		}
		symbols[fi] = s
	}

	prods := make([]grammar.Production, len(c.prods))
	c.prodIndex = make(map[string]int, len(c.prods))
	c.byNonterm = make(map[int][]int)
	for pi, p := range c.prods {
		rhs := make([]int, len(p.symbols))
		for i, s := range p.symbols {
			rhs[i] = final[s]
		}
		lhs := final[p.nonterm]
		prods[pi] = grammar.Production{Nonterm: lhs, Symbols: rhs, Action: p.action}

		key := prodKey(lhs, rhs)
		_, has := c.prodIndex[key]
		if !has {
			c.prodIndex[key] = pi
		}
		c.byNonterm[lhs] = append(c.byNonterm[lhs], pi)
	}

	c.g = &grammar.Grammar{
		Symbols:   symbols,
		Prods:     prods,
		Start:     final[c.index[nontermKey(c.start)]],
		Augmented: final[c.index[nontermKey(c.start+"'")]],
	}
	return nil
}
