package gramdef

import (
	"sort"

	"github.com/hansoksendahl/cowbird/grammar"
)

// buildTables derives shift, reduce and goto entries from each discovered
// configuration set. Configurations are visited in set order and the first
// action recorded for a symbol stays, later conflicting ones are dropped.
func (c *compiler) buildTables(e error) error {
	if e != nil {
		return e
	}

	dropped := 0
	states := make([]grammar.State, len(c.sets))
	for si, cs := range c.sets {
		terms := make(map[int]int)
		gotos := make(map[int]int)

		for _, cfg := range cs {
			if cfg.Dot >= len(cfg.Symbols) {
				action := grammar.Accept
				if cfg.Nonterm != c.g.Augmented {
					action = grammar.Reduce(c.prodIndex[prodKey(cfg.Nonterm, cfg.Symbols)])
				}
				if record(terms, grammar.EndMarker, action) {
					dropped++
				}
				continue
			}

			x := cfg.Symbols[cfg.Dot]
			succ, _ := c.keys.Get(encodeSet(c.successor(cs, x)))
			if c.g.Symbols[x].Kind == grammar.NontermSymbol {
				if record(gotos, x, succ) {
					dropped++
				}
			} else {
				if record(terms, x, succ) {
					dropped++
				}
			}
		}

		states[si] = freezeState(terms, gotos)
	}

	if dropped > 0 {
		log.Debugf("grammar %q: %d conflicting actions dropped", c.start, dropped)
	}

	c.g.States = states
	if c.debug {
		c.g.Configs = c.sets
	}
	return nil
}

// record stores the action unless the slot is already taken, first writer
// wins. Reports whether a conflicting action was dropped.
func record(m map[int]int, key, value int) bool {
	old, has := m[key]
	if !has {
		m[key] = value
		return false
	}

	return old != value
}

func freezeState(terms, gotos map[int]int) grammar.State {
	var st grammar.State
	for _, k := range sortedKeys(terms) {
		st.Actions = append(st.Actions, grammar.TermAction{Term: k, Action: terms[k]})
	}
	for _, k := range sortedKeys(gotos) {
		st.Gotos = append(st.Gotos, grammar.NontermGoto{Nonterm: k, State: gotos[k]})
	}
	return st
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
