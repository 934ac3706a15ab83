package gramdef

import (
	"strconv"

	"github.com/hansoksendahl/cowbird/grammar"
	"github.com/hansoksendahl/cowbird/internal/bmap"
	"github.com/hansoksendahl/cowbird/internal/ints"
	"github.com/hansoksendahl/cowbird/internal/queue"
)

func appendConfig(buf []byte, nonterm, dot int, symbols []int) []byte {
	buf = strconv.AppendInt(buf, int64(nonterm), 10)
	buf = append(buf, '.')
	buf = strconv.AppendInt(buf, int64(dot), 10)
	buf = append(buf, ':')
	for i, s := range symbols {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(s), 10)
	}
	return append(buf, ';')
}

// encodeSet serializes a configuration set preserving configuration order.
// Two sets holding the same configurations in different order encode
// differently and name different states.
func encodeSet(cs grammar.ConfigSet) []byte {
	var buf []byte
	for _, cfg := range cs {
		buf = appendConfig(buf, cfg.Nonterm, cfg.Dot, cfg.Symbols)
	}
	return buf
}

// prodKey identifies a production by its left side and symbol sequence.
// Duplicate productions share the key, so reductions always resolve to the
// first-listed one.
func prodKey(nonterm int, symbols []int) string {
	return string(appendConfig(nil, nonterm, 0, symbols))
}

// closure expands the set in place: every non-terminal right after a dot
// contributes one dot-0 configuration per alternative, each (left side,
// symbols) pair admitted at most once.
func (c *compiler) closure(cs grammar.ConfigSet) grammar.ConfigSet {
	seen := make(map[string]bool)
	for _, cfg := range cs {
		if cfg.Dot == 0 {
			seen[prodKey(cfg.Nonterm, cfg.Symbols)] = true
		}
	}

	for i := 0; i < len(cs); i++ {
		cfg := cs[i]
		if cfg.Dot >= len(cfg.Symbols) {
			continue
		}
		x := cfg.Symbols[cfg.Dot]
		if c.g.Symbols[x].Kind != grammar.NontermSymbol {
			continue
		}

		for _, pi := range c.byNonterm[x] {
			p := c.g.Prods[pi]
			key := prodKey(p.Nonterm, p.Symbols)
			if seen[key] {
				continue
			}

			seen[key] = true
			cs = append(cs, grammar.Config{Nonterm: p.Nonterm, Symbols: p.Symbols, Dot: 0})
		}
	}
	return cs
}

// successor returns the closed configuration set reached from cs over the
// symbol x, empty if no configuration expects x. cs itself is left untouched.
func (c *compiler) successor(cs grammar.ConfigSet, x int) grammar.ConfigSet {
	res := make(grammar.ConfigSet, 0, len(cs))
	for _, cfg := range cs {
		if cfg.Dot < len(cfg.Symbols) && cfg.Symbols[cfg.Dot] == x {
			res = append(res, grammar.Config{Nonterm: cfg.Nonterm, Symbols: cfg.Symbols, Dot: cfg.Dot + 1})
		}
	}
	if len(res) == 0 {
		return res
	}

	return c.closure(res)
}

// discover enumerates all automaton states breadth-first, starting from the
// closure of the dotted augmented production. States are distinguished by
// their serialized encoding.
func (c *compiler) discover(e error) error {
	if e != nil {
		return e
	}

	p := c.g.Prods[c.byNonterm[c.g.Augmented][0]]
	first := c.closure(grammar.ConfigSet{{Nonterm: p.Nonterm, Symbols: p.Symbols}})

	c.keys = bmap.New[int](16)
	c.sets = append(c.sets, first)
	c.keys.Set(encodeSet(first), grammar.InitialState)

	work := queue.New(grammar.InitialState)
	for {
		si, fetched := work.First()
		if !fetched {
			break
		}

		symbols := ints.NewSet()
		for _, cfg := range c.sets[si] {
			if cfg.Dot < len(cfg.Symbols) {
				symbols.Add(cfg.Symbols[cfg.Dot])
			}
		}

		for _, x := range symbols.ToSlice() {
			succ := c.successor(c.sets[si], x)
			if len(succ) == 0 {
				continue
			}

			key := encodeSet(succ)
			_, known := c.keys.Get(key)
			if known {
				continue
			}

			index := len(c.sets)
			c.sets = append(c.sets, succ)
			c.keys.Set(key, index)
			work.Append(index)
		}
	}

	log.Debugf("grammar %q: %d symbols, %d productions, %d states",
		c.start, len(c.g.Symbols), len(c.g.Prods), len(c.sets))
	return nil
}
