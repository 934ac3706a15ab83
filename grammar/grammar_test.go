package grammar

import (
	"regexp"
	"testing"

	. "github.com/hansoksendahl/cowbird/internal/test"
)

func TestActionEncoding(t *testing.T) {
	for prod := 0; prod < 5; prod++ {
		a := Reduce(prod)
		Assert(t, a < 0, "reduce action must be negative, got %d", a)
		ExpectInt(t, prod, ReduceProd(a))
	}
}

func TestStateLookup(t *testing.T) {
	st := State{
		Actions: []TermAction{{EndMarker, Reduce(2)}, {1, 4}, {3, 7}},
		Gotos:   []NontermGoto{{0, 5}},
	}

	a, found := st.Action(EndMarker)
	ExpectBool(t, true, found)
	ExpectInt(t, Reduce(2), a)

	a, found = st.Action(3)
	ExpectBool(t, true, found)
	ExpectInt(t, 7, a)

	_, found = st.Action(2)
	ExpectBool(t, false, found)

	s, found := st.Goto(0)
	ExpectBool(t, true, found)
	ExpectInt(t, 5, s)

	_, found = st.Goto(1)
	ExpectBool(t, false, found)

	_, found = State{}.Action(0)
	ExpectBool(t, false, found)
}

func TestAnchor(t *testing.T) {
	re := regexp.MustCompile(Anchor("a+"))
	ExpectString(t, "aa", string(re.Find([]byte("aab"))))
	Assert(t, re.Find([]byte("baa")) == nil, "anchored pattern must not match mid-text")

	re = regexp.MustCompile(Anchor("a|b"))
	ExpectString(t, "b", string(re.Find([]byte("b"))))
}

func TestSymbolText(t *testing.T) {
	ExpectString(t, "x+", Symbol{Kind: TermSymbol, Re: "x+"}.Text())
	ExpectString(t, "sum", Symbol{Kind: NontermSymbol, Name: "sum"}.Text())
}
