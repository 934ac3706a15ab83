package gramfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hansoksendahl/cowbird"
	"github.com/hansoksendahl/cowbird/gramdef"
	. "github.com/hansoksendahl/cowbird/internal/test"
	"github.com/hansoksendahl/cowbird/parser"
	"github.com/hansoksendahl/cowbird/tree"
)

const calcSrc = `
start = "sum"

[rules]
sum = ["<num>", "<this> \\+ <num>"]
num = ["[0-9]+"]
`

func TestParse(t *testing.T) {
	def, start, e := Parse([]byte(calcSrc))
	Assert(t, e == nil, "unexpected error: %v", e)
	ExpectString(t, "sum", start)
	ExpectInt(t, 2, len(def))
	ExpectInt(t, 2, len(def["sum"]))

	_, e = gramdef.Compile(def, start)
	Assert(t, e == nil, "decoded definition must compile: %v", e)
}

func TestParseErrors(t *testing.T) {
	samples := []struct {
		src  string
		code int
	}{
		{"start = [", DecodeError},
		{`start = "s"`, NoRulesError},
		{"[rules]\ns = [\"x\"]", NoStartError},
	}
	for i, sample := range samples {
		_, _, e := Parse([]byte(sample.src))
		if e == nil {
			t.Errorf("sample #%d: expected error code %d, got success", i, sample.code)
			continue
		}

		ce, is := e.(*cowbird.Error)
		if !is {
			t.Errorf("sample #%d: *cowbird.Error expected, got %q", i, e.Error())
			continue
		}
		if ce.Code != sample.code {
			t.Errorf("sample #%d: expected error code %d, got %d", i, sample.code, ce.Code)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.toml")
	e := os.WriteFile(path, []byte(calcSrc), 0644)
	Assert(t, e == nil, "cannot write temp file: %v", e)

	def, start, e := Load(path)
	Assert(t, e == nil, "unexpected error: %v", e)
	ExpectString(t, "sum", start)
	ExpectInt(t, 2, len(def))

	_, _, e = Load(filepath.Join(t.TempDir(), "missing.toml"))
	ExpectErrorCode(t, ReadError, e)
}

func TestWithTrees(t *testing.T) {
	def, start, e := Parse([]byte(calcSrc))
	Assert(t, e == nil, "unexpected error: %v", e)

	g, e := gramdef.Compile(WithTrees(def), start)
	Assert(t, e == nil, "unexpected error: %v", e)

	vals, e := parser.New(g).ParseString("1 + 2", nil)
	Assert(t, e == nil, "unexpected error: %v", e)
	ExpectInt(t, 1, len(vals))

	n, is := vals[0].(*tree.Node)
	Assert(t, is, "expecting *tree.Node, got %T", vals[0])
	ExpectString(t, `(sum (sum (num "1")) "+" (num "2"))`, n.String())
}
