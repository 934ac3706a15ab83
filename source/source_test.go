package source

import (
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{100, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{1, 2, 1},
			{1, 2, 1},
			{100, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{8, 4, 3},
			{9, 4, 4},
			{10, 4, 5},
			{11, 4, 6},
			{12, 4, 7},
			{13, 4, 8},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourcePos(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		" ": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
		},
		"\n": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
			{1, 2, 2},
			{1, 3, 1},
		},
		"hello\nworld\n": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{7, 2, 2},
			{12, 2, 10},
			{12, 3, 1},
			{12, 3, 2},
			{12, 4, 1},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			p := source.Pos(res.line, res.col)
			if p != res.pos {
				t.Errorf("sample %q: expected %v, got pos: %d", text, res, p)
			}
		}
	}
}

func TestSourceAt(t *testing.T) {
	s := New("at", []byte("ab\ncd"))
	samples := []result{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
	}

	for i, res := range samples {
		p := s.At(res.pos)
		if p.Pos() != res.pos || p.Line() != res.line || p.Col() != res.col {
			t.Errorf("sample #%d: expected %v, got pos: %d line: %d col: %d", i, res, p.Pos(), p.Line(), p.Col())
		}
		if p.SourceName() != "at" {
			t.Errorf("sample #%d: expected source name \"at\", got %q", i, p.SourceName())
		}
	}

	p := s.At(-1)
	if p.Pos() != 0 {
		t.Errorf("expected clamped pos 0, got %d", p.Pos())
	}
	p = s.At(100)
	if p.Pos() != 5 {
		t.Errorf("expected clamped pos 5, got %d", p.Pos())
	}
}

func TestSourceExcerpt(t *testing.T) {
	s := New("", []byte("foo bar baz"))
	samples := []struct {
		pos, max int
		expected string
	}{
		{0, 3, "foo"},
		{4, 100, "bar baz"},
		{8, 3, "baz"},
		{11, 5, ""},
		{100, 5, ""},
		{-1, 3, "foo"},
	}

	for i, sample := range samples {
		got := s.Excerpt(sample.pos, sample.max)
		if got != sample.expected {
			t.Errorf("sample #%d: expected %q, got %q", i, sample.expected, got)
		}
	}
}
