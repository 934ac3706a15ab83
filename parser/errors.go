package parser

import (
	"github.com/hansoksendahl/cowbird"
	"github.com/hansoksendahl/cowbird/source"
)

const (
	ChokedError = iota + cowbird.SyntaxErrors
)

// excerptLen bounds the unparsed text quoted by a choke error.
const excerptLen = 40

func chokedError(src *source.Source, pos int) *cowbird.Error {
	return cowbird.FormatErrorPos(src.At(pos), ChokedError,
		"parser choked at position %d, ahead: %q", pos, src.Excerpt(pos, excerptLen))
}
