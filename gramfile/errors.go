package gramfile

import (
	"github.com/hansoksendahl/cowbird"
)

const (
	ReadError = iota + cowbird.FileErrors
	DecodeError
	NoRulesError
	NoStartError
)

func readError(path string, e error) *cowbird.Error {
	return cowbird.FormatError(ReadError, "cannot read grammar file %s: %s", path, e.Error())
}

func decodeError(e error) *cowbird.Error {
	return cowbird.FormatError(DecodeError, "cannot decode grammar file: %s", e.Error())
}

func noRulesError() *cowbird.Error {
	return cowbird.FormatError(NoRulesError, "grammar file defines no rules")
}

func noStartError() *cowbird.Error {
	return cowbird.FormatError(NoStartError, "grammar file defines no start symbol")
}
