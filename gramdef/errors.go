package gramdef

import (
	"github.com/hansoksendahl/cowbird"
)

const (
	NoDefError = iota + cowbird.DefErrors
	NoStartError
	WrongItemError
	StrayActionError
	UndefinedNontermError
	WrongPatternError
)

func noDefError() *cowbird.Error {
	return cowbird.FormatError(NoDefError, "grammar definition is empty")
}

func noStartError() *cowbird.Error {
	return cowbird.FormatError(NoStartError, "start symbol name is empty")
}

func wrongItemError(nonterm string, index int, item any) *cowbird.Error {
	return cowbird.FormatError(WrongItemError, "unexpected %T item #%d in %q definition, expecting string or action", item, index, nonterm)
}

func strayActionError(nonterm string, index int) *cowbird.Error {
	return cowbird.FormatError(StrayActionError, "action item #%d in %q definition is not preceded by an alternative", index, nonterm)
}

func undefinedNontermError(name string) *cowbird.Error {
	return cowbird.FormatError(UndefinedNontermError, "undefined non-terminal: %s", name)
}

func wrongPatternError(re string, e error) *cowbird.Error {
	return cowbird.FormatError(WrongPatternError, "incorrect pattern %q (%s)", re, e.Error())
}
