package citation

import (
	"strings"
	"unicode/utf8"
)

// Author is the bibliographic form of a display name.
type Author struct {
	LastName string
	Initial  string
}

// ParseAuthor splits a display name on whitespace. The first token yields
// the first initial, everything after it is the last name, so compound last
// names like "Dela Cruz" stay intact. A single token is used verbatim as
// the last name, with no initial. ParseAuthor never fails: the worst case
// is the input used as-is.
func ParseAuthor(name string) Author {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return Author{}
	case 1:
		return Author{LastName: tokens[0]}
	}

	r, _ := utf8.DecodeRuneInString(tokens[0])
	return Author{
		LastName: strings.Join(tokens[1:], " "),
		Initial:  string(r) + ".",
	}
}

// String renders "LastName, I." or, when no initial exists, "LastName." so
// that no dangling ", ." ever reaches a citation.
func (a Author) String() string {
	if a.LastName == "" {
		return ""
	}
	if a.Initial == "" {
		return a.LastName + "."
	}
	return a.LastName + ", " + a.Initial
}
