package thecics

import (
	"time"
)

// CitationType says what the user copied: a formatted citation or a raw
// permalink.
type CitationType string

const (
	CitationTypeCitation CitationType = "citation"
	CitationTypeLink     CitationType = "link"
)

// CitationFormat is the bibliographic style of a copied citation. It is
// empty on link events.
type CitationFormat string

const (
	FormatAPA     CitationFormat = "apa"
	FormatMLA     CitationFormat = "mla"
	FormatChicago CitationFormat = "chicago"
)

// ValidCitationFormat reports whether s is one of the supported styles.
func ValidCitationFormat(s string) bool {
	switch CitationFormat(s) {
	case FormatAPA, FormatMLA, FormatChicago:
		return true
	}
	return false
}

// CitationEvent is one logged copy action. Events are immutable once
// written: there is no update or delete path. A UserID of 0 means the
// citation was copied anonymously.
type CitationEvent struct {
	ID       int `json:"id"`
	ThesisID int `json:"thesisId"`
	UserID   int `json:"userId"`

	Type   CitationType   `json:"citationType"`
	Format CitationFormat `json:"citationFormat,omitempty"`

	CopiedAt time.Time `json:"copiedAt"`
}

// NewCitationCopy builds the event for a formatted-citation copy.
func NewCitationCopy(thesisID, userID int, format CitationFormat) CitationEvent {
	return CitationEvent{
		ThesisID: thesisID,
		UserID:   userID,
		Type:     CitationTypeCitation,
		Format:   format,
	}
}

// NewLinkCopy builds the event for a permalink copy. Link events never
// carry a format, which the two constructors guarantee by construction.
func NewLinkCopy(thesisID, userID int) CitationEvent {
	return CitationEvent{
		ThesisID: thesisID,
		UserID:   userID,
		Type:     CitationTypeLink,
	}
}

// CitationStats is derived from the event log on demand, never stored.
type CitationStats struct {
	UniqueUsers int  `json:"uniqueUserCount"`
	Total       int  `json:"totalCitationCount"`
	HasCited    bool `json:"hasUserCited"`
}

type CitationStore interface {
	Insert(*CitationEvent) error
	ByThesis(thesisID int) ([]CitationEvent, error)
}
