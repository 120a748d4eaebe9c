package citation

import (
	"fmt"
	"strings"
	"time"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

const (
	defaultInstitution = "TheCICS"
	defaultBaseURL     = "https://the-cics.vercel.app"

	accessDateLayout = "January 2, 2006"
)

// Formatter renders citation text for a thesis in a given style. APA output
// is stable for a fixed thesis; MLA and Chicago embed the access date, so
// their output changes across calendar days. Now is injectable for tests.
type Formatter struct {
	Institution string
	BaseURL     string

	Now func() time.Time
}

func NewFormatter(institution, baseURL string) *Formatter {
	if institution == "" {
		institution = defaultInstitution
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Formatter{
		Institution: strings.TrimSpace(institution),
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Now:         time.Now,
	}
}

// Format renders the citation for thesis in the given style. It is a pure
// transformation: it never errors and always returns non-empty text, even
// for a thesis with a missing author name or an unknown style.
func (f *Formatter) Format(thesis thecics.Thesis, style thecics.CitationFormat) string {
	author := ParseAuthor(authorName(thesis)).String()

	switch style {
	case thecics.FormatAPA:
		return fmt.Sprintf("%s (%d). %s [Thesis]. %s. %s",
			author, thesis.Year, thesis.Title, f.Institution, f.Permalink(thesis.ID))
	case thecics.FormatMLA:
		return fmt.Sprintf("%s \"%s.\" %s, %d. Web. %s.",
			author, thesis.Title, f.Institution, thesis.Year, f.accessDate())
	case thecics.FormatChicago:
		return fmt.Sprintf("%s \"%s.\" Thesis, %s, %d. %s.",
			author, thesis.Title, f.Institution, thesis.Year, f.Permalink(thesis.ID))
	}

	// Unknown style: generic fallback rather than an error.
	return fmt.Sprintf("%s (%d). %s. %s.", author, thesis.Year, thesis.Title, f.Institution)
}

// Permalink is the canonical URL of a thesis.
func (f *Formatter) Permalink(thesisID int) string {
	return fmt.Sprintf("%s/thesis/%d", f.BaseURL, thesisID)
}

func (f *Formatter) accessDate() string {
	now := f.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(accessDateLayout)
}

// authorName falls back to "Author {id}" when the thesis carries no display
// name, so ParseAuthor always receives at least one token.
func authorName(thesis thecics.Thesis) string {
	if strings.TrimSpace(thesis.AuthorName) == "" {
		return fmt.Sprintf("Author %d", thesis.AuthorID)
	}
	return thesis.AuthorName
}
