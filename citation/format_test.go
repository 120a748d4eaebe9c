package citation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testThesis() thecics.Thesis {
	return thecics.Thesis{
		ID:         42,
		Title:      "Foo",
		AuthorName: "Juan Dela Cruz",
		Year:       2024,
	}
}

func TestFormatter_Format_APA(t *testing.T) {
	f := NewFormatter("", "")

	expected := "Dela Cruz, J. (2024). Foo [Thesis]. TheCICS. https://the-cics.vercel.app/thesis/42"
	assert.Equal(t, expected, f.Format(testThesis(), thecics.FormatAPA))

	// APA carries no access date: two calls on different days agree.
	f.Now = fixedClock(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
	first := f.Format(testThesis(), thecics.FormatAPA)
	f.Now = fixedClock(time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, first, f.Format(testThesis(), thecics.FormatAPA))
}

func TestFormatter_Format_MLA(t *testing.T) {
	f := NewFormatter("", "")
	f.Now = fixedClock(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))

	expected := `Dela Cruz, J. "Foo." TheCICS, 2024. Web. March 1, 2024.`
	assert.Equal(t, expected, f.Format(testThesis(), thecics.FormatMLA))

	// The access date follows the clock.
	f.Now = fixedClock(time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC))
	assert.Contains(t, f.Format(testThesis(), thecics.FormatMLA), "March 2, 2024")
}

func TestFormatter_Format_Chicago(t *testing.T) {
	f := NewFormatter("", "")
	f.Now = fixedClock(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))

	expected := `Dela Cruz, J. "Foo." Thesis, TheCICS, 2024. https://the-cics.vercel.app/thesis/42.`
	assert.Equal(t, expected, f.Format(testThesis(), thecics.FormatChicago))
}

func TestFormatter_Format_UnknownStyle(t *testing.T) {
	f := NewFormatter("", "")

	got := f.Format(testThesis(), thecics.CitationFormat("bibtex"))
	assert.Equal(t, "Dela Cruz, J. (2024). Foo. TheCICS.", got)
}

func TestFormatter_Format_AllStylesContainTitle(t *testing.T) {
	f := NewFormatter("", "")
	styles := []thecics.CitationFormat{
		thecics.FormatAPA,
		thecics.FormatMLA,
		thecics.FormatChicago,
		thecics.CitationFormat("unknown"),
	}

	theses := []thecics.Thesis{
		testThesis(),
		{ID: 7, Title: "Single author", AuthorName: "Plato", Year: 1999},
		{ID: 8, Title: "No author at all", AuthorID: 23, Year: 2020},
	}

	for _, thesis := range theses {
		for _, style := range styles {
			got := f.Format(thesis, style)
			assert.NotEmpty(t, got, "style %s", style)
			assert.Contains(t, got, thesis.Title, "style %s", style)
		}
	}
}

func TestFormatter_Format_NoDanglingPunctuation(t *testing.T) {
	f := NewFormatter("", "")
	thesis := thecics.Thesis{ID: 7, Title: "Single", AuthorName: "Plato", Year: 1999}

	for _, style := range []thecics.CitationFormat{thecics.FormatAPA, thecics.FormatMLA, thecics.FormatChicago} {
		got := f.Format(thesis, style)
		if strings.Contains(got, ", .") {
			t.Errorf("dangling punctuation in %s citation: %s", style, got)
		}
		assert.True(t, strings.HasPrefix(got, "Plato."), "style %s: %s", style, got)
	}
}

func TestFormatter_Format_MissingAuthorFallback(t *testing.T) {
	f := NewFormatter("", "")
	thesis := thecics.Thesis{ID: 8, Title: "Orphan", AuthorID: 23, AuthorName: "   ", Year: 2020}

	got := f.Format(thesis, thecics.FormatAPA)
	assert.Contains(t, got, "23")
	assert.NotContains(t, got, ", .")
}

func TestFormatter_Permalink(t *testing.T) {
	f := NewFormatter("TheCICS", "https://the-cics.vercel.app/")
	assert.Equal(t, "https://the-cics.vercel.app/thesis/42", f.Permalink(42))
}
