package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/skillgap/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintMatchResult_ContainsSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		PresentSkills:   []string{"Python", "SQL"},
		MissingSkills:   []string{"AWS"},
		MatchPercentage: 67,
		TotalDisplayed:  3,
		PresentCount:    2,
	})

	out := buf.String()
	assert.Contains(t, out, "SKILL GAP")
	assert.Contains(t, out, "Match: 67%")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "AWS")
}

func TestPrintMatchResult_NilResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	missing := make([]string, maxItemsToShow+3)
	for i := range missing {
		missing[i] = "Keyword"
	}
	p.PrintMatchResult(&types.MatchResult{MissingSkills: missing})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintInputSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInputSummary(12, 5)

	out := buf.String()
	assert.Contains(t, out, "INPUTS")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "5")
}
