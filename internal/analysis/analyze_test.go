package analysis

import (
	"testing"

	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_PresentAndMissingSplit(t *testing.T) {
	result := Analyze(
		[]string{"Python", "Communication", "SQL", "AWS"},
		[]string{"Python", "Teamwork"},
	)

	// "Communication" and "Teamwork" are generic and never participate;
	// "SQL" and "AWS" stay missing, ordered by score with input order
	// breaking the tie.
	assert.Equal(t, []string{"Python"}, result.PresentSkills)
	assert.Equal(t, []string{"SQL", "AWS"}, result.MissingSkills)
	assert.Equal(t, 33, result.MatchPercentage)
	assert.Equal(t, 3, result.TotalDisplayed)
	assert.Equal(t, 1, result.PresentCount)
}

func TestAnalyze_DeduplicatedVariantsYieldOneEntry(t *testing.T) {
	result := Analyze(
		[]string{"React.js", "React", "JavaScript"},
		[]string{"React"},
	)

	// "React.js"/"React" collapse during deduplication and the skill
	// consumes exactly one keyword.
	require.Len(t, result.PresentSkills, 1)
	assert.Equal(t, 1, result.PresentCount)
	total := len(result.PresentSkills) + len(result.MissingSkills)
	assert.Equal(t, total, result.TotalDisplayed)
}

func TestAnalyze_HighMatchCapsMissingToCriticalGaps(t *testing.T) {
	keywords := []string{
		// Six keywords the skills will match.
		"Python", "JavaScript", "Docker", "AWS", "React", "SQL",
		// Ten more candidates for the missing list; three score 100.
		"Kubernetes", "Terraform", "MongoDB",
		"Tableau", "Scrum", "Jira", "Salesforce", "Selenium", "Agile", "Excel",
	}
	skills := []string{"Python", "JavaScript", "Docker", "AWS", "React", "SQL"}

	result := Analyze(keywords, skills)

	require.Equal(t, 6, result.PresentCount)
	// With six matches only score-100 gaps survive, capped at four.
	assert.ElementsMatch(t, []string{"Kubernetes", "Terraform", "MongoDB"}, result.MissingSkills)
}

func TestAnalyze_MediumMatchCapsMissingAtSix(t *testing.T) {
	keywords := []string{
		"Python", "JavaScript", "Docker",
		"Tableau", "Scrum", "Jira", "Salesforce", "Selenium", "Excel", "Kubernetes", "Terraform",
	}
	skills := []string{"Python", "JavaScript", "Docker"}

	result := Analyze(keywords, skills)

	require.Equal(t, 3, result.PresentCount)
	assert.Len(t, result.MissingSkills, 6)
}

func TestAnalyze_LowMatchCapsMissingAtTen(t *testing.T) {
	keywords := []string{
		"Python", "JavaScript", "Kubernetes", "Terraform", "MongoDB", "Tableau",
		"Scrum", "Jira", "Salesforce", "Selenium", "Excel", "Kafka",
	}

	result := Analyze(keywords, nil)

	assert.Empty(t, result.PresentSkills)
	assert.Len(t, result.MissingSkills, 10)
}

func TestAnalyze_EmptyKeywordList(t *testing.T) {
	result := Analyze(nil, []string{"Python", "SQL"})

	assert.Empty(t, result.PresentSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 0, result.MatchPercentage)
	assert.Equal(t, 0, result.TotalDisplayed)
	assert.Equal(t, 0, result.PresentCount)
}

func TestAnalyze_EmptyBothInputs(t *testing.T) {
	result := Analyze(nil, nil)

	assert.Empty(t, result.PresentSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 0, result.MatchPercentage)
}

func TestAnalyze_KeywordConsumedAtMostOnce(t *testing.T) {
	// Two skills that would both match the lone keyword; only one consumes
	// it, the other goes unmatched.
	result := Analyze([]string{"JavaScript"}, []string{"JavaScript", "React"})

	assert.Len(t, result.PresentSkills, 1)
	assert.Equal(t, 1, result.PresentCount)
}

func TestAnalyze_PresentAndMissingNeverOverlap(t *testing.T) {
	result := Analyze(
		[]string{"Python", "SQL", "AWS", "Docker", "React", "MongoDB"},
		[]string{"Python", "SQL"},
	)

	presentForms := make(map[string]bool)
	for _, entry := range result.PresentSkills {
		presentForms[parsing.Normalize(entry)] = true
	}
	for _, entry := range result.MissingSkills {
		assert.False(t, presentForms[parsing.Normalize(entry)], "entry %q in both lists", entry)
	}
}

func TestAnalyze_PercentageFromDisplayedCounts(t *testing.T) {
	result := Analyze(
		[]string{"Python", "SQL", "AWS", "Docker"},
		[]string{"Python"},
	)

	assert.GreaterOrEqual(t, result.MatchPercentage, 0)
	assert.LessOrEqual(t, result.MatchPercentage, 100)
	assert.Equal(t, 25, result.MatchPercentage)
	assert.Equal(t, 4, result.TotalDisplayed)
}

func TestAnalyze_GenericSkillsCannotMatch(t *testing.T) {
	// A blocklisted skill is dropped even though the keyword list contains
	// a textually identical entry (which is itself filtered).
	result := Analyze([]string{"Python", "Leadership"}, []string{"Leadership"})

	assert.Empty(t, result.PresentSkills)
	assert.Equal(t, []string{"Python"}, result.MissingSkills)
}

func TestAnalyze_KeywordDisplayUsesKeywordWording(t *testing.T) {
	// The present entry shows the keyword's wording, not the skill's.
	result := Analyze([]string{"Node.js"}, []string{"node"})

	assert.Equal(t, []string{"Node.js"}, result.PresentSkills)
}

func TestAnalyze_IndependentInvocationsDoNotInteract(t *testing.T) {
	keywords := []string{"Python", "SQL", "AWS"}
	skills := []string{"Python"}

	first := Analyze(keywords, skills)
	second := Analyze(keywords, skills)

	assert.Equal(t, first, second)
}
