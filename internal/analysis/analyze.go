// Package analysis assembles the skill-gap result: it scores and filters
// both input lists, matches skills against deduplicated keywords, and
// produces the capped present/missing breakdown with a match percentage.
package analysis

import (
	"math"

	"github.com/jonathan/skillgap/internal/dedup"
	"github.com/jonathan/skillgap/internal/matching"
	"github.com/jonathan/skillgap/internal/parsing"
	"github.com/jonathan/skillgap/internal/scoring"
	"github.com/jonathan/skillgap/internal/types"
)

const (
	// Keywords below this band never enter the keyword set.
	minKeywordScore = scoring.BandCompound
	// Skills below this band are too generic to count as a genuine match.
	minSkillScore = scoring.BandFallback

	// Display caps. The missing cap adapts to how many skills matched:
	// once most skills match, only the most critical gaps are worth
	// showing.
	presentCap            = 15
	missingCapHighMatch   = 4
	missingCapMediumMatch = 6
	missingCapLowMatch    = 10
	highMatchThreshold    = 6
	mediumMatchThreshold  = 3
)

// Analyze computes the relevance match between a job posting's extracted
// keywords and a candidate's self-reported skills. It is a pure, synchronous
// computation: each call allocates its own working state, so concurrent
// calls never interact. Empty or noisy input degrades to a well-formed
// empty result.
func Analyze(jobKeywords, userSkills []string) *types.MatchResult {
	keywords := dedup.Merge(buildKeywordCandidates(jobKeywords))
	skills := buildSkillCandidates(userSkills)

	consumed := make([]bool, len(keywords))
	matchedCount := 0
	present := make([]string, 0, len(skills))

	// Greedy one-to-one matching: each skill consumes the first unconsumed
	// keyword it matches, in score order; skills run in input order.
	for _, skill := range skills {
		for i, keyword := range keywords {
			if consumed[i] {
				continue
			}
			if matching.Matches(skill.Normalized, keyword.Normalized) {
				consumed[i] = true
				matchedCount++
				present = append(present, titleCase(keyword.Text))
				break
			}
		}
	}

	missing := collectMissing(keywords, consumed, matchedCount)
	present = dedupeDisplay(present, presentCap)
	missing = filterAgainstPresent(missing, present)

	return &types.MatchResult{
		PresentSkills:   present,
		MissingSkills:   missing,
		MatchPercentage: percentage(len(present), len(missing)),
		TotalDisplayed:  len(present) + len(missing),
		PresentCount:    len(present),
	}
}

func buildKeywordCandidates(raw []string) []types.KeywordCandidate {
	candidates := make([]types.KeywordCandidate, 0, len(raw))
	for _, text := range raw {
		score := scoring.Score(text)
		if score < minKeywordScore {
			continue
		}
		candidates = append(candidates, types.KeywordCandidate{
			Text:       text,
			Score:      score,
			Normalized: parsing.Normalize(text),
		})
	}
	return candidates
}

func buildSkillCandidates(raw []string) []types.SkillCandidate {
	candidates := make([]types.SkillCandidate, 0, len(raw))
	for _, text := range raw {
		score := scoring.Score(text)
		if score < minSkillScore {
			continue
		}
		normalized := parsing.Normalize(text)
		if normalized == "" {
			continue
		}
		candidates = append(candidates, types.SkillCandidate{
			Text:       text,
			Score:      score,
			Normalized: normalized,
		})
	}
	return candidates
}

// collectMissing gathers unconsumed keywords in score order and applies the
// adaptive cap keyed on how many skills actually matched.
func collectMissing(keywords []types.KeywordCandidate, consumed []bool, matchedCount int) []string {
	scoreFloor := 0
	limit := missingCapLowMatch
	switch {
	case matchedCount >= highMatchThreshold:
		scoreFloor = scoring.BandHigh
		limit = missingCapHighMatch
	case matchedCount >= mediumMatchThreshold:
		limit = missingCapMediumMatch
	}

	missing := make([]string, 0, limit)
	for i, keyword := range keywords {
		if consumed[i] || keyword.Score < scoreFloor {
			continue
		}
		missing = append(missing, titleCase(keyword.Text))
		if len(missing) == limit {
			break
		}
	}
	return missing
}

// dedupeDisplay removes display entries that collide on normalized form and
// truncates to the cap. Collisions should not survive deduplication, but a
// defensive pass keeps the output invariant unconditional.
func dedupeDisplay(entries []string, limit int) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		normalized := parsing.Normalize(entry)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, entry)
		if len(out) == limit {
			break
		}
	}
	return out
}

// filterAgainstPresent drops any missing entry whose normalized form already
// appears in the present list.
func filterAgainstPresent(missing, present []string) []string {
	presentForms := make(map[string]struct{}, len(present))
	for _, entry := range present {
		presentForms[parsing.Normalize(entry)] = struct{}{}
	}
	out := make([]string, 0, len(missing))
	for _, entry := range missing {
		if _, dup := presentForms[parsing.Normalize(entry)]; dup {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// percentage derives the match percentage from the displayed counts, so the
// number always agrees with the lists returned to the caller.
func percentage(presentCount, missingCount int) int {
	total := presentCount + missingCount
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(presentCount) / float64(total)))
}
