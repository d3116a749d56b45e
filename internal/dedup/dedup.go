// Package dedup collapses near-duplicate keyword candidates into a single
// surviving entry per normalized form.
package dedup

import (
	"sort"
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

const (
	// overlapPreference governs which of two containment-related candidates
	// survives: the longer form supersedes the shorter one only when its
	// score is at least this fraction of the incumbent's. The value decides
	// whether "React.js" and "React" collapse and which one wins.
	overlapPreference = 0.7

	// minContainmentLength is the shortest normalized form that can
	// participate in a containment merge. Below it, substring hits are
	// noise ("r" is inside everything).
	minContainmentLength = 3
)

// Merge walks the scored candidates in input order and collapses duplicates
// and containment variants, keeping one candidate per normalized form. The
// survivors are returned sorted by score descending, input order breaking
// ties.
func Merge(candidates []types.KeywordCandidate) []types.KeywordCandidate {
	kept := make([]types.KeywordCandidate, 0, len(candidates))
	index := make(map[string]int, len(candidates))

	for _, cand := range candidates {
		if cand.Normalized == "" {
			continue
		}

		if i, exists := index[cand.Normalized]; exists {
			if cand.Score > kept[i].Score {
				kept[i] = cand
			}
			continue
		}

		if mergeIntoExisting(kept, index, cand) {
			continue
		}

		index[cand.Normalized] = len(kept)
		kept = append(kept, cand)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	return kept
}

// mergeIntoExisting resolves a containment relationship between cand and the
// first kept entry it overlaps with. Returns true when cand was absorbed
// (either by replacing the entry or by being dropped); false when no kept
// entry contains or is contained by cand.
func mergeIntoExisting(kept []types.KeywordCandidate, index map[string]int, cand types.KeywordCandidate) bool {
	for i, existing := range kept {
		shorter, longer := existing.Normalized, cand.Normalized
		if len(shorter) > len(longer) {
			shorter, longer = longer, shorter
		}
		if len(shorter) < minContainmentLength || !strings.Contains(longer, shorter) {
			continue
		}

		if len(cand.Normalized) > len(existing.Normalized) {
			// Incoming candidate is the longer form.
			if float64(cand.Score) >= overlapPreference*float64(existing.Score) {
				replace(kept, index, i, cand)
			}
			return true
		}
		// Kept entry is the longer form.
		if float64(existing.Score) < overlapPreference*float64(cand.Score) {
			replace(kept, index, i, cand)
		}
		return true
	}
	return false
}

func replace(kept []types.KeywordCandidate, index map[string]int, i int, cand types.KeywordCandidate) {
	delete(index, kept[i].Normalized)
	index[cand.Normalized] = i
	kept[i] = cand
}
