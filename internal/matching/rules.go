// Package matching decides fuzzy equivalence between a normalized user skill
// and a normalized job keyword.
package matching

import (
	"strings"

	"github.com/jonathan/skillgap/internal/parsing"
)

// Length-ratio gates for the containment rule. A contained term is accepted
// outright only when it makes up enough of the containing term; the bar
// loosens as the containing term gets shorter.
const (
	wholeWordLengthFactor = 1.5
	strictRatioFloor      = 0.7
	longTermLength        = 8
	longTermRatioFloor    = 0.6
	shortTermRatioFloor   = 0.5
	shortTermMinLength    = 4
)

// rule is a single equivalence predicate. Rules are evaluated in order and
// the first hit wins; narrower rules must stay ahead of the broad
// containment rule or unrelated terms with high character overlap would be
// accepted.
type rule func(skill, keyword string) bool

var rules = []rule{
	abbreviationRule,
	capabilityFamilyRule,
	suffixRule,
	containmentRule,
	abbreviationContainmentRule,
	domainSpecialRule,
	techFamilyRule,
}

// Matches reports whether a normalized user skill and a normalized keyword
// refer to the same capability. Both inputs must already be in normalized
// form (lowercase alphanumeric).
func Matches(skill, keyword string) bool {
	if skill == keyword {
		return true
	}
	// Below two characters there is nothing reliable to match on.
	if len(skill) < 2 || len(keyword) < 2 {
		return false
	}
	for _, r := range rules {
		if r(skill, keyword) {
			return true
		}
	}
	return false
}

// abbreviationRule equates terms whose abbreviation-table expansions agree.
func abbreviationRule(skill, keyword string) bool {
	return expandAbbreviation(skill) == expandAbbreviation(keyword)
}

// capabilityFamilyRule equates terms grouped under the same capability
// family, such as docker and kubernetes under "containers".
func capabilityFamilyRule(skill, keyword string) bool {
	skillFamily, ok := capabilityFamilies[skill]
	if !ok {
		return false
	}
	keywordFamily, ok := capabilityFamilies[keyword]
	return ok && skillFamily == keywordFamily
}

// suffixRule equates terms whose bases agree after removing a qualifier
// suffix, such as "javaprogramming" and "javadevelopment".
func suffixRule(skill, keyword string) bool {
	base := stripSuffix(skill)
	return len(base) >= 3 && base == stripSuffix(keyword)
}

// containmentRule accepts a substring relationship gated by length ratios.
func containmentRule(skill, keyword string) bool {
	shorter, longer := skill, keyword
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !strings.Contains(longer, shorter) {
		return false
	}
	if len(shorter) < 3 {
		if _, allowed := shortTechTerms[shorter]; !allowed {
			return false
		}
	}

	ratio := float64(len(shorter)) / float64(len(longer))
	switch {
	case float64(len(longer)) > float64(len(shorter))*wholeWordLengthFactor:
		return containsWholeWord(longer, shorter) || ratio >= strictRatioFloor
	case len(longer) > longTermLength:
		return ratio >= longTermRatioFloor
	default:
		return ratio >= shortTermRatioFloor || len(shorter) >= shortTermMinLength
	}
}

// abbreviationContainmentRule cross-checks an expansion of one side against
// the raw other side, for pairs like "js" inside "reactjs" variants whose
// raw lengths stay close.
func abbreviationContainmentRule(skill, keyword string) bool {
	diff := len(skill) - len(keyword)
	if diff < 0 {
		diff = -diff
	}
	if diff > 3 {
		return false
	}
	return strings.Contains(expandAbbreviation(skill), keyword) ||
		strings.Contains(expandAbbreviation(keyword), skill)
}

// domainSpecialRule carries fixed equivalences that no general rule covers:
// JS frameworks against javascript/framework keywords, the .NET ecosystem,
// and C# against VB.
func domainSpecialRule(skill, keyword string) bool {
	if isJSFrameworkMatch(skill, keyword) || isJSFrameworkMatch(keyword, skill) {
		return true
	}
	if isDotNetTerm(skill) && isDotNetTerm(keyword) {
		return true
	}
	if (skill == "csharp" && strings.Contains(keyword, "vb")) ||
		(keyword == "csharp" && strings.Contains(skill, "vb")) {
		return true
	}
	return false
}

func isJSFrameworkMatch(framework, other string) bool {
	if _, ok := jsFrameworks[framework]; !ok {
		return false
	}
	return other == "javascript" ||
		strings.Contains(other, "javascript") ||
		strings.Contains(other, "framework")
}

func isDotNetTerm(term string) bool {
	return strings.Contains(term, "aspnet") ||
		strings.Contains(term, "net") ||
		term == "dotnet"
}

// techFamilyRule equates broad database-technology mentions through their
// family ("sql" or "nosql").
func techFamilyRule(skill, keyword string) bool {
	family := parsing.TechFamily(skill)
	if family != "sql" && family != "nosql" {
		return false
	}
	return family == parsing.TechFamily(keyword)
}

// containsWholeWord reports whether needle appears as a whole
// whitespace-delimited word inside haystack.
func containsWholeWord(haystack, needle string) bool {
	for _, word := range strings.Fields(haystack) {
		if word == needle {
			return true
		}
	}
	return false
}
