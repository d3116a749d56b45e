// Package scoring bands keyword and skill strings into discrete importance
// scores used to filter and rank them.
package scoring

import (
	"regexp"
	"strings"
)

// Importance bands. Keywords below BandCompound are dropped from the keyword
// set; skills below BandFallback are dropped from the skill set.
const (
	BandBlocked  = 0   // generic soft-skill or filler term
	BandFallback = 30  // single word with no recognized signal
	BandCompound = 60  // multi-word phrase with no blocklisted token
	BandMedium   = 80  // methodology, BI tool, platform, or analysis vocabulary
	BandHigh     = 100 // language, cloud, framework, database, or compliance term
)

// genericTerms is the exact-membership blocklist. Entries are matched
// case-insensitively against the whole trimmed string, and individual tokens
// of short phrases are checked against it as well.
var genericTerms = toSet([]string{
	"development", "communication", "communications", "teamwork",
	"leadership", "collaboration", "collaborative", "organization",
	"organisation", "interpersonal", "motivated", "passionate", "dedicated",
	"experience", "experienced", "skill", "skills", "knowledge", "ability",
	"abilities", "proficient", "proficiency", "familiarity", "understanding",
	"responsible", "environment", "opportunity", "candidate", "requirements",
	"qualifications", "problem solving", "problem-solving", "team player",
	"detail oriented", "detail-oriented", "work ethic", "fast learner",
	"self-starter", "time management", "multitasking", "adaptability",
	"flexibility", "creativity", "innovative", "hardworking",
	"results-driven", "critical thinking",
})

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

// highPatterns recognize terms that are near-certain technical requirements:
// programming languages, cloud platforms, frameworks, databases, dev-ops
// tooling, and payments/compliance vocabulary.
var highPatterns = compilePatterns([]string{
	// Languages
	`\bpython\b`, `\bjavascript\b`, `\btypescript\b`, `\bjava\b`,
	`\bgolang\b`, `^go$`, `\bkotlin\b`, `\bswift\b`, `\bscala\b`,
	`\bruby\b`, `\bphp\b`, `\brust\b`, `\bperl\b`, `c\+\+`, `c#`,
	`f#`, `\bobjective-?c\b`, `\.net\b`, `\bdotnet\b`,
	// Cloud platforms
	`\baws\b`, `\bamazon\s+web\s+services\b`, `\bazure\b`, `\bgcp\b`,
	`\bgoogle\s+cloud\b`, `\bec2\b`, `\bs3\b`, `\bcloudformation\b`,
	// Frameworks and runtimes
	`\bnode\.?js\b`, `\breact(\.js)?\b`, `\bangular(\.js)?\b`,
	`\bvue(\.js)?\b`, `\bnext\.?js\b`, `\bdjango\b`, `\bflask\b`,
	`\bfastapi\b`, `\bspring\s*boot\b`, `\bspring\b`, `\bexpress\.?js\b`,
	`\brails\b`, `\blaravel\b`, `\basp\.?net\b`,
	// Databases
	`\bsql\b`, `\bt-?sql\b`, `\bpl/?sql\b`, `\bmysql\b`, `\bpostgres(ql)?\b`,
	`\bmongodb\b`, `\bsql\s*server\b`, `\boracle\b`, `\bredis\b`,
	`\bcassandra\b`, `\bdynamodb\b`, `\belasticsearch\b`, `\bsqlite\b`,
	`\bmariadb\b`, `\bsnowflake\b`, `\bredshift\b`, `\bbigquery\b`,
	`\bnosql\b`,
	// Dev-ops and data infrastructure
	`\bdocker\b`, `\bkubernetes\b`, `\bk8s\b`, `\bterraform\b`,
	`\bansible\b`, `\bjenkins\b`, `\bgit(hub|lab)?\b`, `\bci/?cd\b`,
	`\bairflow\b`, `\bkafka\b`, `\bspark\b`, `\bhadoop\b`, `\bdatabricks\b`,
	// Payments and compliance
	`\bpayments?\b`, `\bpayment\s+(processing|gateway)\b`, `\baml\b`,
	`\bkyc\b`, `\banti-?money\s+laundering\b`, `\bknow\s+your\s+customer\b`,
	`\bpci(\s+dss)?\b`, `\bpsd2\b`, `\bsepa\b`, `\bswift\s+messaging\b`,
	`\biso\s*20022\b`, `\bsanctions\s+screening\b`, `\btrade\s+finance\b`,
	`\btreasury\b`, `\bcore\s+banking\b`, `\bcash\s+management\b`,
	`\bliquidity\s+management\b`,
})

// mediumPatterns recognize methodologies, BI tools, enterprise platforms,
// ML/data-science terms, and business-analysis/testing vocabulary.
var mediumPatterns = compilePatterns([]string{
	// Methodologies
	`\bagile\b`, `\bscrum\b`, `\bkanban\b`, `\bwaterfall\b`, `\bdevops\b`,
	`\bsdlc\b`, `\blean\b`, `\bsix\s+sigma\b`, `\bitil\b`, `\bsafe\b`,
	// BI and analytics tools
	`\btableau\b`, `\bpower\s*bi\b`, `\blooker\b`, `\bqlik(view|sense)?\b`,
	`\bexcel\b`, `\bpowerpoint\b`, `\bvba\b`, `\bsas\b`, `\bspss\b`,
	`\bdata\s+visuali[sz]ation\b`, `\bdashboards?\b`,
	// Enterprise platforms
	`\bsalesforce\b`, `\bsap\b`, `\bservicenow\b`, `\bsharepoint\b`,
	`\bworkday\b`, `\bdynamics\s*365\b`, `\bjira\b`, `\bconfluence\b`,
	// ML and data science
	`\bmachine\s+learning\b`, `\bdeep\s+learning\b`, `\bdata\s+science\b`,
	`\bartificial\s+intelligence\b`, `^ai$`, `^ml$`, `\bnlp\b`,
	`\bnatural\s+language\s+processing\b`, `\bcomputer\s+vision\b`,
	`\btensorflow\b`, `\bpytorch\b`, `\bpandas\b`, `\bnumpy\b`,
	`\bscikit-?learn\b`, `\betl\b`, `\bdata\s+(analysis|analytics|engineering|modeling|warehousing)\b`,
	// Business analysis and testing
	`\bbusiness\s+(analysis|intelligence|analytics)\b`,
	`\brequirements\s+gathering\b`, `\bstakeholder\s+management\b`,
	`\bproject\s+management\b`, `\bproduct\s+management\b`,
	`\bprocess\s+improvement\b`, `\bgap\s+analysis\b`, `\buse\s+cases?\b`,
	`\buat\b`, `\buser\s+acceptance\s+testing\b`, `\bsit\b`,
	`\bsystem\s+integration\s+testing\b`, `\bunit\s+testing\b`,
	`\bregression\s+testing\b`, `\bautomation\s+testing\b`,
	`\bmanual\s+testing\b`, `\bapi\s+testing\b`, `\bselenium\b`,
	`\bquality\s+assurance\b`, `^qa$`, `\btest\s+(cases?|plans?|automation)\b`,
})

func compilePatterns(exprs []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return patterns
}

// Score bands a raw keyword or skill string into {0, 30, 60, 80, 100}.
// The checks run in strict priority order and the first hit wins: blocklist,
// high patterns, medium patterns, short-phrase handling, fallback. Score is
// pure: the same input always yields the same band.
func Score(text string) int {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if _, blocked := genericTerms[lower]; blocked {
		return BandBlocked
	}
	for _, p := range highPatterns {
		if p.MatchString(trimmed) {
			return BandHigh
		}
	}
	for _, p := range mediumPatterns {
		if p.MatchString(trimmed) {
			return BandMedium
		}
	}
	tokens := strings.Fields(lower)
	if len(tokens) >= 2 && len(tokens) <= 3 {
		for _, token := range tokens {
			if _, blocked := genericTerms[token]; blocked {
				return BandBlocked
			}
		}
		return BandCompound
	}
	return BandFallback
}
