package matching

// abbreviations maps normalized terms to a shared canonical form. Two terms
// are equivalent when they map to the same value. Entries cover short forms
// alongside their expansions, and database engine names alongside their
// family, so "js" meets "javascript" and "mysql" meets "sql" here without
// reaching the broader containment rules.
var abbreviations = map[string]string{
	// Languages and runtimes
	"js":         "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"typescript": "typescript",
	"py":         "python",
	"python":     "python",
	"rb":         "ruby",
	"ruby":       "ruby",
	"golang":     "go",
	"go":         "go",
	"csharp":     "csharp",
	"nodejs":     "nodejs",
	"node":       "nodejs",

	// Infrastructure
	"k8s":                 "kubernetes",
	"kubernetes":          "kubernetes",
	"aws":                 "amazonwebservices",
	"amazonwebservices":   "amazonwebservices",
	"gcp":                 "googlecloud",
	"googlecloud":         "googlecloud",
	"googlecloudplatform": "googlecloud",

	// Database engines resolve to their family
	"sql":           "sql",
	"mysql":         "sql",
	"mssql":         "sql",
	"sqlserver":     "sql",
	"postgresql":    "sql",
	"postgres":      "sql",
	"mariadb":       "sql",
	"sqlite":        "sql",
	"oracle":        "sql",
	"tsql":          "sql",
	"plsql":         "sql",
	"nosql":         "nosql",
	"mongodb":       "nosql",
	"cassandra":     "nosql",
	"dynamodb":      "nosql",
	"couchbase":     "nosql",
	"cosmosdb":      "nosql",
	"redis":         "nosql",
	"firebase":      "nosql",
	"firestore":     "nosql",
	"elasticsearch": "nosql",

	// Data, ML, and process vocabulary
	"ml":                        "machinelearning",
	"machinelearning":           "machinelearning",
	"ai":                        "artificialintelligence",
	"artificialintelligence":    "artificialintelligence",
	"bi":                        "businessintelligence",
	"businessintelligence":      "businessintelligence",
	"ci":                        "cicd",
	"cd":                        "cicd",
	"cicd":                      "cicd",
	"ux":                        "userexperience",
	"userexperience":            "userexperience",
	"ui":                        "userinterface",
	"userinterface":             "userinterface",
	"qa":                        "qualityassurance",
	"qualityassurance":          "qualityassurance",
	"uat":                       "useracceptancetesting",
	"useracceptancetesting":     "useracceptancetesting",
	"sit":                       "systemintegrationtesting",
	"systemintegrationtesting":  "systemintegrationtesting",
	"nlp":                       "naturallanguageprocessing",
	"naturallanguageprocessing": "naturallanguageprocessing",
}

// capabilityFamilies groups ecosystem terms that are not abbreviations of
// each other but count as the same capability for matching purposes.
var capabilityFamilies = map[string]string{
	"docker":           "containers",
	"container":        "containers",
	"containers":       "containers",
	"containerization": "containers",
	"kubernetes":       "containers",
	"k8s":              "containers",

	"git":            "github",
	"github":         "github",
	"gitlab":         "github",
	"bitbucket":      "github",
	"versioncontrol": "github",

	"rest":           "restfulapis",
	"restful":        "restfulapis",
	"restapi":        "restfulapis",
	"restapis":       "restfulapis",
	"restfulapi":     "restfulapis",
	"restfulapis":    "restfulapis",
	"api":            "restfulapis",
	"apis":           "restfulapis",
	"webapi":         "restfulapis",
	"apidevelopment": "restfulapis",
	"apiintegration": "restfulapis",

	"agile":  "agile",
	"scrum":  "agile",
	"kanban": "agile",
}

// strippableSuffixes are qualifier suffixes removed before comparing base
// terms, so "javaprogramming" meets "javadevelopment".
var strippableSuffixes = []string{
	"programming", "development", "design", "management",
	"testing", "analysis", "engineering",
}

// shortTechTerms is the allowlist of short normalized forms that may still
// participate in containment matching. Anything else under 3 characters is
// treated as noise there.
var shortTechTerms = toSet([]string{
	"js", "ts", "py", "rb", "go", "ai", "ml", "bi",
	"ci", "cd", "ux", "ui", "qa", "sql",
})

// jsFrameworks are frontend frameworks that count as a JavaScript match.
var jsFrameworks = toSet([]string{"react", "angular", "vue", "next", "nextjs"})

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

// expandAbbreviation maps a term through the abbreviation table, returning
// the term itself when no entry exists.
func expandAbbreviation(term string) string {
	if canonical, ok := abbreviations[term]; ok {
		return canonical
	}
	return term
}

// stripSuffix removes the first matching qualifier suffix, if any.
func stripSuffix(term string) string {
	for _, suffix := range strippableSuffixes {
		if len(term) > len(suffix) && term[len(term)-len(suffix):] == suffix {
			return term[:len(term)-len(suffix)]
		}
	}
	return term
}
