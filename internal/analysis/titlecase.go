package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleExceptions maps lowercased phrases and tokens to their branded or
// acronym display forms. The whole phrase is looked up first, then each
// token; anything not found falls back to plain title casing.
var titleExceptions = map[string]string{
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"mysql":      "MySQL",
	"postgresql": "PostgreSQL",
	"postgres":   "PostgreSQL",
	"mongodb":    "MongoDB",
	"mariadb":    "MariaDB",
	"sqlite":     "SQLite",
	"t-sql":      "T-SQL",
	"pl/sql":     "PL/SQL",
	"db2":        "DB2",
	"dynamodb":   "DynamoDB",
	"cosmosdb":   "CosmosDB",
	"bigquery":   "BigQuery",

	"aws":   "AWS",
	"gcp":   "GCP",
	"azure": "Azure",
	"ec2":   "EC2",
	"s3":    "S3",

	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"js":         "JS",
	"ts":         "TS",
	"php":        "PHP",
	"c++":        "C++",
	"c#":         "C#",
	"f#":         "F#",
	".net":       ".NET",
	"asp.net":    "ASP.NET",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"react.js":   "React.js",
	"reactjs":    "React.js",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
	"vue.js":     "Vue.js",
	"vuejs":      "Vue.js",
	"fastapi":    "FastAPI",
	"graphql":    "GraphQL",
	"ios":        "iOS",
	"macos":      "macOS",

	"devops":     "DevOps",
	"ci/cd":      "CI/CD",
	"cicd":       "CI/CD",
	"github":     "GitHub",
	"gitlab":     "GitLab",
	"k8s":        "K8s",
	"powerbi":    "Power BI",
	"power bi":   "Power BI",
	"qlikview":   "QlikView",
	"servicenow": "ServiceNow",
	"sharepoint": "SharePoint",

	"ai":           "AI",
	"ml":           "ML",
	"nlp":          "NLP",
	"etl":          "ETL",
	"api":          "API",
	"apis":         "APIs",
	"rest":         "REST",
	"restful apis": "RESTful APIs",
	"ui":           "UI",
	"ux":           "UX",
	"ui/ux":        "UI/UX",
	"qa":           "QA",
	"uat":          "UAT",
	"sit":          "SIT",
	"sdlc":         "SDLC",
	"itil":         "ITIL",
	"html":         "HTML",
	"css":          "CSS",
	"json":         "JSON",
	"xml":          "XML",
	"saas":         "SaaS",
	"paas":         "PaaS",
	"iaas":         "IaaS",
	"kpi":          "KPI",
	"kpis":         "KPIs",
	"roi":          "ROI",
	"aml":          "AML",
	"kyc":          "KYC",
	"pci":          "PCI",
	"pci dss":      "PCI DSS",
	"psd2":         "PSD2",
	"sepa":         "SEPA",
	"vba":          "VBA",
	"sas":          "SAS",
	"spss":         "SPSS",
	"sap":          "SAP",
}

// titleCase renders a keyword for display: the curated exception table wins
// for whole phrases and for individual tokens; everything else gets its
// first letter capitalized.
func titleCase(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if display, ok := titleExceptions[lower]; ok {
		return display
	}

	caser := cases.Title(language.English)
	words := strings.Fields(trimmed)
	for i, word := range words {
		if display, ok := titleExceptions[strings.ToLower(word)]; ok {
			words[i] = display
			continue
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
