// Package parsing provides the canonical string forms used by scoring,
// deduplication, and matching.
package parsing

import "strings"

// nosqlEngines are engine names that place a term in the "nosql" family.
// "elastic" also covers "elasticsearch"; "firebase" covers "firestore" users
// who write the product name either way.
var nosqlEngines = []string{
	"mongodb", "cassandra", "dynamodb", "couchbase", "cosmosdb",
	"elasticsearch", "elastic", "firebase", "firestore", "redis",
}

// sqlEngines are engine names that place a term in the "sql" family.
var sqlEngines = []string{
	"mysql", "mssql", "postgresql", "postgres", "postgre", "mariadb",
	"sqlite", "redshift", "snowflake", "bigquery", "aurora", "db2",
	"teradata", "vertica", "hana", "tsql", "plsql",
}

// Normalize reduces a term to its canonical comparison form: lowercase with
// every character outside [a-z0-9] removed. The result is what scoring,
// deduplication, and matching compare on; it is never shown to users.
// Normalize is idempotent and safe on the empty string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TechFamily maps a normalized term to its technology family ("sql" or
// "nosql") when the term names a database technology, and otherwise returns
// the input unchanged. The nosql check runs first: "nosql" itself ends in
// "sql" and must not land in the sql family.
func TechFamily(normalized string) string {
	if strings.Contains(normalized, "nosql") {
		return "nosql"
	}
	for _, engine := range nosqlEngines {
		if strings.Contains(normalized, engine) {
			return "nosql"
		}
	}
	if normalized == "sql" || strings.HasPrefix(normalized, "sql") || strings.HasSuffix(normalized, "sql") {
		return "sql"
	}
	for _, engine := range sqlEngines {
		if strings.Contains(normalized, engine) {
			return "sql"
		}
	}
	return normalized
}
