package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStrips(t *testing.T) {
	assert.Equal(t, "nodejs", Normalize("Node.js"))
	assert.Equal(t, "cicd", Normalize("CI/CD"))
	assert.Equal(t, "restfulapis", Normalize("RESTful APIs"))
	assert.Equal(t, "c", Normalize("C++"))
}

func TestNormalize_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("C++"), Normalize("c++"))
	assert.Equal(t, Normalize("C++"), Normalize(" C + + "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"React.js", "Power BI", "PL/SQL", "", "  spaced out  "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("  ++//  "))
}

func TestTechFamily_NoSQL(t *testing.T) {
	for _, term := range []string{"mongodb", "cassandra", "dynamodb", "redis", "elasticsearch", "firestore", "nosql", "nosqldatabases"} {
		assert.Equal(t, "nosql", TechFamily(term), "term %q", term)
	}
}

func TestTechFamily_SQL(t *testing.T) {
	for _, term := range []string{"sql", "mysql", "postgresql", "sqlserver", "tsql", "plsql", "snowflake", "bigquery", "mariadb"} {
		assert.Equal(t, "sql", TechFamily(term), "term %q", term)
	}
}

func TestTechFamily_NoSQLBeatsSQLSuffix(t *testing.T) {
	// "nosql" ends in "sql" but belongs to the nosql family.
	assert.Equal(t, "nosql", TechFamily("nosql"))
}

func TestTechFamily_IdentityOtherwise(t *testing.T) {
	assert.Equal(t, "python", TechFamily("python"))
	assert.Equal(t, "docker", TechFamily("docker"))
	assert.Equal(t, "", TechFamily(""))
}
