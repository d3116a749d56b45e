package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase_WholePhraseExceptions(t *testing.T) {
	assert.Equal(t, "Power BI", titleCase("power bi"))
	assert.Equal(t, "PCI DSS", titleCase("pci dss"))
	assert.Equal(t, "Node.js", titleCase("node.js"))
	assert.Equal(t, "CI/CD", titleCase("ci/cd"))
}

func TestTitleCase_TokenExceptions(t *testing.T) {
	assert.Equal(t, "AWS Lambda", titleCase("aws lambda"))
	assert.Equal(t, "SQL Tuning", titleCase("sql tuning"))
	assert.Equal(t, "REST Services", titleCase("rest services"))
}

func TestTitleCase_Fallback(t *testing.T) {
	assert.Equal(t, "Machine Learning", titleCase("machine learning"))
	assert.Equal(t, "Stakeholder Management", titleCase("stakeholder management"))
	assert.Equal(t, "Python", titleCase("PYTHON"))
}

func TestTitleCase_PreservesBranding(t *testing.T) {
	assert.Equal(t, "JavaScript", titleCase("javascript"))
	assert.Equal(t, "PostgreSQL", titleCase("postgresql"))
	assert.Equal(t, "iOS", titleCase("ios"))
	assert.Equal(t, "GitHub", titleCase("github"))
}

func TestTitleCase_EmptyInput(t *testing.T) {
	assert.Equal(t, "", titleCase(""))
	assert.Equal(t, "", titleCase("   "))
}
