package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtractionResult_ServiceResponse(t *testing.T) {
	result := DecodeExtractionResult([]byte(`{"keywords": ["Python", "SQL", "AWS"], "count": 3}`))

	assert.Equal(t, []string{"Python", "SQL", "AWS"}, result.Keywords)
	assert.Equal(t, 3, result.Count)
}

func TestDecodeExtractionResult_BareArray(t *testing.T) {
	result := DecodeExtractionResult([]byte(`["Python", "SQL"]`))

	assert.Equal(t, []string{"Python", "SQL"}, result.Keywords)
}

func TestDecodeExtractionResult_NonStringEntriesFiltered(t *testing.T) {
	result := DecodeExtractionResult([]byte(`{"keywords": ["Python", 42, {"x": 1}, "SQL"]}`))

	assert.Equal(t, []string{"Python", "SQL"}, result.Keywords)
	assert.Equal(t, 2, result.Count)
}

func TestDecodeExtractionResult_NullEntriesCoerced(t *testing.T) {
	result := DecodeExtractionResult([]byte(`["Python", null]`))

	assert.Equal(t, []string{"Python", ""}, result.Keywords)
}

func TestDecodeExtractionResult_MalformedDegradesToEmpty(t *testing.T) {
	for _, doc := range []string{`{"count": 3}`, `"Python"`, `17`, `{"keywords": [`} {
		result := DecodeExtractionResult([]byte(doc))
		assert.NotNil(t, result, "doc %s", doc)
		assert.Empty(t, result.Keywords, "doc %s", doc)
	}
}

func TestLoadExtractionResult_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keywords": ["Python"]}`), 0o644))

	result, err := LoadExtractionResult(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, result.Keywords)
}

func TestLoadExtractionResult_MissingFile(t *testing.T) {
	_, err := LoadExtractionResult(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
