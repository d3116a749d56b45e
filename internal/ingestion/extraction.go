// Package ingestion loads the analyzer's input documents: the materialized
// keyword list produced by the upstream extraction service and the user's
// skills document. Malformed documents degrade to empty lists instead of
// failing; only unreadable files surface as errors.
package ingestion

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/skillgap/schemas"
)

// ExtractionResult mirrors the extraction service's response document.
type ExtractionResult struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// LoadExtractionResult reads and decodes a materialized extraction result.
// A document that fails schema validation yields an empty keyword list and
// no error; a file that cannot be read yields an error.
func LoadExtractionResult(path string) (*ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction result %s: %w", path, err)
	}
	return DecodeExtractionResult(data), nil
}

// DecodeExtractionResult decodes an extraction document from bytes. The
// document may be the service's response object or a bare keyword array.
// Null entries become empty strings; non-string entries are dropped.
func DecodeExtractionResult(data []byte) *ExtractionResult {
	if err := schemas.ValidateExtractionResult(data); err != nil {
		log.Printf("Warning: extraction result rejected, using empty keyword list: %v", err)
		return &ExtractionResult{Keywords: []string{}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		// Unreachable after schema validation, but kept as a guard.
		return &ExtractionResult{Keywords: []string{}}
	}

	switch v := doc.(type) {
	case []any:
		return &ExtractionResult{Keywords: stringEntries(v)}
	case map[string]any:
		raw, _ := v["keywords"].([]any)
		keywords := stringEntries(raw)
		result := &ExtractionResult{Keywords: keywords, Count: len(keywords)}
		if count, ok := v["count"].(float64); ok {
			result.Count = int(count)
		}
		return result
	default:
		return &ExtractionResult{Keywords: []string{}}
	}
}

// stringEntries keeps string elements, coerces explicit nulls to empty
// strings, and drops everything else.
func stringEntries(entries []any) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			out = append(out, v)
		case nil:
			out = append(out, "")
		}
	}
	return out
}
