package ingestion

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/skillgap/schemas"
)

// LoadUserSkills reads and decodes a user-skills document. The document may
// be a bare array of skill strings or an object with a "skills" array.
// Malformed documents yield an empty list and no error.
func LoadUserSkills(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file %s: %w", path, err)
	}
	return DecodeUserSkills(data), nil
}

// DecodeUserSkills decodes a user-skills document from bytes, filtering out
// anything that is not a string.
func DecodeUserSkills(data []byte) []string {
	if err := schemas.ValidateUserSkills(data); err != nil {
		log.Printf("Warning: skills document rejected, using empty skill list: %v", err)
		return []string{}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{}
	}

	switch v := doc.(type) {
	case []any:
		return stringEntries(v)
	case map[string]any:
		raw, _ := v["skills"].([]any)
		return stringEntries(raw)
	default:
		return []string{}
	}
}
