package exam

import (
	"encoding/json"
	"fmt"
	"os"
)

// keyEntry is the on-disk shape of one answer key entry.
type keyEntry struct {
	Text          string   `json:"text"`
	Keywords      []string `json:"keywords,omitempty"`
	CorrectOption string   `json:"correctOption,omitempty"`
	Components    []string `json:"components,omitempty"`
	Language      string   `json:"language,omitempty"`
}

// LoadAnswerKey reads a JSON answer key keyed by question number.
func LoadAnswerKey(path string) (map[string]ModelAnswer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer key: %w", err)
	}
	return ParseAnswerKey(data)
}

// ParseAnswerKey decodes an answer key document. Question numbers are
// normalized so "5A" in the key matches question "5a" on the paper.
func ParseAnswerKey(data []byte) (map[string]ModelAnswer, error) {
	var raw map[string]keyEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answer key: %w", err)
	}

	key := make(map[string]ModelAnswer, len(raw))
	for num, e := range raw {
		key[NormalizeIdentifier(num)] = ModelAnswer{
			Text:          e.Text,
			Keywords:      e.Keywords,
			CorrectOption: e.CorrectOption,
			Components:    e.Components,
			Language:      e.Language,
		}
	}
	return key, nil
}
