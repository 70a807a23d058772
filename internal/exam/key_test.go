package exam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerKey(t *testing.T) {
	data := []byte(`{
		"1": {"text": "A process is a program in execution.", "keywords": ["process", "execution"]},
		"2": {"correctOption": "B"},
		"5A": {"text": "def add(a, b): return a + b", "language": "python"},
		"6": {"components": ["CPU", "ALU"]}
	}`)

	key, err := ParseAnswerKey(data)
	require.NoError(t, err)
	require.Len(t, key, 4)

	assert.Equal(t, []string{"process", "execution"}, key["1"].Keywords)
	assert.Equal(t, "B", key["2"].CorrectOption)
	assert.Equal(t, "python", key["5a"].Language, "key identifiers are normalized")
	assert.Equal(t, []string{"CPU", "ALU"}, key["6"].Components)
}

func TestParseAnswerKeyInvalidJSON(t *testing.T) {
	_, err := ParseAnswerKey([]byte(`{"1": `))
	require.Error(t, err)
}

func TestLoadAnswerKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"1": {"text": "answer"}}`), 0o644))

	key, err := LoadAnswerKey(path)
	require.NoError(t, err)
	assert.Equal(t, "answer", key["1"].Text)
}

func TestLoadAnswerKeyMissingFile(t *testing.T) {
	_, err := LoadAnswerKey(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
