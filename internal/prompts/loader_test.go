package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("evaluation.json", "evaluate-system")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("evaluation.json", "no-such-key")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "evaluate-system")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("evaluation.json", "no-such-key")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("基準：{{.Criterion}} テキスト：{{.ScopeText}}", map[string]string{
		"Criterion": "接続詞の妥当性",
		"ScopeText": "本文です",
	})

	assert.Equal(t, "基準：接続詞の妥当性 テキスト：本文です", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})

	assert.Equal(t, "x {{.Unknown}}", result)
}
