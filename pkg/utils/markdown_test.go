package utils_test

import (
	"testing"

	"tripboard-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFencedJSON(t *testing.T) {
	text := "Here is your trip:\n```json\n{\n  \"name\": \"Kyoto Escape\",\n  \"duration\": 3\n}\n```\nEnjoy!"

	raw, ok := utils.ExtractFencedJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Kyoto Escape","duration":3}`, string(raw))
	assert.Equal(t, `{"name":"Kyoto Escape","duration":3}`, string(raw))
}

func TestExtractFencedJSON_UsesFirstBlock(t *testing.T) {
	text := "```json\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```"

	raw, ok := utils.ExtractFencedJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))
}

func TestExtractFencedJSON_Rejects(t *testing.T) {
	cases := map[string]string{
		"no fence":           `{"name":"Plain JSON is not accepted"}`,
		"fence without tag":  "```\n{\"a\":1}\n```",
		"invalid json":       "```json\n{\"a\":1,,}\n```",
		"unterminated fence": "```json\n{\"a\":1}",
		"empty":              "",
		"null body":          "```json\nnull\n```",
		"array body":         "```json\n[]\n```",
		"string body":        "```json\n\"x\"\n```",
		"number body":        "```json\n42\n```",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			raw, ok := utils.ExtractFencedJSON(text)
			assert.False(t, ok)
			assert.Nil(t, raw)
		})
	}
}
