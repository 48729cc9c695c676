package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(storySchema.Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"title", "content", "moral"}, s.Required)
	require.Contains(t, s.Properties, "pages")
	assert.Equal(t, genai.TypeInteger, s.Properties["pages"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["moral"].Type)
}

func TestGeminiSchemaFromJSON(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "enum": []any{"story", "devotional"}},
	})
	assert.Equal(t, genai.TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, []string{"story", "devotional"}, s.Items.Enum)
}

func TestNewGeminiMissingKey(t *testing.T) {
	_, err := newGemini(context.Background(), Config{Provider: ProviderGemini})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
