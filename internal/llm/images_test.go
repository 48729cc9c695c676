package llm

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageResponse(data ...map[string]any) map[string]any {
	if data == nil {
		data = []map[string]any{}
	}
	return map[string]any{"created": 1, "data": data}
}

func TestIllustrate(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	srv := jsonServer(t, http.StatusOK, imageResponse(map[string]any{"b64_json": base64.StdEncoding.EncodeToString(png)}),
		func(r *http.Request, req map[string]any) {
			assert.Equal(t, "/v1/images/generations", r.URL.Path)
			assert.Equal(t, "b64_json", req["response_format"])
			assert.Equal(t, "a boat in a calm bay", req["prompt"])
		})

	g, ok := NewImageGenerator(Config{Provider: ProviderOpenAI, APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.True(t, ok)

	got, err := g.Illustrate(context.Background(), "a boat in a calm bay")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestIllustrateEmpty(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, imageResponse(), nil)
	g, ok := NewImageGenerator(Config{Provider: ProviderOpenAI, APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.True(t, ok)

	_, err := g.Illustrate(context.Background(), "a boat")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestNewImageGenerator(t *testing.T) {
	_, ok := NewImageGenerator(Config{Provider: ProviderAnthropic, APIKey: "k"})
	assert.False(t, ok)
	_, ok = NewImageGenerator(Config{Provider: ProviderOpenRouter, APIKey: "k"})
	assert.False(t, ok)
	_, ok = NewImageGenerator(Config{Provider: ProviderOpenAI})
	assert.False(t, ok)
}
