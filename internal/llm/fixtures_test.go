package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

var storySchema = &Schema{
	Name: "test-story",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":   map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
			"moral":   map[string]any{"type": "string"},
			"pages":   map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []string{"title", "content", "moral"},
		"additionalProperties": false,
	},
}

const storyJSON = `{"title":"The Brave Boat","content":"A little boat crossed the bay.","moral":"Friends help."}`

func storyRequest() Request {
	return Request{
		System:    "You write gentle stories for young children.",
		Prompt:    "Write a story for Ana, a 6-year-old girl.",
		Schema:    storySchema,
		MaxTokens: 600,
	}
}

// jsonServer answers every request with status and body, after handing
// the decoded request to inspect when it is non-nil.
func jsonServer(t *testing.T, status int, body any, inspect func(r *http.Request, req map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			inspect(r, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
