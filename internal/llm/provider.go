package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured answer per request.
type Provider interface {
	// Generate sends req and returns the answer. When req.Schema is set
	// the Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model requests are sent to.
	ModelID() string
}

// Request is a single-turn prompt. Stories and devotionals never need a
// conversation history.
type Request struct {
	System string
	Prompt string

	// Schema, when set, asks for JSON through the provider's native
	// structured output and validates the answer.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Schema is a named JSON Schema.
type Schema struct {
	// Name is kebab-case, e.g. "child-story".
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the answer and its accounting.
type Response struct {
	// Content is validated JSON when a Schema was sent, raw text otherwise.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish applies the structured-output checks shared by every provider.
// A truncated structured answer is never valid JSON worth parsing.
func finish(req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}
