package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoImage is returned when the image API answers without image data.
var ErrNoImage = errors.New("image response has no data")

// ImageGenerator draws story illustrations with the OpenAI images API.
type ImageGenerator struct {
	client *openai.Client
	model  string
	size   string
}

// NewImageGenerator returns an illustrator when cfg's provider can draw.
// Only OpenAI can; every other provider reports false.
func NewImageGenerator(cfg Config) (*ImageGenerator, bool) {
	if cfg.Provider != ProviderOpenAI {
		return nil, false
	}
	client, err := newOpenAIClient(cfg)
	if err != nil {
		return nil, false
	}
	return &ImageGenerator{
		client: client,
		model:  openai.CreateImageModelDallE3,
		size:   openai.CreateImageSize1024x1024,
	}, true
}

// Illustrate returns the PNG bytes for prompt.
func (g *ImageGenerator) Illustrate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		N:              1,
		Size:           g.size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, openAIError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrNoImage
	}
	png, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return png, nil
}
