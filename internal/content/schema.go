package content

import "github.com/abhisek/miguel/internal/llm"

// StorySchema defines the JSON shape shared by stories and devotionals.
var StorySchema = &llm.Schema{
	Name:        "child-story",
	Description: "A short story for a young child with a title and a moral",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title (2-6 words)",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "The story text, 4-8 short sentences",
			},
			"moral": map[string]any{
				"type":        "string",
				"description": "One sentence the child can remember",
			},
		},
		"required":             []any{"title", "content", "moral"},
		"additionalProperties": false,
	},
}
