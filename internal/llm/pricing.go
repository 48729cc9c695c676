package llm

import "strings"

// ModelCost is a price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD price of one request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// prices is keyed by model id prefix so dated snapshots share a row.
// OpenRouter ids carry a vendor prefix, stripped before lookup.
var prices = []struct {
	prefix string
	cost   ModelCost
}{
	{"claude-haiku-4", ModelCost{1, 5}},
	{"claude-3-5-haiku", ModelCost{0.8, 4}},
	{"claude-sonnet-4", ModelCost{3, 15}},
	{"claude-opus-4", ModelCost{15, 75}},
	{"gpt-4o-mini", ModelCost{0.15, 0.6}},
	{"gpt-4o", ModelCost{2.5, 10}},
	{"gpt-4.1-nano", ModelCost{0.1, 0.4}},
	{"gpt-4.1-mini", ModelCost{0.4, 1.6}},
	{"gpt-4.1", ModelCost{2, 8}},
	{"gemini-2.0-flash-lite", ModelCost{0.075, 0.3}},
	{"gemini-2.0-flash", ModelCost{0.1, 0.4}},
	{"gemini-2.5-flash", ModelCost{0.3, 2.5}},
	{"gemini-2.5-pro", ModelCost{1.25, 10}},
}

// LookupCost returns the price for modelID by longest matching prefix,
// or nil when the model is unknown.
func LookupCost(modelID string) *ModelCost {
	if i := strings.LastIndexByte(modelID, '/'); i >= 0 {
		modelID = modelID[i+1:]
	}
	var best *ModelCost
	bestLen := 0
	for i := range prices {
		p := &prices[i]
		if strings.HasPrefix(modelID, p.prefix) && len(p.prefix) > bestLen {
			c := p.cost
			best, bestLen = &c, len(p.prefix)
		}
	}
	return best
}
