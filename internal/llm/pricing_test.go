package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini-2024-07-18")
	require.NotNil(t, c)
	assert.Equal(t, 0.15, c.InputPerMTok, "longest prefix wins over gpt-4o")

	c = LookupCost("google/gemini-2.0-flash-001")
	require.NotNil(t, c)
	assert.Equal(t, 0.1, c.InputPerMTok)

	assert.Nil(t, LookupCost("mock"))
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	assert.InDelta(t, 0.006, c.Cost(1000, 1000), 1e-12)
	assert.Zero(t, c.Cost(0, 0))
}
