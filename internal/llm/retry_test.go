package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantRetry wraps p with a sleep that records waits instead of sleeping.
func instantRetry(p Provider, attempts int) (*retryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(p, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}, nil).(*retryProvider)
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func story() MockResponse { return MockResponse{Content: json.RawMessage(storyJSON)} }

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		story(),
	)
	r, waits := instantRetry(mock, 3)

	resp, err := r.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	assert.JSONEq(t, storyJSON, string(resp.Content))
	assert.Equal(t, 3, mock.CallCount())
	assert.Len(t, *waits, 2)
}

func TestRetryGivesUp(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		story(),
	)
	r, waits := instantRetry(mock, 2)

	_, err := r.Generate(context.Background(), storyRequest())
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, mock.CallCount())
	assert.Len(t, *waits, 1, "no wait after the last attempt")
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	for name, err := range map[string]error{
		"rejected":  &ErrRequestRejected{Status: 401, Err: errors.New("bad key")},
		"truncated": &ErrMaxTokensExceeded{},
		"canceled":  context.Canceled,
	} {
		t.Run(name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: err}, story())
			r, _ := instantRetry(mock, 3)

			_, got := r.Generate(context.Background(), storyRequest())
			assert.ErrorIs(t, got, err)
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	invalid := func() MockResponse { return MockResponse{Err: &ErrInvalidResponse{Err: errors.New("missing moral")}} }
	mock := NewMockProvider(invalid(), invalid(), story())
	r, _ := instantRetry(mock, 5)

	_, err := r.Generate(context.Background(), storyRequest())
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 7 * time.Second}}, story())
	r, waits := instantRetry(mock, 2)

	_, err := r.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, *waits)
}

func TestRetryStopsWhenContextDone(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, story())
	r, _ := instantRetry(mock, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, storyRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBackoffBounds(t *testing.T) {
	r, _ := instantRetry(NewMockProvider(), 5)
	for attempt := range 5 {
		wait := r.backoff(attempt, &ErrProviderUnavailable{})
		base := min(100*time.Millisecond<<attempt, time.Second)
		assert.GreaterOrEqual(t, wait, base*8/10, "attempt %d", attempt)
		assert.LessOrEqual(t, wait, base*12/10, "attempt %d", attempt)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, Provider(mock), WithTimeout(mock, 0))

	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), storyRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())
}
