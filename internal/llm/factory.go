package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/store"
)

// NewProvider builds the provider cfg names, wrapped so each call is
// timed out, retried and recorded:
// timeout → retry → logging → vendor.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderMock:
		return NewMockProvider(), nil
	case ProviderAnthropic:
		base, err = newAnthropic(cfg)
	case ProviderOpenAI, ProviderOpenRouter:
		base, err = newOpenAI(cfg)
	case ProviderGemini:
		base, err = newGemini(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("llm %s: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, events, logger)
	p = WithRetry(p, cfg.Retry, logger)
	return WithTimeout(p, cfg.Timeout), nil
}
