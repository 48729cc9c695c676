package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/store"
)

type loggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	logger   *zap.Logger
}

// WithLogging records every request as an llm_request event. A nil repo
// only logs; a failed append never fails the request.
func WithLogging(p Provider, providerName string, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggingProvider{inner: p, provider: providerName, events: events, logger: logger}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	l.logger.Debug("llm request",
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Error(err))

	if l.events != nil {
		if aerr := l.events.AppendLLMRequest(ctx, ev); aerr != nil {
			l.logger.Warn("recording llm request", zap.Error(aerr))
		}
	}
	return resp, err
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

// transcript renders req the way `miguel llm view` shows it.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString("[system]\n" + req.System + "\n\n")
	}
	b.WriteString("[user]\n" + req.Prompt + "\n")
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString("\n[schema " + req.Schema.Name + "]\n" + string(def) + "\n")
		}
	}
	return b.String()
}
