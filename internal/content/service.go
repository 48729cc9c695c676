// Package content produces the daily story and devotional for a child.
// Generated text is cached per day and child; any failure falls back to
// the static catalog so the caller always gets something to show.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/catalog"
	"github.com/abhisek/miguel/internal/llm"
	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
	"github.com/abhisek/miguel/internal/store"
)

const (
	kindStory      = store.KindStory
	kindDevotional = store.KindDevotional
	kindImage      = store.KindStoryImage
)

var errNoProvider = errors.New("content: no provider configured")

// Service generates and caches stories and devotionals.
type Service struct {
	provider llm.Provider
	cache    Cache
	catalog  *catalog.Catalog
	images   ImageGenerator
	cfg      Config
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithImages enables story illustrations.
func WithImages(g ImageGenerator) Option {
	return func(s *Service) { s.images = g }
}

// WithConfig overrides generation settings.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithClock overrides the clock used for the cache day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger for fallback warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a content service. provider and cache may be nil:
// without a provider every call returns catalog text.
func NewService(provider llm.Provider, cache Cache, cat *catalog.Catalog, opts ...Option) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Service{
		provider: provider,
		cache:    cache,
		catalog:  cat,
		cfg:      DefaultConfig(),
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Story returns today's story for p.
func (s *Service) Story(ctx context.Context, p profile.ChildProfile) Content {
	return s.get(ctx, kindStory, p)
}

// Devotional returns today's devotional for p.
func (s *Service) Devotional(ctx context.Context, p profile.ChildProfile) Content {
	return s.get(ctx, kindDevotional, p)
}

// StoryImage returns an illustration for c, generating and caching it on
// first use. It reports false when no image is available.
func (s *Service) StoryImage(ctx context.Context, p profile.ChildProfile, c Content) ([]byte, bool) {
	if s.images == nil || c.Fallback {
		return nil, false
	}
	date := progress.DayKey(s.now())
	name := cacheName(p)

	var data []byte
	if s.cache != nil {
		ok, err := s.cache.Load(ctx, kindImage, date, name, &data)
		if err != nil {
			s.logger.Warn("story image cache read failed", zap.Error(err))
		} else if ok && len(data) > 0 {
			return data, true
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeImage)
	data, err := s.images.Illustrate(ctx, buildImagePrompt(p, c))
	if err != nil || len(data) == 0 {
		s.logger.Warn("story image generation failed", zap.Error(err))
		return nil, false
	}
	s.store(ctx, kindImage, date, name, data)
	return data, true
}

// Prune drops cached content from previous days.
func (s *Service) Prune(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	date := progress.DayKey(s.now())
	for _, kind := range []string{kindStory, kindDevotional, kindImage} {
		n, err := s.cache.Prune(ctx, kind, date)
		if err != nil {
			return fmt.Errorf("prune %s: %w", kind, err)
		}
		if n > 0 {
			s.logger.Debug("pruned cached content", zap.String("kind", kind), zap.Int("entries", n))
		}
	}
	return nil
}

func (s *Service) get(ctx context.Context, kind string, p profile.ChildProfile) Content {
	date := progress.DayKey(s.now())
	name := cacheName(p)

	if s.cache != nil {
		var cached Content
		ok, err := s.cache.Load(ctx, kind, date, name, &cached)
		if err != nil {
			s.logger.Warn("content cache read failed", zap.String("kind", kind), zap.Error(err))
		} else if ok && cached.Body != "" {
			return cached
		}
	}

	c, err := s.generate(ctx, kind, p, date)
	if err != nil {
		s.logger.Warn("using fallback content",
			zap.String("kind", kind),
			zap.String("profile", p.ID),
			zap.Error(err))
		return s.fallback(kind, date)
	}

	s.store(ctx, kind, date, name, c)
	return c
}

func (s *Service) generate(ctx context.Context, kind string, p profile.ChildProfile, date string) (Content, error) {
	if s.provider == nil {
		return Content{}, errNoProvider
	}

	system := storySystemPrompt
	purpose := llm.PurposeStory
	if kind == kindDevotional {
		system = devotionalSystemPrompt
		purpose = llm.PurposeDevotional
	}
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System:      system,
		Prompt:      buildUserMessage(kind, p, date),
		Schema:      StorySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Content{}, fmt.Errorf("%s generation: %w", kind, err)
	}

	var out Content
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Content{}, fmt.Errorf("parse %s response: %w", kind, err)
	}
	out.Title = strings.TrimSpace(out.Title)
	out.Body = strings.TrimSpace(out.Body)
	out.Moral = strings.TrimSpace(out.Moral)
	if out.Body == "" {
		return Content{}, fmt.Errorf("%s response has no text", kind)
	}
	return out, nil
}

// fallback picks a catalog entry by day so the text is stable for the
// whole day and rotates across days.
func (s *Service) fallback(kind, date string) Content {
	pool := s.catalog.Stories
	if kind == kindDevotional {
		pool = s.catalog.Devotionals
	}
	if len(pool) == 0 {
		return Content{Title: "Today", Body: "Take a moment to be thankful for today.", Fallback: true}
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fromFallback(pool[0])
	}
	return fromFallback(pool[day.YearDay()%len(pool)])
}

func (s *Service) store(ctx context.Context, kind, date, name string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Store(ctx, kind, date, name, v); err != nil {
		s.logger.Warn("content cache write failed", zap.String("kind", kind), zap.Error(err))
	}
}

func cacheName(p profile.ChildProfile) string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return strings.ToLower(n)
	}
	return progress.GuestProfileID
}
