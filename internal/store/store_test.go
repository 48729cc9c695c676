package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKV(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "miguel_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "miguel_a", []byte("1")))
	require.NoError(t, kv.Put(ctx, "miguel_a", []byte("2")))
	require.NoError(t, kv.Put(ctx, "miguel_b", []byte("3")))
	require.NoError(t, kv.Put(ctx, "miguelXc", []byte("4")))

	v, err := kv.Get(ctx, "miguel_a")
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))

	keys, err := kv.Keys(ctx, "miguel_")
	require.NoError(t, err)
	assert.Equal(t, []string{"miguel_a", "miguel_b"}, keys)

	require.NoError(t, kv.Delete(ctx, "miguel_a"))
	require.NoError(t, kv.Delete(ctx, "miguel_a"))
	_, err = kv.Get(ctx, "miguel_a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	p := progress.NewDailyProgress("p1", "2026-03-14")
	p.MathCount = 12
	p.FaithDone = true
	require.NoError(t, repo.Put(ctx, p))

	got, err = repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *p, *got)

	other, err := repo.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Nil(t, other, "records are scoped per profile")
}

func TestProgressRepoDefaultsMissingFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	legacy := `{"date":"2026-03-14","math_count":4}`
	require.NoError(t, s.KV().Put(ctx, ProgressKey("p1"), []byte(legacy)))

	got, err := s.ProgressRepo().Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ProfileID)
	assert.Equal(t, 4, got.MathCount)
	assert.Equal(t, progress.MinWordLevel, got.WordLevel)
	assert.Equal(t, progress.SchemaVersion, got.SchemaVersion)
	assert.False(t, got.ArcadeUnlocked)
}

func TestProfileRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	profiles, err := repo.LoadProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	id, err := repo.ActiveID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	ana := profile.ChildProfile{ID: "p1", Name: "Ana", Age: 6}
	require.NoError(t, repo.SaveProfiles(ctx, []profile.ChildProfile{ana}))
	require.NoError(t, repo.SetActive(ctx, &ana))

	profiles, err = repo.LoadProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Ana", profiles[0].Name)

	id, err = repo.ActiveID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	var legacy profile.ChildProfile
	ok, err := s.KV().GetJSON(ctx, ChildProfileKey, &legacy)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "p1", legacy.ID)

	require.NoError(t, repo.SetActive(ctx, nil))
	id, err = repo.ActiveID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	hash, err := repo.PINHash(ctx)
	require.NoError(t, err)
	assert.Nil(t, hash)
	require.NoError(t, repo.SetPINHash(ctx, []byte("h")))
	hash, err = repo.PINHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("h"), hash)
}

func TestContentCache(t *testing.T) {
	s := openTestStore(t)
	cache := s.ContentCache()
	ctx := context.Background()

	type entry struct {
		Title string `json:"title"`
	}
	var e entry
	ok, err := cache.Load(ctx, KindDevotional, "2026-03-14", "Ana", &e)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store(ctx, KindDevotional, "2026-03-13", "Ana", entry{Title: "old"}))
	require.NoError(t, cache.Store(ctx, KindDevotional, "2026-03-14", "Ana", entry{Title: "today"}))
	require.NoError(t, cache.Store(ctx, KindStoryImage, "2026-03-13", "Ana", []byte{1, 2, 3}))
	require.NoError(t, cache.Store(ctx, KindStory, "2026-03-13", "Ana", entry{Title: "story"}))

	ok, err = cache.Load(ctx, KindDevotional, "2026-03-14", "Ana", &e)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "today", e.Title)

	var img []byte
	ok, err = cache.Load(ctx, KindStoryImage, "2026-03-13", "Ana", &img)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, img)

	n, err := cache.Prune(ctx, KindDevotional, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = cache.Prune(ctx, KindStory, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "story prune must leave story images alone")

	ok, err = cache.Load(ctx, KindStoryImage, "2026-03-13", "Ana", &img)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGalleryQuota(t *testing.T) {
	s := openTestStore(t)
	g := s.Gallery(10)
	ctx := context.Background()

	id, err := g.Save(ctx, "sun", []byte("123456"))
	require.NoError(t, err)

	_, err = g.Save(ctx, "moon", []byte("12345"))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	_, err = g.Save(ctx, "star", []byte("1234"))
	require.NoError(t, err)

	list, err := g.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "star", list[0].Name)

	img, err := g.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("123456"), img.Data)

	require.NoError(t, g.Delete(ctx, id))
	_, err = g.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	used, err := g.Used(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, used)
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m1", Purpose: "story",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true,
		RequestBody: "req", ResponseBody: "resp",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m1", Purpose: "devotional",
		LatencyMs: 50, ErrorMessage: "boom",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "devotional", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "boom", events[0].ErrorMessage)

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.True(t, e.Success)
	assert.Equal(t, "req", e.RequestBody)
	assert.False(t, e.Timestamp.IsZero())

	missing, err := repo.GetLLMEvent(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "story", byPurpose[1].Purpose)
	assert.Equal(t, 10, byPurpose[1].InputTokens)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, 2, byModel[0].Calls)
}
