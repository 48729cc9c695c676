package profile

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/miguel/internal/progress"
)

type memRepo struct {
	profiles []ChildProfile
	active   string
	legacy   *ChildProfile
	pin      []byte
}

func (m *memRepo) LoadProfiles(context.Context) ([]ChildProfile, error) {
	return slices.Clone(m.profiles), nil
}

func (m *memRepo) SaveProfiles(_ context.Context, p []ChildProfile) error {
	m.profiles = slices.Clone(p)
	return nil
}

func (m *memRepo) ActiveID(context.Context) (string, error) { return m.active, nil }

func (m *memRepo) SetActive(_ context.Context, p *ChildProfile) error {
	if p == nil {
		m.active, m.legacy = "", nil
		return nil
	}
	m.active = p.ID
	cp := *p
	m.legacy = &cp
	return nil
}

func (m *memRepo) PINHash(context.Context) ([]byte, error) { return m.pin, nil }

func (m *memRepo) SetPINHash(_ context.Context, h []byte) error {
	m.pin = h
	return nil
}

func newTestService(t *testing.T) (*Service, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	s, err := NewService(context.Background(), repo)
	require.NoError(t, err)
	s.gate.cost = bcrypt.MinCost
	return s, repo
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile ChildProfile
		wantErr error
	}{
		{"ok", ChildProfile{Name: "Ana", Age: 6}, nil},
		{"missing name", ChildProfile{Name: "  ", Age: 6}, ErrInvalidName},
		{"too young", ChildProfile{Name: "Ana", Age: 2}, ErrInvalidAge},
		{"too old", ChildProfile{Name: "Ana", Age: 11}, ErrInvalidAge},
		{"bounds", ChildProfile{Name: "Ana", Age: 10}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPromptDescription(t *testing.T) {
	p := ChildProfile{Name: "Ana", Age: 6, Gender: "Girl", HairColor: "brown", HairStyle: "curly", EyeColor: "green"}
	assert.Equal(t, "Ana, a 6-year-old girl with curly brown hair, green eyes", p.PromptDescription())

	q := ChildProfile{Name: "Sam", Age: 4}
	assert.Equal(t, "Sam, a 4-year-old child", q.PromptDescription())
}

func TestGuestWhenNoProfiles(t *testing.T) {
	s, _ := newTestService(t)
	assert.Equal(t, progress.GuestProfileID, s.ActiveProfileID())
	_, ok := s.Active()
	assert.False(t, ok)
}

func TestCreateFirstBecomesActive(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	a, err := s.Create(ctx, ChildProfile{Name: " Ana ", Age: 6})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, a.ID, s.ActiveProfileID())
	require.NotNil(t, repo.legacy)
	assert.Equal(t, a.ID, repo.legacy.ID)

	b, err := s.Create(ctx, ChildProfile{Name: "Ben", Age: 8})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID, s.ActiveProfileID(), "second profile must not steal focus")
	assert.Len(t, repo.profiles, 2)
}

func TestCreateLimit(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	for i := 0; i < MaxProfiles; i++ {
		_, err := s.Create(ctx, ChildProfile{Name: "Kid", Age: 5})
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, ChildProfile{Name: "Extra", Age: 5})
	assert.ErrorIs(t, err, ErrProfileLimit)
	assert.Len(t, s.List(), MaxProfiles)
}

func TestCreateRejectsInvalid(t *testing.T) {
	s, repo := newTestService(t)
	_, err := s.Create(context.Background(), ChildProfile{Name: "Ana", Age: 12})
	assert.ErrorIs(t, err, ErrInvalidAge)
	assert.Empty(t, repo.profiles)
}

func TestSetActive(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	_, _ = s.Create(ctx, ChildProfile{Name: "Ana", Age: 6})
	b, _ := s.Create(ctx, ChildProfile{Name: "Ben", Age: 8})

	require.NoError(t, s.SetActive(ctx, b.ID))
	assert.Equal(t, b.ID, s.ActiveProfileID())

	assert.ErrorIs(t, s.SetActive(ctx, "missing"), ErrNotFound)
}

func TestNewServiceRestoresState(t *testing.T) {
	repo := &memRepo{
		profiles: []ChildProfile{{ID: "p1", Name: "Ana", Age: 6}},
		active:   "p1",
	}
	s, err := NewService(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, "p1", s.ActiveProfileID())

	repo.active = "deleted"
	s, err = NewService(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, progress.GuestProfileID, s.ActiveProfileID())
}

func TestParentGate(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	g := s.Gate()

	set, err := g.IsSet(ctx)
	require.NoError(t, err)
	assert.False(t, set)
	assert.ErrorIs(t, g.Verify(ctx, "1234"), ErrPINNotSet)

	assert.ErrorIs(t, g.SetPIN(ctx, "", "12"), ErrWeakPIN)
	assert.ErrorIs(t, g.SetPIN(ctx, "", "12ab"), ErrWeakPIN)
	require.NoError(t, g.SetPIN(ctx, "", "1234"))

	assert.NoError(t, g.Verify(ctx, "1234"))
	assert.ErrorIs(t, g.Verify(ctx, "4321"), ErrWrongPIN)

	assert.ErrorIs(t, g.SetPIN(ctx, "0000", "5678"), ErrWrongPIN)
	require.NoError(t, g.SetPIN(ctx, "1234", "5678"))
	assert.NoError(t, g.Verify(ctx, "5678"))
}

func TestRemoveRequiresPIN(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()
	a, _ := s.Create(ctx, ChildProfile{Name: "Ana", Age: 6})
	b, _ := s.Create(ctx, ChildProfile{Name: "Ben", Age: 8})

	assert.ErrorIs(t, s.Remove(ctx, b.ID, "1234"), ErrPINNotSet)
	require.NoError(t, s.Gate().SetPIN(ctx, "", "1234"))
	assert.ErrorIs(t, s.Remove(ctx, b.ID, "9999"), ErrWrongPIN)
	assert.Len(t, s.List(), 2)

	require.NoError(t, s.Remove(ctx, b.ID, "1234"))
	assert.Len(t, s.List(), 1)
	assert.Equal(t, a.ID, s.ActiveProfileID())

	require.NoError(t, s.Remove(ctx, a.ID, "1234"))
	assert.Equal(t, progress.GuestProfileID, s.ActiveProfileID())
	assert.Nil(t, repo.legacy)
	assert.ErrorIs(t, s.Remove(ctx, a.ID, "1234"), ErrNotFound)
}
