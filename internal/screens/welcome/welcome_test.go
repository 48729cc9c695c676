package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/miguel/internal/router"
	"github.com/abhisek/miguel/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

func splash(player string) (*WelcomeScreen, *int) {
	built := 0
	return New(player, func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func play(w *WelcomeScreen, frames int) tea.Cmd {
	var cmd tea.Cmd
	for range frames {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestPhaseAt(t *testing.T) {
	assert.Equal(t, phaseMascot, phaseAt(0))
	assert.Equal(t, phaseSparkles, phaseAt(500*time.Millisecond))
	assert.Equal(t, phaseGreeting, phaseAt(2*time.Second))
	assert.Equal(t, phaseIdle, phaseAt(time.Minute))
}

func TestGreetingAppearsAfterBanner(t *testing.T) {
	w, _ := splash("Ana")
	assert.NotContains(t, w.View(80, 30), "Ready to play")

	play(w, 14)
	assert.NotContains(t, w.View(80, 30), "Ready to play")

	play(w, 1)
	assert.Contains(t, w.View(80, 30), "Hi, Ana! Ready to play?")
}

func TestGuestGreeting(t *testing.T) {
	w, _ := splash("Guest")
	assert.Equal(t, "Hi there! Ready to play?", w.greeting())
}

func TestAnimationSettles(t *testing.T) {
	w, built := splash("")
	play(w, 100)
	assert.Equal(t, 4500*time.Millisecond, w.elapsed)
	assert.Zero(t, *built, "home waits for a key")
}

func TestKeyLeavesMidAnimation(t *testing.T) {
	w, built := splash("Ana")
	play(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &homeStub{}, msg.Screen)
	assert.Equal(t, 1, *built)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b'})
	assert.Nil(t, cmd, "second key is ignored")
	assert.Nil(t, play(w, 1), "frames stop once left")
	assert.Equal(t, 1, *built)
}
