package components

import (
	"strconv"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

// TextInput is a focused bubbles text field. A digits-only field drops
// every other printable key, so a child typing an answer cannot make a
// typo the checker would reject.
type TextInput struct {
	field      textinput.Model
	digitsOnly bool

	// verdict is 0 before Submit, then +1 or -1.
	verdict int
}

func NewTextInput(placeholder string, digitsOnly bool, limit int) TextInput {
	f := textinput.New()
	f.Placeholder = placeholder
	f.CharLimit = limit
	f.Focus()
	return TextInput{field: f, digitsOnly: digitsOnly}
}

func (t TextInput) Init() tea.Cmd { return t.field.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && t.digitsOnly && rejectsKey(key.String()) {
		return t, nil
	}
	var cmd tea.Cmd
	t.field, cmd = t.field.Update(msg)
	return t, cmd
}

func rejectsKey(k string) bool {
	if utf8.RuneCountInString(k) != 1 {
		return false // named keys such as backspace
	}
	return k[0] < '0' || k[0] > '9'
}

// View shows the field with a ✓ or ✗ once the answer was checked.
func (t TextInput) View() string {
	switch t.verdict {
	case 1:
		return t.field.View() + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case -1:
		return t.field.View() + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return t.field.View()
}

func (t TextInput) Value() string { return t.field.Value() }

// NumericValue parses the field as a whole number.
func (t TextInput) NumericValue() (int, error) { return strconv.Atoi(t.field.Value()) }

// Submit records whether the answer was right.
func (t *TextInput) Submit(correct bool) {
	t.verdict = -1
	if correct {
		t.verdict = 1
	}
}
