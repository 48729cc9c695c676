// Package router keeps the stack of screens. Home sits at the bottom;
// games are pushed over it and popped back with Esc.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/miguel/internal/screen"
)

type (
	// PushScreenMsg opens Screen over the active one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the active screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the active screen in place, as the welcome
	// splash does when it hands over to home.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// To returns a command that opens s.
func To(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back is a command that closes the active screen.
func Back() tea.Msg { return PopScreenMsg{} }

// Swap returns a command that replaces the active screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Router is never empty: the bottom screen cannot be popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen and resumes the one below when it is a
// screen.Resumer, so home can reload today's missions.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen { return r.stack[len(r.stack)-1] }

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}
	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
