// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/styles"
)

// State represents the pagination state shown on the left of the bar.
type State string

const (
	StateReady     State = "ready"
	StateLoading   State = "loading"
	StateExhausted State = "exhausted"
	StateError     State = "error"
)

// Bar displays load progress and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	bindings []key.Binding
	state    State
	message  string
	visible  int
	total    int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		bindings: km.ShortHelp(),
		state:    StateReady,
		width:    80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	counts := fmt.Sprintf("%d of %d creatives", s.visible, s.total)
	if s.visible == s.total {
		counts = fmt.Sprintf("%d creatives", s.total)
	}

	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render(counts + " · loading...")
	case StateExhausted:
		return s.styles.Normal.Render(counts + " · all loaded")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("%s · error: %s", counts, s.message))
		}
		return s.styles.Error.Render(counts + " · error")
	case StateReady:
	}
	return s.styles.Normal.Render(counts)
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message shown in StateError.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the visible and total creative counts.
func (s *Bar) SetCounts(visible, total int) {
	s.visible = visible
	s.total = total
}

// SetBindings replaces the keybinding hints. Nil restores the short help.
func (s *Bar) SetBindings(bindings []key.Binding) {
	if bindings == nil {
		bindings = s.keymap.ShortHelp()
	}
	s.bindings = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
