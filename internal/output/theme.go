package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is the default lipgloss-backed StyleProvider. Availability follows
// the terminal's colour profile.
type Theme struct {
	styles    map[SemanticType]lipgloss.Style
	available bool
}

// NewTheme builds the default theme. On terminals without colour support the
// theme reports itself unavailable and the printer stays plain.
func NewTheme() *Theme {
	return &Theme{
		available: termenv.EnvColorProfile() != termenv.Ascii,
		styles: map[SemanticType]lipgloss.Style{
			SemanticQuestion:  lipgloss.NewStyle().Bold(true),
			SemanticCorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			SemanticIncorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			SemanticStat:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			SemanticError:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		},
	}
}

// GetStyle implements StyleProvider.
func (t *Theme) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return lipglossStyle{style: style}
	}
	return plainStyle{}
}

// IsAvailable implements StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t.available
}

// lipglossStyle adapts lipgloss.Style to the TextStyle interface.
type lipglossStyle struct {
	style lipgloss.Style
}

func (s lipglossStyle) Render(text string) string {
	return s.style.Render(text)
}

// plainStyle renders text unchanged.
type plainStyle struct{}

func (plainStyle) Render(text string) string {
	return text
}
