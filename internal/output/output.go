// Package output renders the game's console output. Styling is injected
// through the StyleProvider interface, so the printer itself carries no
// terminal detection.
package output

// StyleProvider supplies styled text rendering. The printer depends only on
// this interface, not on a concrete styling backend.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable reports whether the provider can actually style. When it
	// cannot, the printer falls back to plain text.
	IsAvailable() bool
}

// TextStyle renders text with styling applied.
type TextStyle interface {
	Render(text string) string
}

// SemanticType classifies output for consistent styling.
type SemanticType string

const (
	// SemanticPlain is text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticQuestion is a question prompt.
	SemanticQuestion SemanticType = "question"
	// SemanticCorrect is feedback on a correct answer.
	SemanticCorrect SemanticType = "correct"
	// SemanticIncorrect is feedback on an incorrect answer.
	SemanticIncorrect SemanticType = "incorrect"
	// SemanticStat is a statistics line.
	SemanticStat SemanticType = "stat"
	// SemanticError is an error message.
	SemanticError SemanticType = "error"
)
