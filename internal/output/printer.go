package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the console output handler. It is safe for concurrent use; the
// game loop and the interrupt handler write through the same instance.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	forcePlain    bool
	silent        bool

	mu sync.Mutex
}

// Option configures a Printer.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider. A nil
// or unavailable provider leaves the printer plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter redirects output to the given writer, os.Stdout by default.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText forces plain output regardless of any StyleProvider.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}

// Silent suppresses all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// TestMode makes output deterministic for tests regardless of terminal
// capabilities.
func TestMode() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}

// NewPrinter creates a Printer writing to os.Stdout unless configured
// otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without styling or trailing newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without styling.
func (p *Printer) Printf(format string, args ...any) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Question outputs a question prompt.
func (p *Printer) Question(text string) {
	p.output(SemanticQuestion, text, true)
}

// Correct outputs positive answer feedback.
func (p *Printer) Correct(text string) {
	p.output(SemanticCorrect, text, true)
}

// Incorrect outputs negative answer feedback.
func (p *Printer) Incorrect(text string) {
	p.output(SemanticIncorrect, text, true)
}

// Stat outputs a statistics line.
func (p *Printer) Stat(text string) {
	p.output(SemanticStat, text, true)
}

// Error outputs an error message.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// IsStylable reports whether the printer will apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	result := text
	if p.IsStylable() {
		result = p.styleProvider.GetStyle(semantic).Render(text)
	}
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	// write errors on console output are not actionable
	_, _ = fmt.Fprint(p.writer, result)
}
