package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeStyleProvider wraps every semantic in angle brackets so tests can see
// which style was requested.
type fakeStyleProvider struct {
	available bool
}

type fakeStyle struct {
	semantic SemanticType
}

func (f fakeStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	return fakeStyle{semantic: semantic}
}

func (f fakeStyleProvider) IsAvailable() bool {
	return f.available
}

func (s fakeStyle) Render(text string) string {
	return "<" + string(s.semantic) + ">" + text + "</>"
}

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), TestMode())

	p.Print("2^3")
	p.Printf(" = %d", 8)
	p.Println("")
	p.Question("What is 2^3?")

	assert.Equal(t, "2^3 = 8\nWhat is 2^3?\n", buf.String())
}

func TestPrinterStyledOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithStyles(fakeStyleProvider{available: true}))

	p.Correct("Correct!")
	p.Incorrect("Incorrect!")
	p.Stat("Accuracy: 50.00%")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"<correct>Correct!</>",
		"<incorrect>Incorrect!</>",
		"<stat>Accuracy: 50.00%</>",
	}, lines)
}

func TestPrinterPlainTextOverridesStyles(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithStyles(fakeStyleProvider{available: true}), PlainText())

	p.Correct("Correct!")

	assert.Equal(t, "Correct!\n", buf.String())
	assert.False(t, p.IsStylable())
}

func TestPrinterUnavailableProviderStaysPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithStyles(fakeStyleProvider{available: false}))

	p.Error("boom")

	assert.Equal(t, "boom\n", buf.String())
	assert.False(t, p.IsStylable())
}

func TestPrinterSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), Silent())

	p.Println("anything")
	p.Error("anything else")

	assert.Empty(t, buf.String())
}

func TestThemeStyles(t *testing.T) {
	theme := NewTheme()
	// every semantic resolves to some style, known or not
	assert.NotNil(t, theme.GetStyle(SemanticCorrect))
	assert.NotNil(t, theme.GetStyle(SemanticType("unheard-of")))
	assert.Equal(t, "text", theme.GetStyle(SemanticType("unheard-of")).Render("text"))
}
