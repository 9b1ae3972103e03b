// Package help renders column-aligned usage text from option definitions and
// command names. It is a pure function of its inputs and performs no parsing.
package help

import (
	"strings"

	"practicestuff/internal/args"
)

const (
	indentWidth    = 2 // indent before the option/command
	longNamePrefix = 2 // the "--" before the long name
	shortNameWidth = 4 // "-x, "
	gapWidth       = 3 // gap between option/command name and description

	// maxLineWidth bounds every rendered line; Build panics beyond it.
	maxLineWidth = 80
)

// Command is one entry of the "Commands:" section.
type Command struct {
	Name        string
	Description string
}

// Options is the titled set of option definitions to render.
type Options struct {
	Title       string
	Definitions []args.Definition
}

// Build renders the full help text: the usage line, optional additional info,
// the options section and the commands section. Sections with no entries are
// omitted entirely. Both sections share a first-column width so descriptions
// line up across them.
//
// Build panics if any rendered line exceeds 80 characters.
func Build(usage, additionalInfo string, options Options, commands []Command) string {
	var help strings.Builder

	help.WriteString(usage)
	if additionalInfo != "" {
		help.WriteByte('\n')
		help.WriteString(additionalInfo)
	}

	firstColumnWidth := firstColumnWidth(options.Definitions, commands)

	if len(options.Definitions) > 0 {
		help.WriteString("\n\n")
		help.WriteString(options.Title)
		help.WriteString(":\n")
		help.WriteString(buildOptions(options.Definitions, firstColumnWidth))
	}

	if len(commands) > 0 {
		help.WriteString("\nCommands:\n")
		help.WriteString(buildCommands(commands, firstColumnWidth))
	}

	text := help.String()
	if longestLineLength(text) > maxLineWidth {
		panic("help text cannot exceed 80 characters")
	}
	return text
}

func longestLineLength(text string) int {
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) > longest {
			longest = len(line)
		}
	}
	return longest
}

func buildOptions(definitions []args.Definition, columnWidth int) string {
	var result strings.Builder
	longNameWidth := columnWidth - indentWidth - shortNameWidth - gapWidth

	for i := range definitions {
		definition := &definitions[i]

		shortName := strings.Repeat(" ", shortNameWidth)
		if definition.ShortName() != 0 {
			shortName = "-" + string(definition.ShortName()) + ", "
		}

		longName := ""
		if definition.LongName() != "" {
			longName = "--" + definition.LongName()
		}
		longName += strings.Repeat(" ", longNameWidth-len(longName))

		firstLine := ""
		if len(definition.Description()) > 0 {
			firstLine = definition.Description()[0]
		}

		result.WriteString(strings.Repeat(" ", indentWidth))
		result.WriteString(shortName)
		result.WriteString(longName)
		result.WriteString(strings.Repeat(" ", gapWidth))
		result.WriteString(firstLine)
		result.WriteByte('\n')

		// Remaining description lines are re-indented under the first.
		if len(definition.Description()) > 1 {
			for _, line := range definition.Description()[1:] {
				result.WriteString(strings.Repeat(" ", columnWidth))
				result.WriteString(line)
				result.WriteByte('\n')
			}
		}
	}

	return result.String()
}

func buildCommands(commands []Command, columnWidth int) string {
	var result strings.Builder
	for _, command := range commands {
		result.WriteString(strings.Repeat(" ", indentWidth))
		result.WriteString(command.Name)
		result.WriteString(strings.Repeat(" ", columnWidth-len(command.Name)-indentWidth))
		result.WriteString(command.Description)
		result.WriteByte('\n')
	}
	return result.String()
}

// firstColumnWidth is the shared width of the name column: the widest long
// name (or command name) plus the fixed indent, short-name and gap widths.
func firstColumnWidth(definitions []args.Definition, commands []Command) int {
	maxOptionWidth := 0
	for i := range definitions {
		if long := definitions[i].LongName(); long != "" && len(long)+longNamePrefix > maxOptionWidth {
			maxOptionWidth = len(long) + longNamePrefix
		}
	}
	maxOptionWidth += indentWidth + shortNameWidth + gapWidth

	maxCommandWidth := 0
	for _, command := range commands {
		if len(command.Name) > maxCommandWidth {
			maxCommandWidth = len(command.Name)
		}
	}
	maxCommandWidth += indentWidth + gapWidth

	return max(maxOptionWidth, maxCommandWidth)
}
