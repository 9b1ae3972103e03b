// Package timestable implements the multiplication practice skill.
package timestable

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"practicestuff/internal/args"
	"practicestuff/internal/args/help"
	"practicestuff/internal/question"
	"practicestuff/internal/version"
)

const (
	argIDHelp          = "help"
	argIDLowerBoundary = "lower_boundary"
	argIDUpperBoundary = "upper_boundary"
)

// Skill asks questions of the form "a*b" with factors drawn from a
// configurable range.
type Skill struct {
	definitions []args.Definition
	showHelp    bool

	lowerBoundary uint32
	upperBoundary uint32
}

// New builds the skill from its command arguments. The factor range must be
// ordered; the product of two uint32 factors always fits in a uint64.
func New(cliArgs []string) (*Skill, error) {
	definitions := argDefinitions()
	parsed, err := args.Parse(cliArgs, definitions)
	if err != nil {
		return nil, errors.New(wrapError(err.Error()))
	}

	s := &Skill{
		definitions:   definitions,
		showHelp:      args.MustBool(argIDHelp, parsed, definitions),
		lowerBoundary: args.MustUint(argIDLowerBoundary, parsed, definitions),
		upperBoundary: args.MustUint(argIDUpperBoundary, parsed, definitions),
	}

	if s.lowerBoundary > s.upperBoundary {
		return nil, errors.New(wrapError(
			"lower boundary must be less than or equal to upper boundary"))
	}

	return s, nil
}

// WantsHelp reports whether --help was given.
func (s *Skill) WantsHelp() bool {
	return s.showHelp
}

// HelpText renders the help text for the times_table command.
func (s *Skill) HelpText() string {
	options := help.Options{Title: "Times table options", Definitions: s.definitions}
	return help.Build(usage(), additionalInfo(s.definitions), options, nil)
}

// GenerateQuestions produces the requested number of questions.
func (s *Skill) GenerateQuestions(count uint32) []question.Question {
	questions := make([]question.Question, 0, count)
	for i := uint32(0); i < count; i++ {
		questions = append(questions, s.generateQuestion())
	}
	return questions
}

func (s *Skill) generateQuestion() question.Question {
	first := randomInRange(s.lowerBoundary, s.upperBoundary)
	second := randomInRange(s.lowerBoundary, s.upperBoundary)
	result := uint64(first) * uint64(second)

	return question.NewQuestion().
		Prompt(fmt.Sprintf("%d*%d", first, second)).
		Answer(fmt.Sprintf("%d", result)).
		Build()
}

func argDefinitions() []args.Definition {
	return []args.Definition{
		args.NewDefinition(argIDHelp).
			ShortName('h').
			LongName("help").
			Description("Display help for times_table command.").
			Flag().
			StopParsing().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDLowerBoundary).
			ShortName('l').
			LongName("lower-boundary").
			Description("Set the minimum factor (default: 1).").
			Uint().
			Default(args.UintValue(1)).
			Build(),
		args.NewDefinition(argIDUpperBoundary).
			ShortName('u').
			LongName("upper-boundary").
			Description("Set the maximum factor (default: 10).").
			Uint().
			Default(args.UintValue(10)).
			Build(),
	}
}

func usage() string {
	return fmt.Sprintf("Usage: %s [option]... times_table [times_table_option]...", version.AppName)
}

func helpPrompt() string {
	return fmt.Sprintf("Try '%s times_table --help' for more information.", version.AppName)
}

func additionalInfo(definitions []args.Definition) string {
	defaults := map[string]string{}
	for _, definition := range definitions {
		defaults[definition.ID()] = definition.DefaultValue().String()
	}

	return fmt.Sprintf(
		"Practise multiplication with a customisable factors' range.\nBy default, the range of factors mimics the normal times table (%s-%s).",
		defaults[argIDLowerBoundary], defaults[argIDUpperBoundary])
}

func wrapError(msg string) string {
	if msg == "" {
		return fmt.Sprintf("%s\n%s", usage(), helpPrompt())
	}
	return fmt.Sprintf("%s: times_table: %s\n%s\n%s", version.AppName, msg, usage(), helpPrompt())
}

func randomInRange(lower, upper uint32) uint32 {
	return uint32(uint64(lower) + rand.Uint64N(uint64(upper-lower)+1))
}
