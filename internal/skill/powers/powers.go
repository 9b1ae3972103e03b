// Package powers implements the exponentiation practice skill.
package powers

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"practicestuff/internal/args"
	"practicestuff/internal/args/help"
	"practicestuff/internal/question"
	"practicestuff/internal/version"
)

const (
	argIDHelp          = "help"
	argIDBase          = "base"
	argIDLowerBoundary = "lower_boundary"
	argIDUpperBoundary = "upper_boundary"
)

// Skill asks questions of the form "b^e" for a configurable base and
// exponent range.
type Skill struct {
	definitions []args.Definition
	showHelp    bool

	base          uint32
	lowerBoundary uint32
	upperBoundary uint32
}

// New builds the skill from its command arguments. The exponent range must be
// ordered and base^upper must fit in a uint64.
func New(cliArgs []string) (*Skill, error) {
	definitions := argDefinitions()
	parsed, err := args.Parse(cliArgs, definitions)
	if err != nil {
		return nil, errors.New(wrapError(err.Error()))
	}

	s := &Skill{
		definitions:   definitions,
		showHelp:      args.MustBool(argIDHelp, parsed, definitions),
		base:          args.MustUint(argIDBase, parsed, definitions),
		lowerBoundary: args.MustUint(argIDLowerBoundary, parsed, definitions),
		upperBoundary: args.MustUint(argIDUpperBoundary, parsed, definitions),
	}

	if s.lowerBoundary > s.upperBoundary {
		return nil, errors.New(wrapError(
			"lower boundary must be less than or equal to upper boundary"))
	}
	if overflowsUint64(s.base, s.upperBoundary) {
		maxExp := maxExponent(s.base, s.upperBoundary)
		return nil, errors.New(wrapError(fmt.Sprintf(
			"%d^%d exceeds maximum allowed value. Maximum exponent for base %d is %d",
			s.base, s.upperBoundary, s.base, maxExp)))
	}

	return s, nil
}

// WantsHelp reports whether --help was given.
func (s *Skill) WantsHelp() bool {
	return s.showHelp
}

// HelpText renders the help text for the powers command.
func (s *Skill) HelpText() string {
	options := help.Options{Title: "Powers options", Definitions: s.definitions}
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
	exp := randomInRange(s.lowerBoundary, s.upperBoundary)
	result := pow(s.base, exp) // cannot overflow, checked in New

	return question.NewQuestion().
		Prompt(fmt.Sprintf("%d^%d", s.base, exp)).
		Answer(fmt.Sprintf("%d", result)).
		Build()
}

func argDefinitions() []args.Definition {
	return []args.Definition{
		args.NewDefinition(argIDHelp).
			ShortName('h').
			LongName("help").
			Description("Display help for powers command.").
			Flag().
			StopParsing().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDBase).
			ShortName('b').
			LongName("base").
			Description("Set the base for powers (default: 2).").
			Uint().
			Default(args.UintValue(2)).
			Build(),
		args.NewDefinition(argIDLowerBoundary).
			ShortName('l').
			LongName("lower-boundary").
			Description(
				"Set the minimum exponent to use in questions",
				"(default: 1).").
			Uint().
			Default(args.UintValue(1)).
			Build(),
		args.NewDefinition(argIDUpperBoundary).
			ShortName('u').
			LongName("upper-boundary").
			Description(
				"Set the maximum exponent to use in questions",
				"(default: 16).").
			Uint().
			Default(args.UintValue(16)).
			Build(),
	}
}

func usage() string {
	return fmt.Sprintf("Usage: %s [option]... powers [powers_option]...", version.AppName)
}

func helpPrompt() string {
	return fmt.Sprintf("Try '%s powers --help' for more information.", version.AppName)
}

func additionalInfo(definitions []args.Definition) string {
	defaults := map[string]string{}
	for _, definition := range definitions {
		defaults[definition.ID()] = definition.DefaultValue().String()
	}

	return fmt.Sprintf(
		"Practice powers with a customizable base and exponent range. By default,\nthe base is %s, with exponents ranging from %s to %s.",
		defaults[argIDBase], defaults[argIDLowerBoundary], defaults[argIDUpperBoundary])
}

func wrapError(msg string) string {
	if msg == "" {
		return fmt.Sprintf("%s\n%s", usage(), helpPrompt())
	}
	return fmt.Sprintf("%s: powers: %s\n%s\n%s", version.AppName, msg, usage(), helpPrompt())
}

func randomInRange(lower, upper uint32) uint32 {
	return uint32(uint64(lower) + rand.Uint64N(uint64(upper-lower)+1))
}

func pow(base, exp uint32) uint64 {
	result := uint64(1)
	for i := uint32(0); i < exp; i++ {
		result *= uint64(base)
	}
	return result
}

func overflowsUint64(base, exp uint32) bool {
	if base <= 1 {
		return false
	}
	result := uint64(1)
	for i := uint32(0); i < exp; i++ {
		if result > math.MaxUint64/uint64(base) {
			return true
		}
		result *= uint64(base)
	}
	return false
}

// maxExponent finds the largest exponent that keeps base^exp within uint64,
// searched within [0, chosenExponent].
func maxExponent(base, chosenExponent uint32) uint32 {
	low := uint32(0)
	high := chosenExponent
	maxExp := uint32(0)
	for low <= high {
		mid := low + (high-low)/2
		if overflowsUint64(base, mid) {
			high = mid - 1
		} else {
			maxExp = mid
			low = mid + 1
		}
	}
	return maxExp
}
