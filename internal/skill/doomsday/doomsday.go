// Package doomsday implements the weekday calculation practice skill, named
// after the doomsday rule (https://en.wikipedia.org/wiki/Doomsday_rule).
package doomsday

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

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

// The doomsday rule assumes the Gregorian calendar, introduced in 1582.
const gregorianCalendarIntroduction = 1582

// Year boundary kept from the original date implementation's range so that
// accepted inputs stay the same.
const maxYear = 262143

// With default boundaries a small fraction of questions is drawn from a wider
// range, from the broad Gregorian adoption to ~400 years into the future.
const (
	widenedRangeChance = 8
	widenedLowerYear   = 1753
	widenedUpperYear   = 2617
)

// Skill asks for the weekday of a random date within a configurable year
// range.
type Skill struct {
	definitions []args.Definition
	showHelp    bool

	lowerBoundary int32
	upperBoundary int32

	defaultBoundaries bool
}

// New builds the skill from its command arguments. The year range must be
// ordered, above the Gregorian reform and within the supported date range.
func New(cliArgs []string) (*Skill, error) {
	definitions := argDefinitions()
	parsed, err := args.Parse(cliArgs, definitions)
	if err != nil {
		return nil, errors.New(wrapError(err.Error()))
	}

	s := &Skill{
		definitions:   definitions,
		showHelp:      args.MustBool(argIDHelp, parsed, definitions),
		lowerBoundary: args.MustInt(argIDLowerBoundary, parsed, definitions),
		upperBoundary: args.MustInt(argIDUpperBoundary, parsed, definitions),
	}

	if err := s.checkBoundaries(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Skill) checkBoundaries() error {
	if s.lowerBoundary > s.upperBoundary {
		return errors.New(wrapError(
			"lower boundary must be less than or equal to upper boundary"))
	}
	if s.lowerBoundary <= gregorianCalendarIntroduction {
		return errors.New(wrapError(fmt.Sprintf(
			"year boundary too low; Doomsday algorithm does not work for dates on %d and before",
			gregorianCalendarIntroduction)))
	}
	if s.upperBoundary > maxYear {
		return errors.New(wrapError(fmt.Sprintf(
			"year boundaries cannot exceed %d", maxYear)))
	}

	defaultLower := args.MustInt(argIDLowerBoundary, nil, s.definitions)
	defaultUpper := args.MustInt(argIDUpperBoundary, nil, s.definitions)
	s.defaultBoundaries = s.lowerBoundary == defaultLower && s.upperBoundary == defaultUpper

	return nil
}

// WantsHelp reports whether --help was given.
func (s *Skill) WantsHelp() bool {
	return s.showHelp
}

// HelpText renders the help text for the doomsday command.
func (s *Skill) HelpText() string {
	options := help.Options{Title: "Doomsday options", Definitions: s.definitions}
	return help.Build(usage(), additionalInfo(), options, nil)
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
	yearFrom, yearTo := s.yearRange()

	dateFrom := time.Date(int(yearFrom), time.January, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(int(yearTo), time.December, 31, 0, 0, 0, 0, time.UTC)

	// days between midnights, both dates are midnight UTC
	days := (dateTo.Unix() - dateFrom.Unix()) / 86400
	date := dateFrom.AddDate(0, 0, int(rand.Int64N(days+1)))

	return questionFromDate(date)
}

func (s *Skill) yearRange() (int32, int32) {
	if s.defaultBoundaries && rand.IntN(100) < widenedRangeChance {
		return widenedLowerYear, widenedUpperYear
	}
	return s.lowerBoundary, s.upperBoundary
}

func questionFromDate(date time.Time) question.Question {
	var answer string
	var alternatives []string
	switch date.Weekday() {
	case time.Monday:
		answer, alternatives = "monday", []string{"mo", "mon", "1"}
	case time.Tuesday:
		answer, alternatives = "tuesday", []string{"tu", "tue", "2"}
	case time.Wednesday:
		answer, alternatives = "wednesday", []string{"we", "wed", "3"}
	case time.Thursday:
		answer, alternatives = "thursday", []string{"th", "thu", "4"}
	case time.Friday:
		answer, alternatives = "friday", []string{"fr", "fri", "5"}
	case time.Saturday:
		answer, alternatives = "saturday", []string{"sa", "sat", "6"}
	case time.Sunday:
		answer, alternatives = "sunday", []string{"su", "sun", "0", "7"}
	}

	return question.NewQuestion().
		Prompt(fmt.Sprintf("What is the weekday of %s?", date.Format("2006-01-02"))).
		Answer(answer).
		Alternatives(alternatives...).
		AllowAnyCase().
		Build()
}

func argDefinitions() []args.Definition {
	return []args.Definition{
		args.NewDefinition(argIDHelp).
			ShortName('h').
			LongName("help").
			Description("Display help for doomsday command.").
			Flag().
			StopParsing().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDLowerBoundary).
			ShortName('l').
			LongName("lower-boundary").
			Description(
				"Set the minimum year (default: 1880).",
				"If default boundaries are used, the range is dynamic",
				"with most of the questions from years 1880-2115",
				"and a small probability to go beyond these years.").
			Int().
			Default(args.IntValue(1880)).
			Build(),
		args.NewDefinition(argIDUpperBoundary).
			ShortName('u').
			LongName("upper-boundary").
			Description(
				"Set the maximum year (default: 2115).",
				"If default boundaries are used, the range is dynamic",
				"with most of the questions from years 1880-2115",
				"and a small probability to go beyond these years.").
			Int().
			Default(args.IntValue(2115)).
			Build(),
	}
}

func usage() string {
	return fmt.Sprintf("Usage: %s [option]... doomsday [doomsday_option]...", version.AppName)
}

func helpPrompt() string {
	return fmt.Sprintf("Try '%s doomsday --help' for more information.", version.AppName)
}

func additionalInfo() string {
	return "Practise doomsday algorithm (https://en.wikipedia.org/wiki/Doomsday_rule).\n" +
		"By default, the dates range ± 100-140 years from now, with a slight chance\n" +
		"to go beyond that. Questions are presented in a form of YYYY-MM-DD, while\n" +
		"answers are expected in English ('Monday', 'Mon', 'Mo') or as numbers\n" +
		"(Monday - 1, Tuesday - 2, etc).\n" +
		"\nNote: the algorithm works only for Gregorian calendar introduced during\n" +
		"Gregorian reform in 1582. Some countries did not adopt even until 2006, so\n" +
		"depending on where you live, weekdays of dates between 1582 and 2006 might be\n" +
		"off (see https://en.wikipedia.org/wiki/Gregorian_calendar#Adoption_by_country)."
}

func wrapError(msg string) string {
	if msg == "" {
		return fmt.Sprintf("%s\n%s", usage(), helpPrompt())
	}
	return fmt.Sprintf("%s: doomsday: %s\n%s\n%s", version.AppName, msg, usage(), helpPrompt())
}
