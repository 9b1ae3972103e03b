// Package config turns the process argument vector into a validated
// configuration. It owns the general option definitions, the split of argv
// into general options, command and command options, and the wrapping of
// parser errors into the messages shown on stderr.
package config

import (
	"errors"
	"fmt"

	"practicestuff/internal/args"
	"practicestuff/internal/args/help"
	"practicestuff/internal/version"
)

// Known commands. Routing is a plain string match; anything more is
// deliberately out of scope of the argument engine.
const (
	CmdPowers     = "powers"
	CmdTimesTable = "times_table"
	CmdDoomsday   = "doomsday"
)

var commands = []string{CmdPowers, CmdTimesTable, CmdDoomsday}

const (
	argIDHelp              = "help"
	argIDVersion           = "version"
	argIDNumberOfQuestions = "num_of_questions"
	argIDDisableLiveStats  = "disable_live_stats"
	argIDBehaviourOnError  = "behaviour_on_err"
)

const (
	behaviourContinue    = "continue"
	behaviourShowCorrect = "showcorrect"
	behaviourRepeat      = "repeat"
)

// NumberOfQuestions carries the session length. A zero on the command line is
// the sentinel for an endless session.
type NumberOfQuestions struct {
	Limit    uint32
	Infinite bool
}

// QuestionCount maps the raw option value to a NumberOfQuestions, applying
// the 0 -> infinite convention.
func QuestionCount(n uint32) NumberOfQuestions {
	if n == 0 {
		return NumberOfQuestions{Infinite: true}
	}
	return NumberOfQuestions{Limit: n}
}

// BehaviourOnError selects what happens after an incorrect answer.
type BehaviourOnError int

const (
	// BehaviourNextQuestion proceeds to the next question.
	BehaviourNextQuestion BehaviourOnError = iota
	// BehaviourShowCorrect shows the correct answer, then proceeds.
	BehaviourShowCorrect
	// BehaviourRepeat asks again until the correct answer is given.
	BehaviourRepeat
)

func behaviourFromString(value string) BehaviourOnError {
	switch value {
	case behaviourContinue:
		return BehaviourNextQuestion
	case behaviourShowCorrect:
		return BehaviourShowCorrect
	case behaviourRepeat:
		return BehaviourRepeat
	}
	// The one-of validation has already run; anything else is a bug.
	panic(fmt.Sprintf("incorrect value for BehaviourOnError: %q", value))
}

// GeneralOptions are the options accepted before the command.
type GeneralOptions struct {
	ShowHelp    bool
	ShowVersion bool

	NumberOfQuestions NumberOfQuestions
	DisableLiveStats  bool
	BehaviourOnError  BehaviourOnError
}

// Config is the validated result of parsing argv. When ShowHelp or
// ShowVersion is set the command fields are left empty and the caller is
// expected to print and exit.
type Config struct {
	Options     GeneralOptions
	Command     string
	CommandArgs []string
}

// Build parses the full process argument vector (including the program
// name). All failures come back as a single display-ready error.
func Build(argv []string) (*Config, error) {
	if len(argv) < 2 {
		return nil, errors.New(wrapError(""))
	}
	general, command, commandArgs := splitArgs(argv[1:])

	options, err := buildGeneralOptions(general)
	if err == nil && (options.ShowHelp || options.ShowVersion) {
		return &Config{Options: options}, nil
	}
	if err != nil {
		return nil, errors.New(wrapError(err.Error()))
	}
	if command == "" {
		return nil, errors.New(wrapError("missing command"))
	}

	return &Config{Options: options, Command: command, CommandArgs: commandArgs}, nil
}

// splitArgs divides the argument list (without the program name) at the
// first token that names a known command. Everything before it belongs to
// the general options, everything after it to the command.
func splitArgs(argv []string) (general []string, command string, commandArgs []string) {
	for i, arg := range argv {
		for _, cmd := range commands {
			if arg == cmd {
				return argv[:i], arg, argv[i+1:]
			}
		}
	}
	return argv, "", nil
}

func buildGeneralOptions(tokens []string) (GeneralOptions, error) {
	definitions := Definitions()
	parsed, err := args.Parse(tokens, definitions)
	if err != nil {
		return GeneralOptions{}, err
	}

	return GeneralOptions{
		ShowHelp:    args.MustBool(argIDHelp, parsed, definitions),
		ShowVersion: args.MustBool(argIDVersion, parsed, definitions),
		NumberOfQuestions: QuestionCount(
			args.MustUint(argIDNumberOfQuestions, parsed, definitions)),
		DisableLiveStats: args.MustBool(argIDDisableLiveStats, parsed, definitions),
		BehaviourOnError: behaviourFromString(
			args.MustStr(argIDBehaviourOnError, parsed, definitions)),
	}, nil
}

// Definitions returns the general option definitions. They are used both for
// parsing and for rendering the general help text.
func Definitions() []args.Definition {
	return []args.Definition{
		args.NewDefinition(argIDHelp).
			ShortName('h').
			LongName("help").
			Description("Display this help message.").
			Flag().
			StopParsing().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDVersion).
			ShortName('v').
			LongName("version").
			Description("Show version information.").
			Flag().
			StopParsing().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDNumberOfQuestions).
			ShortName('n').
			LongName("number-of-questions").
			Description(
				"Specify the number of questions to ask",
				"(0 for infinite, default: 20).").
			Uint().
			Default(args.UintValue(20)).
			Build(),
		args.NewDefinition(argIDDisableLiveStats).
			ShortName('d').
			LongName("disable-live-statistics").
			Description(
				"Disable live statistics; statistics will",
				"not display between questions.").
			Flag().
			Default(args.BoolValue(false)).
			Build(),
		args.NewDefinition(argIDBehaviourOnError).
			ShortName('b').
			LongName("behaviour-on-error").
			Description(
				"Set behaviour on incorrect answer",
				"(default: showcorrect):",
				"  - continue: proceed to the next question.",
				"  - showcorrect: show the correct answer",
				"    and proceed to the next question.",
				"  - repeat: ask the question again until",
				"    the correct answer is given.").
			OneOf(behaviourContinue, behaviourShowCorrect, behaviourRepeat).
			Default(args.StrValue(behaviourShowCorrect)).
			Build(),
	}
}

// CommandList returns the commands section of the general help text.
func CommandList() []help.Command {
	return []help.Command{
		{Name: CmdPowers, Description: "Practise powers of a configurable base."},
		{Name: CmdTimesTable, Description: "Practise multiplication tables."},
		{Name: CmdDoomsday, Description: "Practise the doomsday algorithm."},
	}
}

// Usage returns the one-line command synopsis.
func Usage() string {
	return fmt.Sprintf("Usage: %s [OPTION]... COMMAND [ARGS]...", version.AppName)
}

// HelpPrompt returns the hint appended below error messages.
func HelpPrompt() string {
	return fmt.Sprintf("Try '%s --help' for more information.", version.AppName)
}

// wrapError prefixes a parse error with the program name and appends the
// usage and help prompt lines. An empty message yields only the usage part.
func wrapError(msg string) string {
	if msg == "" {
		return fmt.Sprintf("%s\n%s", Usage(), HelpPrompt())
	}
	return fmt.Sprintf("%s: %s\n%s\n%s", version.AppName, msg, Usage(), HelpPrompt())
}
