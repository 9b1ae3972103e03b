// Package app wires the configuration, skills, statistics and output into
// the interactive practice session.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"practicestuff/internal/args/help"
	"practicestuff/internal/config"
	"practicestuff/internal/logger"
	"practicestuff/internal/output"
	"practicestuff/internal/question"
	"practicestuff/internal/skill"
	"practicestuff/internal/stats"
	"practicestuff/internal/version"
)

// Application runs a practice session for a validated configuration.
type Application struct {
	cfg     *config.Config
	printer *output.Printer
	input   io.Reader

	handleInterrupts bool
}

// Option configures an Application.
type Option func(*Application)

// WithPrinter replaces the default stdout printer.
func WithPrinter(printer *output.Printer) Option {
	return func(a *Application) {
		a.printer = printer
	}
}

// WithInput replaces os.Stdin as the answer source.
func WithInput(input io.Reader) Option {
	return func(a *Application) {
		a.input = input
	}
}

// WithoutInterruptHandling disables the SIGINT summary handler. Tests use
// this to keep the application away from process-wide signal state.
func WithoutInterruptHandling() Option {
	return func(a *Application) {
		a.handleInterrupts = false
	}
}

// New creates an application for the given configuration.
func New(cfg *config.Config, options ...Option) *Application {
	a := &Application{
		cfg:              cfg,
		printer:          output.NewPrinter(output.WithStyles(output.NewTheme())),
		input:            os.Stdin,
		handleInterrupts: true,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Run executes the session: help or version when requested, the game loop
// otherwise.
func (a *Application) Run() error {
	if a.cfg.Options.ShowHelp {
		a.printer.Println(GeneralHelp())
		return nil
	}
	if a.cfg.Options.ShowVersion {
		a.printer.Println(version.Get().Short())
		return nil
	}

	s, err := skill.New(a.cfg.Command, a.cfg.CommandArgs)
	if err != nil {
		return err
	}
	if s.WantsHelp() {
		a.printer.Println(s.HelpText())
		return nil
	}

	return a.play(s)
}

// GeneralHelp renders the top-level help text.
func GeneralHelp() string {
	options := help.Options{Title: "General options", Definitions: config.Definitions()}
	info := "Practice arithmetic and calendar skills in the terminal."
	return help.Build(config.Usage(), info, options, config.CommandList())
}

func (a *Application) play(s skill.Skill) error {
	tracker := stats.NewTracker()

	var count uint32
	if !a.cfg.Options.NumberOfQuestions.Infinite {
		count = a.cfg.Options.NumberOfQuestions.Limit
	}
	generator := question.NewGenerator(count, s)

	logger.Debug("starting session",
		"session_id", tracker.SessionID(),
		"command", a.cfg.Command,
		"questions", count)

	if a.handleInterrupts {
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		go func() {
			<-interrupts
			a.printer.Println("")
			a.printSummary(tracker)
			os.Exit(0)
		}()
	}

	scanner := bufio.NewScanner(a.input)
	tracker.Start(a.cfg.Options.NumberOfQuestions)

	for generator.HasNext() {
		q := generator.Next()
		tracker.StartQuestion()
		a.printer.Question(q.Prompt())

		answered, eof := a.handleAnswers(scanner, q, tracker)
		if eof {
			break
		}
		if answered && !a.cfg.Options.DisableLiveStats {
			a.printLiveStats(tracker)
		}
	}

	a.printer.Println("")
	a.printSummary(tracker)
	return nil
}

// handleAnswers reads answers for one question, repeating on mistakes when
// the configuration asks for it. It reports whether an answer was recorded
// and whether the input ran out.
func (a *Application) handleAnswers(scanner *bufio.Scanner, q question.Question, tracker *stats.Tracker) (answered, eof bool) {
	for {
		if !scanner.Scan() {
			return answered, true
		}
		answer := strings.TrimSpace(scanner.Text())

		correct := q.IsAnswerCorrect(answer)
		tracker.Answer(correct)
		answered = true

		if correct {
			a.printer.Correct("Correct!")
			return answered, false
		}

		switch a.cfg.Options.BehaviourOnError {
		case config.BehaviourShowCorrect:
			a.printer.Incorrect(fmt.Sprintf("Incorrect! Correct answer: %s", q.CorrectAnswer()))
			return answered, false
		case config.BehaviourRepeat:
			a.printer.Incorrect("Incorrect! Try again.")
		default:
			a.printer.Incorrect("Incorrect!")
			return answered, false
		}
	}
}

func (a *Application) printLiveStats(tracker *stats.Tracker) {
	a.printer.Stat(fmt.Sprintf("Correct answers: %s (%s), time: %s",
		tracker.CorrectAnswers(), tracker.CurrentAccuracy(), tracker.LastQuestionTime()))
}

// printSummary prints the final statistics. Total time comes first so the
// clock stops as early as possible.
func (a *Application) printSummary(tracker *stats.Tracker) {
	totalTime := tracker.TotalTime()

	a.printer.Stat(tracker.Summary())
	a.printer.Stat(fmt.Sprintf("Correct answers: %s", tracker.CorrectAnswers()))
	a.printer.Stat(fmt.Sprintf("Total accuracy: %s, current accuracy: %s",
		tracker.TotalAccuracy(), tracker.CurrentAccuracy()))
	a.printer.Stat(fmt.Sprintf("Total time: %s", totalTime))
	a.printer.Stat(fmt.Sprintf("Question time: min %s, max %s, avg %s",
		tracker.MinQuestionTime(), tracker.MaxQuestionTime(), tracker.AvgQuestionTime()))
}
