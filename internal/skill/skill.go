// Package skill routes commands to their implementations.
package skill

import (
	"fmt"

	"practicestuff/internal/config"
	"practicestuff/internal/question"
	"practicestuff/internal/skill/doomsday"
	"practicestuff/internal/skill/powers"
	"practicestuff/internal/skill/timestable"
)

// Skill is a practice command. It parses its own arguments, renders its own
// help and produces the questions for the game loop.
type Skill interface {
	WantsHelp() bool
	HelpText() string
	GenerateQuestions(count uint32) []question.Question
}

// New builds the skill named by the command with its command arguments.
// The command must come from config.Build, unknown commands are a programmer
// error.
func New(command string, commandArgs []string) (Skill, error) {
	var (
		s   Skill
		err error
	)
	switch command {
	case config.CmdPowers:
		s, err = powers.New(commandArgs)
	case config.CmdTimesTable:
		s, err = timestable.New(commandArgs)
	case config.CmdDoomsday:
		s, err = doomsday.New(commandArgs)
	default:
		panic(fmt.Sprintf("unknown command: '%s'", command))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
