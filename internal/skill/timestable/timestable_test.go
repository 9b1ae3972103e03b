package timestable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicestuff/internal/version"
)

func TestNewDefaults(t *testing.T) {
	skill, err := New(nil)
	require.NoError(t, err)
	assert.False(t, skill.showHelp)
	assert.Equal(t, uint32(1), skill.lowerBoundary)
	assert.Equal(t, uint32(10), skill.upperBoundary)
}

func TestNewIncorrectArgs(t *testing.T) {
	_, err := New([]string{"-l", "hehe", "-what"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option argument")
}

func TestNewWithArgs(t *testing.T) {
	skill, err := New([]string{"--lower-boundary=4", "-u", "7"})
	require.NoError(t, err)
	assert.False(t, skill.showHelp)
	assert.Equal(t, uint32(4), skill.lowerBoundary)
	assert.Equal(t, uint32(7), skill.upperBoundary)
}

func TestNewMismatchedBoundaries(t *testing.T) {
	_, err := New([]string{"-l", "5", "-u", "4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lower boundary must be less than or equal to upper boundary")
}

func TestNewFactorOutOfRange(t *testing.T) {
	// factors are uint32 and the product is uint64, so the parser rejecting
	// anything above uint32 max rules out overflow
	_, err := New([]string{"-l", "4294967296", "-u", "4294967296"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option argument")
}

func TestErrorMessage(t *testing.T) {
	message := wrapError("something extraordinarily wrong happened")
	assert.Contains(t, message, version.AppName)
	assert.Contains(t, message, "times_table")
	assert.Contains(t, message, "something extraordinarily wrong happened")
	assert.Contains(t, message, "Usage")
	assert.Contains(t, message, "for more information")

	message = wrapError("")
	assert.Contains(t, message, "times_table")
	assert.Contains(t, message, "Usage")
	assert.Contains(t, message, "for more information")
}

func TestQuestionGeneration(t *testing.T) {
	skill, err := New([]string{"-u", "1"})
	require.NoError(t, err)
	q := skill.generateQuestion()
	assert.Equal(t, "1*1", q.Prompt())
	assert.Equal(t, "1", q.CorrectAnswer())
	assert.True(t, q.IsAnswerCorrect("1"))
}

func TestMultipleQuestionGeneration(t *testing.T) {
	skill, err := New([]string{"--lower-boundary=3", "--upper-boundary=3"})
	require.NoError(t, err)
	questions := skill.GenerateQuestions(10)
	require.Len(t, questions, 10)
	for _, q := range questions {
		assert.Equal(t, "3*3", q.Prompt())
		assert.Equal(t, "9", q.CorrectAnswer())
	}
}

func TestWantsHelp(t *testing.T) {
	skill, err := New(nil)
	require.NoError(t, err)
	assert.False(t, skill.WantsHelp())

	skill, err = New([]string{"-l", "4", "-h", "--upper-boundary=10"})
	require.NoError(t, err)
	assert.True(t, skill.WantsHelp())
}

func TestHelpText(t *testing.T) {
	skill, err := New([]string{"-h"})
	require.NoError(t, err)
	helpText := skill.HelpText()
	assert.Contains(t, helpText, "Times table options")
	assert.Contains(t, helpText, "Usage")

	assert.Contains(t, helpText, "-h, --help")
	assert.Contains(t, helpText, "-l, --lower-boundary")
	assert.Contains(t, helpText, "-u, --upper-boundary")
}
