package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name                string
		argv                []string
		expectedGeneral     []string
		expectedCommand     string
		expectedCommandArgs []string
	}{
		{
			name:            "no command",
			argv:            []string{"-n", "5"},
			expectedGeneral: []string{"-n", "5"},
		},
		{
			name:            "command only",
			argv:            []string{"powers"},
			expectedGeneral: []string{},
			expectedCommand: "powers",
		},
		{
			name:                "options on both sides",
			argv:                []string{"-n", "5", "times_table", "-u", "12"},
			expectedGeneral:     []string{"-n", "5"},
			expectedCommand:     "times_table",
			expectedCommandArgs: []string{"-u", "12"},
		},
		{
			name:                "only the first command token splits",
			argv:                []string{"doomsday", "powers"},
			expectedGeneral:     []string{},
			expectedCommand:     "doomsday",
			expectedCommandArgs: []string{"powers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			general, command, commandArgs := splitArgs(tt.argv)
			assert.Equal(t, tt.expectedGeneral, []string(general))
			assert.Equal(t, tt.expectedCommand, command)
			if tt.expectedCommandArgs == nil {
				assert.Empty(t, commandArgs)
			} else {
				assert.Equal(t, tt.expectedCommandArgs, []string(commandArgs))
			}
		})
	}
}

func TestBuildRequiresArguments(t *testing.T) {
	_, err := Build([]string{"practicestuff"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usage:")
	assert.Contains(t, err.Error(), "--help")
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build([]string{"practicestuff", "powers"})
	require.NoError(t, err)

	assert.False(t, cfg.Options.ShowHelp)
	assert.False(t, cfg.Options.ShowVersion)
	assert.False(t, cfg.Options.DisableLiveStats)
	assert.Equal(t, BehaviourShowCorrect, cfg.Options.BehaviourOnError)
	assert.False(t, cfg.Options.NumberOfQuestions.Infinite)
	assert.Equal(t, uint32(20), cfg.Options.NumberOfQuestions.Limit)
	assert.Equal(t, "powers", cfg.Command)
	assert.Empty(t, cfg.CommandArgs)
}

func TestBuildWithOptions(t *testing.T) {
	cfg, err := Build([]string{
		"practicestuff",
		"-n", "5",
		"--behaviour-on-error=repeat",
		"-d",
		"doomsday",
		"-l", "1900",
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(5), cfg.Options.NumberOfQuestions.Limit)
	assert.Equal(t, BehaviourRepeat, cfg.Options.BehaviourOnError)
	assert.True(t, cfg.Options.DisableLiveStats)
	assert.Equal(t, "doomsday", cfg.Command)
	assert.Equal(t, []string{"-l", "1900"}, cfg.CommandArgs)
}

func TestBuildZeroQuestionsMeansInfinite(t *testing.T) {
	cfg, err := Build([]string{"practicestuff", "--number-of-questions=0", "powers"})
	require.NoError(t, err)
	assert.True(t, cfg.Options.NumberOfQuestions.Infinite)
}

func TestBuildHelpAndVersionSkipCommandHandling(t *testing.T) {
	cfg, err := Build([]string{"practicestuff", "--help"})
	require.NoError(t, err)
	assert.True(t, cfg.Options.ShowHelp)
	assert.Empty(t, cfg.Command)

	cfg, err = Build([]string{"practicestuff", "-v"})
	require.NoError(t, err)
	assert.True(t, cfg.Options.ShowVersion)
	assert.Empty(t, cfg.Command)

	// Help short-circuits even a malformed remainder.
	cfg, err = Build([]string{"practicestuff", "-h", "--garbage="})
	require.NoError(t, err)
	assert.True(t, cfg.Options.ShowHelp)
}

func TestBuildMissingCommand(t *testing.T) {
	_, err := Build([]string{"practicestuff", "-d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing command")
	assert.Contains(t, err.Error(), "Usage:")
}

func TestBuildParseErrorIsWrapped(t *testing.T) {
	_, err := Build([]string{"practicestuff", "--incorrect", "powers"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "practicestuff: unrecognised option: '--incorrect'")
	assert.Contains(t, err.Error(), "Usage:")
	assert.Contains(t, err.Error(), "for more information")
}

func TestBuildMissingArgumentValue(t *testing.T) {
	for _, token := range []string{"-n", "--number-of-questions"} {
		_, err := Build([]string{"practicestuff", token})
		require.Error(t, err, "token %q", token)
		assert.Contains(t, err.Error(), "requires an argument")
		assert.Contains(t, err.Error(), "Usage:")
	}
}

func TestBehaviourFromString(t *testing.T) {
	assert.Equal(t, BehaviourNextQuestion, behaviourFromString("continue"))
	assert.Equal(t, BehaviourShowCorrect, behaviourFromString("showcorrect"))
	assert.Equal(t, BehaviourRepeat, behaviourFromString("repeat"))
	assert.Panics(t, func() { behaviourFromString("bogus") })
}

func TestQuestionCount(t *testing.T) {
	assert.True(t, QuestionCount(0).Infinite)
	assert.False(t, QuestionCount(3).Infinite)
	assert.Equal(t, uint32(3), QuestionCount(3).Limit)
}
