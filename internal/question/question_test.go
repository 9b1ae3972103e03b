package question

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuestion(t *testing.T) {
	q := NewQuestion().
		Prompt("What is 2^3?").
		Answer("8").
		Build()

	assert.Equal(t, "What is 2^3?", q.Prompt())
	assert.Equal(t, "8", q.CorrectAnswer())
}

func TestBuildQuestionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "question cannot be empty", func() {
		NewQuestion().Answer("8").Build()
	})
	assert.PanicsWithValue(t, "answer cannot be empty", func() {
		NewQuestion().Prompt("What is 2^3?").Build()
	})
}

func TestIsAnswerCorrect(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		answer   string
		correct  bool
	}{
		{
			name:     "exact match",
			question: NewQuestion().Prompt("p").Answer("8").Build(),
			answer:   "8",
			correct:  true,
		},
		{
			name:     "wrong answer",
			question: NewQuestion().Prompt("p").Answer("8").Build(),
			answer:   "9",
			correct:  false,
		},
		{
			name:     "case sensitive by default",
			question: NewQuestion().Prompt("p").Answer("Monday").Build(),
			answer:   "monday",
			correct:  false,
		},
		{
			name:     "any case",
			question: NewQuestion().Prompt("p").Answer("Monday").AllowAnyCase().Build(),
			answer:   "mOnDaY",
			correct:  true,
		},
		{
			name:     "alternative answer",
			question: NewQuestion().Prompt("p").Answer("Monday").Alternatives("Mon", "1").Build(),
			answer:   "1",
			correct:  true,
		},
		{
			name:     "alternative answer any case",
			question: NewQuestion().Prompt("p").Answer("Monday").Alternatives("Mon").AllowAnyCase().Build(),
			answer:   "MON",
			correct:  true,
		},
		{
			name:     "no match among alternatives",
			question: NewQuestion().Prompt("p").Answer("Monday").Alternatives("Mon", "1").Build(),
			answer:   "Tue",
			correct:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.correct, tt.question.IsAnswerCorrect(tt.answer))
		})
	}
}

// countingSource generates numbered questions and records how many times it
// was asked.
type countingSource struct {
	calls []uint32
}

func (s *countingSource) GenerateQuestions(count uint32) []Question {
	s.calls = append(s.calls, count)
	questions := make([]Question, 0, count)
	for i := uint32(0); i < count; i++ {
		questions = append(questions, NewQuestion().
			Prompt(fmt.Sprintf("question %d", len(s.calls)*100+int(i))).
			Answer("42").
			Build())
	}
	return questions
}

func TestGeneratorLimited(t *testing.T) {
	source := &countingSource{}
	generator := NewGenerator(3, source)

	var prompts []string
	for generator.HasNext() {
		prompts = append(prompts, generator.Next().Prompt())
	}

	require.Len(t, prompts, 3)
	assert.Equal(t, []uint32{3}, source.calls, "limited mode generates the batch once")
	assert.Equal(t, []string{"question 100", "question 101", "question 102"}, prompts)
	assert.False(t, generator.HasNext())
}

func TestGeneratorInfinite(t *testing.T) {
	source := &countingSource{}
	generator := NewGenerator(0, source)

	for i := 0; i < 5; i++ {
		require.True(t, generator.HasNext())
		generator.Next()
	}

	assert.Equal(t, []uint32{1, 1, 1, 1, 1}, source.calls, "infinite mode generates on demand")
	assert.True(t, generator.HasNext())
}

type badSource struct{}

func (badSource) GenerateQuestions(count uint32) []Question {
	return nil
}

func TestGeneratorPanicsOnShortBatch(t *testing.T) {
	generator := NewGenerator(2, badSource{})
	assert.PanicsWithValue(t, "skill did not generate the correct amount of questions", func() {
		generator.Next()
	})
}
