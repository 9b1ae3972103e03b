// Package question holds the question record used by every skill and the
// generator that feeds the game loop.
package question

import "strings"

// Question is a single prompt with its accepted answers. Construct it with
// NewQuestion.
type Question struct {
	prompt       string
	answer       string
	alternatives []string
	anyCase      bool
}

// Prompt returns the text shown to the player.
func (q Question) Prompt() string {
	return q.prompt
}

// CorrectAnswer returns the canonical answer, used when the game reveals it
// after a mistake.
func (q Question) CorrectAnswer() string {
	return q.answer
}

// IsAnswerCorrect reports whether the given answer matches the canonical
// answer or any of the alternatives.
func (q Question) IsAnswerCorrect(answer string) bool {
	matches := func(expected string) bool {
		if q.anyCase {
			return strings.EqualFold(answer, expected)
		}
		return answer == expected
	}

	if matches(q.answer) {
		return true
	}
	for _, alternative := range q.alternatives {
		if matches(alternative) {
			return true
		}
	}
	return false
}

// Builder assembles a Question.
type Builder struct {
	question Question
}

// NewQuestion starts building a question.
func NewQuestion() *Builder {
	return &Builder{}
}

// Prompt sets the text shown to the player.
func (b *Builder) Prompt(prompt string) *Builder {
	b.question.prompt = prompt
	return b
}

// Answer sets the canonical answer.
func (b *Builder) Answer(answer string) *Builder {
	b.question.answer = answer
	return b
}

// Alternatives sets additional accepted answers.
func (b *Builder) Alternatives(alternatives ...string) *Builder {
	b.question.alternatives = alternatives
	return b
}

// AllowAnyCase makes answer matching case-insensitive.
func (b *Builder) AllowAnyCase() *Builder {
	b.question.anyCase = true
	return b
}

// Build returns the question. An empty prompt or answer is a bug in the
// generating skill, so Build panics.
func (b *Builder) Build() Question {
	if b.question.prompt == "" {
		panic("question cannot be empty")
	}
	if b.question.answer == "" {
		panic("answer cannot be empty")
	}
	return b.question
}

// Source produces question batches. Each skill implements it.
type Source interface {
	GenerateQuestions(count uint32) []Question
}

// Generator serves questions one at a time. In limited mode the whole batch
// is generated up front and served by index; in infinite mode (count 0) each
// question is generated on demand and Next never runs out.
type Generator struct {
	count   uint32
	served  uint32
	source  Source
	batch   []Question
	batched bool
}

// NewGenerator returns a generator serving count questions from the source,
// or an endless stream when count is 0.
func NewGenerator(count uint32, source Source) *Generator {
	return &Generator{count: count, source: source}
}

// HasNext reports whether another question is available.
func (g *Generator) HasNext() bool {
	return g.count == 0 || g.served < g.count
}

// Next returns the next question. It panics if the source produced a batch of
// the wrong size, which is a bug in the skill.
func (g *Generator) Next() Question {
	if g.count == 0 {
		questions := g.source.GenerateQuestions(1)
		if len(questions) != 1 {
			panic("skill did not generate the requested question")
		}
		return questions[0]
	}

	if !g.batched {
		g.batch = g.source.GenerateQuestions(g.count)
		if uint32(len(g.batch)) != g.count {
			panic("skill did not generate the correct amount of questions")
		}
		g.batched = true
	}
	question := g.batch[g.served]
	g.served++
	return question
}
