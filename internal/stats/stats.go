// Package stats tracks answers and timings for a practice session. The
// tracker is shared between the game loop and the interrupt handler, so all
// state lives behind a lock.
package stats

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"practicestuff/internal/config"
)

// Tracker accumulates per-session statistics. All methods are safe for
// concurrent use.
type Tracker struct {
	mu sync.RWMutex

	sessionID string

	numberOfQuestions config.NumberOfQuestions
	answeredQuestions uint32
	correctAnswers    uint32

	startTime           time.Time
	questionStartTime   time.Time
	currentWasAnswered  bool
	timePerQuestion     []time.Duration
}

// NewTracker returns a tracker with a fresh session id. Call Start before
// recording answers.
func NewTracker() *Tracker {
	now := time.Now()
	return &Tracker{
		sessionID:         uuid.New().String(),
		numberOfQuestions: config.NumberOfQuestions{Infinite: true},
		startTime:         now,
		questionStartTime: now,
	}
}

// SessionID identifies the session in log lines.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Start resets the session clock for the given session length.
func (t *Tracker) Start(numberOfQuestions config.NumberOfQuestions) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.numberOfQuestions = numberOfQuestions
	t.startTime = time.Now()
}

// StartQuestion marks the moment the current question was shown.
func (t *Tracker) StartQuestion() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.questionStartTime = time.Now()
	t.currentWasAnswered = false
}

// Answer records an answer to the current question. A repeated answer to the
// same question only updates its elapsed time; the original verdict stands.
func (t *Tracker) Answer(correct bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.questionStartTime)
	if t.currentWasAnswered {
		if len(t.timePerQuestion) == 0 {
			panic("Answer called before StartQuestion")
		}
		t.timePerQuestion[len(t.timePerQuestion)-1] = elapsed
		return
	}

	t.timePerQuestion = append(t.timePerQuestion, elapsed)
	t.answeredQuestions++
	if correct {
		t.correctAnswers++
	}
	t.currentWasAnswered = true
}

// Summary describes the session in one line.
func (t *Tracker) Summary() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.numberOfQuestions.Infinite {
		return fmt.Sprintf("Questions total: %d", t.answeredQuestions)
	}
	return fmt.Sprintf("Questions total: %d, answers: %d, skipped: %d",
		t.numberOfQuestions.Limit, t.answeredQuestions, t.remaining())
}

// CorrectAnswers returns the "correct/answered" pair.
func (t *Tracker) CorrectAnswers() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fmt.Sprintf("%d/%d", t.correctAnswers, t.answeredQuestions)
}

// Remaining returns the number of questions left, always 0 in infinite mode.
func (t *Tracker) Remaining() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.remaining()
}

func (t *Tracker) remaining() uint32 {
	if t.numberOfQuestions.Infinite {
		return 0
	}
	return t.numberOfQuestions.Limit - t.answeredQuestions
}

// TotalAccuracy returns accuracy against the whole session length. Infinite
// sessions have no length, so this is always "0.00%" there.
func (t *Tracker) TotalAccuracy() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var divisor uint32
	if !t.numberOfQuestions.Infinite {
		divisor = t.numberOfQuestions.Limit
	}
	return t.accuracy(divisor)
}

// CurrentAccuracy returns accuracy against the questions answered so far.
func (t *Tracker) CurrentAccuracy() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accuracy(t.answeredQuestions)
}

func (t *Tracker) accuracy(divisor uint32) string {
	acc := 0.0
	if divisor != 0 {
		acc = float64(t.correctAnswers) / float64(divisor)
	}
	return fmt.Sprintf("%.2f%%", acc*100)
}

// TotalTime returns the formatted time since Start. Call it first when
// printing the summary so the clock stops as early as possible.
func (t *Tracker) TotalTime() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return formatDuration(time.Since(t.startTime))
}

// LastQuestionTime returns the formatted time of the last answered question.
// At least one question must have been answered.
func (t *Tracker) LastQuestionTime() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.timePerQuestion) == 0 {
		panic("no questions answered so far")
	}
	return formatDuration(t.timePerQuestion[len(t.timePerQuestion)-1])
}

// MinQuestionTime returns the shortest answer time, "0.0s" with no answers.
func (t *Tracker) MinQuestionTime() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	min := time.Duration(0)
	for i, d := range t.timePerQuestion {
		if i == 0 || d < min {
			min = d
		}
	}
	return formatDuration(min)
}

// MaxQuestionTime returns the longest answer time, "0.0s" with no answers.
func (t *Tracker) MaxQuestionTime() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	max := time.Duration(0)
	for _, d := range t.timePerQuestion {
		if d > max {
			max = d
		}
	}
	return formatDuration(max)
}

// AvgQuestionTime returns the mean answer time, "0.0s" with no answers.
func (t *Tracker) AvgQuestionTime() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.timePerQuestion) == 0 {
		return formatDuration(0)
	}
	total := time.Duration(0)
	for _, d := range t.timePerQuestion {
		total += d
	}
	return formatDuration(total / time.Duration(len(t.timePerQuestion)))
}

// formatDuration renders "XhXm S.mms" with zero hour/minute parts omitted
// and trailing zeros of the millisecond part truncated.
func formatDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60
	milliseconds := truncateTrailingZeros(uint32(d.Milliseconds() % 1000))

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%d.%ss", seconds, milliseconds)

	return b.String()
}

func truncateTrailingZeros(number uint32) string {
	s := fmt.Sprintf("%d", number)
	for strings.HasSuffix(s, "0") && len(s) > 1 {
		s = s[:len(s)-1]
	}
	return s
}
