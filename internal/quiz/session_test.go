package quiz_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Anthya1104/math-quiz-cli/internal/quiz"
	"github.com/stretchr/testify/assert"
)

// stepClock advances by a fixed step on every sample, standing in for the
// wall clock the runner re-checks around each read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestRunner(input string, limit time.Duration, step time.Duration, exit func(int)) (*quiz.Runner, *bytes.Buffer) {
	if exit == nil {
		exit = func(int) {}
	}
	out := &bytes.Buffer{}
	clock := &stepClock{t: time.Unix(0, 0), step: step}
	runner := &quiz.Runner{
		Reader: quiz.NewLineReaderWithExit(bufio.NewReader(strings.NewReader(input)), exit),
		Out:    out,
		Limit:  limit,
		Now:    clock.Now,
	}
	return runner, out
}

var testProblems = []quiz.Problem{
	{Expression: "9+7", Answer: 16},
	{Expression: "12/3", Answer: 4},
	{Expression: "8-10", Answer: -2},
}

func TestRunAllAnswered(t *testing.T) {
	runner, out := newTestRunner("start\n16\n4\n-2\n", 60*time.Second, time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"16", "4", "-2"}, answers)
	assert.Contains(t, out.String(), "9+7 = ")
	assert.Contains(t, out.String(), "seconds to spare")
	assert.NotContains(t, out.String(), "Time's up!")
}

func TestRunZeroLimit(t *testing.T) {
	runner, out := newTestRunner("start\n16\n4\n-2\n", 0, time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, answers)
	assert.Contains(t, out.String(), "Time's up!")
	assert.NotContains(t, out.String(), "9+7", "no problem should be presented")
}

func TestRunDeadlineStopsMidway(t *testing.T) {
	// clock samples: start=2s, then pre/post reads at 4s, 6s, 8s...
	// with a 5s limit the second problem's pre-read check is already late
	runner, out := newTestRunner("start\n16\n4\n-2\n", 5*time.Second, 2*time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"16", "", ""}, answers)
	assert.Contains(t, out.String(), "Time's up!")
}

func TestRunLateAnswerDiscarded(t *testing.T) {
	// the first answer arrives after the window closed: pre-read check at
	// 6s leaves 2s of a 5s limit (start anchored at 3s), post-read check
	// at 9s is past the deadline
	runner, out := newTestRunner("start\n16\n4\n-2\n", 5*time.Second, 3*time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, answers, "late answer must be discarded")
	assert.Contains(t, out.String(), "9+7 = ", "the first problem was presented")
	assert.Contains(t, out.String(), "Time's up!")
}

func TestRunReadyReprompt(t *testing.T) {
	runner, out := newTestRunner("go\nready\nstart\n16\n4\n-2\n", 60*time.Second, time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"16", "4", "-2"}, answers)
	assert.Contains(t, out.String(), "Enter 'start' to begin or 'q' to quit.")
}

func TestRunQuitAtReadyPrompt(t *testing.T) {
	exitCode := -1
	runner, _ := newTestRunner("q\n", 60*time.Second, time.Second, func(code int) { exitCode = code })

	answers, err := runner.Run(testProblems)
	assert.Error(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"", "", ""}, answers)
}

func TestRunQuitMidSession(t *testing.T) {
	exitCode := -1
	runner, _ := newTestRunner("start\n16\nQ\n", 60*time.Second, time.Second, func(code int) { exitCode = code })

	answers, err := runner.Run(testProblems)
	assert.Error(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"16", "", ""}, answers)
}

func TestRunEmptyLineIsUnanswered(t *testing.T) {
	runner, out := newTestRunner("start\n\n4\n-2\n", 60*time.Second, time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"", "4", "-2"}, answers)
	assert.NotContains(t, out.String(), "Time's up!")
}

func TestRunAnswersFoldedToLowerCase(t *testing.T) {
	runner, _ := newTestRunner("start\n  16 \nABC\n-2\n", 60*time.Second, time.Second, nil)

	answers, err := runner.Run(testProblems)
	assert.NoError(t, err)
	assert.Equal(t, []string{"16", "abc", "-2"}, answers)
}

func TestRunNoProblems(t *testing.T) {
	runner, out := newTestRunner("start\n", 60*time.Second, time.Second, nil)

	answers, err := runner.Run(nil)
	assert.NoError(t, err)
	assert.Empty(t, answers)
	assert.NotContains(t, out.String(), "Time's up!")
}
