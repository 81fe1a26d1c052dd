package quiz

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner plays one timed answer session over the line protocol. The
// whole problem sequence shares a single wall-clock window anchored at
// the ready signal; there is no per-problem budget.
type Runner struct {
	Reader *LineReader
	Out    io.Writer
	Limit  time.Duration

	// Now is the session clock, defaulting to time.Now. The deadline is
	// sampled before and after each read, so a slow answer can overshoot
	// the nominal limit; that answer is then discarded.
	Now func() time.Time
}

// Run presents problems in order until the deadline passes and returns
// the raw answers, positionally aligned with problems. Slots the user
// never reached, or whose answer arrived after the deadline, stay empty.
func (r *Runner) Run(problems []Problem) ([]string, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	answers := make([]string, len(problems))

	if err := r.waitForStart(); err != nil {
		return answers, err
	}

	start := now()
	logrus.Debugf("Session started: %d problems, %s limit.", len(problems), r.Limit)

	expired := false
	for i, p := range problems {
		left := remaining(start, now(), r.Limit)
		if left <= 0 {
			expired = true
			break
		}

		fmt.Fprintf(r.Out, "[%ds left] %s = ", int(left.Seconds()), p.Expression)
		line, err := r.Reader.ReadLine()
		if err != nil {
			return answers, err
		}

		if remaining(start, now(), r.Limit) <= 0 {
			// The window closed while the user was typing; the answer
			// never made it in.
			logrus.Debugf("Discarding late answer for problem %d.", i+1)
			expired = true
			break
		}
		answers[i] = line
	}

	if expired {
		fmt.Fprintln(r.Out, "Time's up!")
		return answers, nil
	}

	if left := remaining(start, now(), r.Limit); len(answers) > 0 && answers[len(answers)-1] != "" && left > 0 {
		fmt.Fprintf(r.Out, "Done with %d seconds to spare.\n", int(left.Seconds()))
	}
	return answers, nil
}

func (r *Runner) waitForStart() error {
	for {
		fmt.Fprintf(r.Out, "Type '%s' to begin: ", ReadyToken)
		line, err := r.Reader.ReadLine()
		if err != nil {
			return err
		}
		if line == ReadyToken {
			return nil
		}
		fmt.Fprintf(r.Out, "Enter '%s' to begin or '%s' to quit.\n", ReadyToken, QuitToken)
	}
}

// remaining is the single source of truth for how much of the answer
// window is left.
func remaining(start, now time.Time, limit time.Duration) time.Duration {
	return limit - now.Sub(start)
}
