package quiz

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Miss is an incorrectly answered problem kept for the final report.
type Miss struct {
	Problem Problem
	Answer  string
}

// Report summarises one graded session.
type Report struct {
	Total      int
	Correct    int
	Unanswered int
	Incorrect  []Miss
}

// Grade scores each answer against its problem. Empty answers count as
// unanswered; non-numeric answers count as incorrect, never as a
// failure. Grading is pure, so re-grading the same pair gives the same
// report.
func Grade(problems []Problem, answers []string) Report {
	rep := Report{Total: len(problems)}
	for i, p := range problems {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		if answer == "" {
			rep.Unanswered++
			continue
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v == p.Answer {
			rep.Correct++
			continue
		}
		rep.Incorrect = append(rep.Incorrect, Miss{Problem: p, Answer: answer})
	}
	return rep
}

// Write prints the final report block.
func (rep Report) Write(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 40))
	switch {
	case rep.Total > 0 && rep.Correct == rep.Total:
		fmt.Fprintln(w, "Perfect score, well done!")
	case rep.Correct == 0 && rep.Unanswered == 0:
		fmt.Fprintln(w, "None correct this time, better luck next round.")
	default:
		fmt.Fprintf(w, "%d/%d correct.\n", rep.Correct, rep.Total)
	}
	if rep.Unanswered > 0 {
		fmt.Fprintf(w, "%d unanswered.\n", rep.Unanswered)
	}
	for _, m := range rep.Incorrect {
		fmt.Fprintf(w, "%s = %d, you answered %s\n", m.Problem.Expression, m.Problem.Answer, m.Answer)
	}
}
