package quiz

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Anthya1104/math-quiz-cli/internal/config"
)

// Prompter collects the quiz configuration over the line protocol,
// re-prompting on bad input until it has a valid value.
type Prompter struct {
	r   *LineReader
	out io.Writer
}

func NewPrompter(r *LineReader, out io.Writer) *Prompter {
	return &Prompter{r: r, out: out}
}

// Welcome prints the fixed instruction block shown once at startup.
func (p *Prompter) Welcome(limit time.Duration) {
	fmt.Fprintln(p.out, "Welcome to the math quiz!")
	fmt.Fprintf(p.out, "Answer as many problems as you can within %d seconds.\n", int(limit.Seconds()))
	fmt.Fprintln(p.out, "Operations: a (add), s (subtract), m (multiply), d (divide).")
	fmt.Fprintf(p.out, "Enter '%s' at any prompt to quit.\n", QuitToken)
	fmt.Fprintln(p.out)
}

// ReadIntBetween keeps prompting until the user enters an integer with
// lo < value < hi, both bounds exclusive.
func (p *Prompter) ReadIntBetween(label string, lo, hi int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s (between %d and %d, exclusive): ", label, lo, hi)
		line, err := p.r.ReadLine()
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintf(p.out, "'%s' is not a whole number, try again.\n", line)
			continue
		}
		if v <= lo || v >= hi {
			fmt.Fprintf(p.out, "%d is out of range, enter a number between %d and %d (exclusive).\n", v, lo, hi)
			continue
		}
		return v, nil
	}
}

// ReadOperations keeps prompting until the user enters a valid operation
// code string.
func (p *Prompter) ReadOperations() ([]Operation, error) {
	for {
		fmt.Fprint(p.out, "Operations to include (any of 'asmd'): ")
		line, err := p.r.ReadLine()
		if err != nil {
			return nil, err
		}
		ops, parseErr := ParseOperations(line)
		if parseErr != nil {
			fmt.Fprintf(p.out, "%v, try again.\n", parseErr)
			continue
		}
		return ops, nil
	}
}

// CollectConfig walks the user through the full configuration sequence:
// minimum operand, maximum operand, question count, operations.
func (p *Prompter) CollectConfig() (Config, error) {
	min, err := p.ReadIntBetween("Minimum operand", config.MinOperandLimit, config.MaxOperandLimit)
	if err != nil {
		return Config{}, err
	}
	max, err := p.ReadIntBetween("Maximum operand", min, config.MaxOperandLimit)
	if err != nil {
		return Config{}, err
	}
	count, err := p.ReadIntBetween("Number of questions", 0, config.MaxQuestionCount)
	if err != nil {
		return Config{}, err
	}
	ops, err := p.ReadOperations()
	if err != nil {
		return Config{}, err
	}
	return Config{Min: min, Max: max, Count: count, Operations: ops}, nil
}
