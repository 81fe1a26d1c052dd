package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Problem is a single quiz question with its precomputed answer.
type Problem struct {
	Expression string
	Answer     int
}

// Config describes one quiz's generation parameters.
type Config struct {
	Min        int
	Max        int
	Count      int
	Operations []Operation
}

func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("min operand %d is greater than max operand %d", c.Min, c.Max)
	}
	if c.Count <= 0 {
		return fmt.Errorf("question count must be at least 1, got %d", c.Count)
	}
	if len(c.Operations) == 0 {
		return fmt.Errorf("at least one operation is required")
	}
	var unknown []string
	for _, op := range c.Operations {
		switch op {
		case Add, Subtract, Multiply, Divide:
		default:
			unknown = append(unknown, string(op))
		}
	}
	if len(unknown) == 1 {
		return fmt.Errorf("unknown operation '%s'", unknown[0])
	}
	if len(unknown) > 1 {
		return fmt.Errorf("unknown operations '%s'", strings.Join(unknown, "', '"))
	}
	return nil
}

// Generate produces cfg.Count problems in presentation order. A nil rng
// falls back to a time-seeded source. An invalid config yields no
// problems at all, never a partial slice.
func Generate(cfg Config, rng *rand.Rand) ([]Problem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	problems := make([]Problem, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		op := cfg.Operations[rng.Intn(len(cfg.Operations))]

		if op == Divide {
			problems = append(problems, newDivisionProblem(cfg, rng))
			continue
		}

		a := sampleOperand(cfg, rng)
		b := sampleOperand(cfg, rng)
		ans, err := op.Apply(a, b)
		if err != nil {
			return nil, err
		}
		problems = append(problems, Problem{
			Expression: fmt.Sprintf("%d%s%d", a, op, b),
			Answer:     ans,
		})
	}
	return problems, nil
}

func sampleOperand(cfg Config, rng *rand.Rand) int {
	return cfg.Min + rng.Intn(cfg.Max-cfg.Min+1)
}

// newDivisionProblem samples a numerator and pairs it with a divisor that
// divides it exactly, so every division answer is a whole number. The
// numerator shown is the adjusted one returned by the divisor search.
func newDivisionProblem(cfg Config, rng *rand.Rand) Problem {
	numerator, divs := findDivisors(sampleOperand(cfg, rng))
	denominator := divs[rng.Intn(len(divs))]
	return Problem{
		Expression: fmt.Sprintf("%d/%d", numerator, denominator),
		Answer:     numerator / denominator,
	}
}

// findDivisors walks candidates upward from n until one has a non-empty
// divisor set. Only |n| = 0 has an empty set, so the walk terminates after
// at most one increment; it is kept as a loop to match the search's
// stated retry rule.
func findDivisors(n int) (int, []int) {
	for {
		divs := divisorsOf(abs(n))
		if len(divs) > 0 {
			return n, divs
		}
		n++
	}
}

// divisorsOf lists the positive divisors of n, scanning trial divisors up
// to sqrt(n) and pairing each hit i with n/i. n = 0 yields an empty list
// because the scan range 1..sqrt(0) is empty.
func divisorsOf(n int) []int {
	var divs []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		divs = append(divs, i)
		if pair := n / i; pair != i {
			divs = append(divs, pair)
		}
	}
	return divs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
