package quiz

import (
	"fmt"
	"strings"
	"unicode"
)

// math operator
type Operation string

const (
	Add      Operation = "+"
	Subtract Operation = "-"
	Multiply Operation = "*"
	Divide   Operation = "/"
)

// one-letter codes the user types at the operation prompt
var operationCodes = map[rune]Operation{
	'a': Add,
	's': Subtract,
	'm': Multiply,
	'd': Divide,
}

func (o Operation) Apply(a, b int) (int, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, fmt.Errorf("divide by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unknown operation: %s", o)
	}
}

// ParseOperations converts a code string like "asd" into the enabled
// operation set. Duplicates collapse silently, first-seen order is kept,
// and every unknown letter is named in the error.
func ParseOperations(s string) ([]Operation, error) {
	var ops []Operation
	seen := map[Operation]bool{}
	var unknown []string
	seenUnknown := map[rune]bool{}

	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		op, ok := operationCodes[r]
		if !ok {
			if !seenUnknown[r] {
				seenUnknown[r] = true
				unknown = append(unknown, string(r))
			}
			continue
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		ops = append(ops, op)
	}

	if len(unknown) == 1 {
		return nil, fmt.Errorf("unknown operation code '%s'", unknown[0])
	}
	if len(unknown) > 1 {
		return nil, fmt.Errorf("unknown operation codes '%s'", strings.Join(unknown, "', '"))
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("at least one operation code is required")
	}
	return ops, nil
}
