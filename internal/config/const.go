package config

import "time"

const (
	LogLevelDebug   string = "debug"
	LogLevelInfo    string = "info"
	LogLevelWarning string = "warn"
	LogLevelError   string = "error"

	LogFilePath string = "math-quiz/log/log_output.txt"
)

const Version = "0.1.0"

// External contract of the quiz: operand bounds are exclusive on both
// ends, the question count upper bound is exclusive with 1 as the
// smallest allowed count.
const (
	MinOperandLimit  = -100
	MaxOperandLimit  = 100
	MaxQuestionCount = 250

	DefaultTimeLimit = 60 * time.Second
)
