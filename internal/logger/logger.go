package logger

import (
	"os"
	"path/filepath"

	"github.com/Anthya1104/math-quiz-cli/internal/config"
	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus instance. Log output goes to a
// file so diagnostics never interleave with the interactive prompts on
// stdout.
func InitLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := os.MkdirAll(filepath.Dir(config.LogFilePath), 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logrus.SetOutput(logFile)

	return nil
}
