package main

import (
	"os"

	"github.com/Anthya1104/math-quiz-cli/internal/cobra"
	"github.com/Anthya1104/math-quiz-cli/internal/config"
	"github.com/Anthya1104/math-quiz-cli/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {

	if err := logger.InitLogger(config.Load().LogLevel); err != nil {
		logrus.Fatalf(("Error initializing Logger : %v"), err)
	}

	if err := cobra.ExecuteCmd(); err != nil {
		logrus.Fatalf("Error executing command: %v", err)
		os.Exit(1)
	}

}
