package cobra

import (
	"bufio"
	"os"
	"time"

	"github.com/Anthya1104/math-quiz-cli/internal/config"
	"github.com/Anthya1104/math-quiz-cli/internal/quiz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var limitSecondsFlag int

var rootCmd = &cobra.Command{
	Use:   "math-quiz",
	Short: "A timed arithmetic quiz CLI",
	Run: func(cmd *cobra.Command, args []string) {
		runQuiz()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		logrus.Infof("Version: %s", config.Version)
	},
}

func InitCLI() *cobra.Command {

	rootCmd.Flags().IntVarP(&limitSecondsFlag, "limit", "l", 0, "Answer window in seconds (defaults to the configured limit)")
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func ExecuteCmd() error {

	return InitCLI().Execute()

}

func runQuiz() {
	limit := config.Load().TimeLimit
	if limitSecondsFlag > 0 {
		limit = time.Duration(limitSecondsFlag) * time.Second
	}

	reader := quiz.NewLineReader(bufio.NewReader(os.Stdin))
	prompter := quiz.NewPrompter(reader, os.Stdout)

	prompter.Welcome(limit)

	cfg, err := prompter.CollectConfig()
	if err != nil {
		logrus.Errorf("Configuration aborted: %v", err)
		return
	}

	problems, err := quiz.Generate(cfg, nil)
	if err != nil {
		// an invalid config is a hard stop, never an empty session
		logrus.Errorf("Failed to generate problems: %v", err)
		return
	}

	runner := &quiz.Runner{Reader: reader, Out: os.Stdout, Limit: limit}
	answers, err := runner.Run(problems)
	if err != nil {
		logrus.Errorf("Session aborted: %v", err)
		return
	}

	quiz.Grade(problems, answers).Write(os.Stdout)
}
