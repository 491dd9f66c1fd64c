package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/gnc-reports/cmd/accounts"
	"fjacquet/gnc-reports/cmd/balance"
	"fjacquet/gnc-reports/cmd/batch"
	"fjacquet/gnc-reports/cmd/income"
	"fjacquet/gnc-reports/cmd/register"
	"fjacquet/gnc-reports/cmd/report"
	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, before anything logs.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(register.Cmd)
	root.Cmd.AddCommand(balance.Cmd)
	root.Cmd.AddCommand(income.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

// loadEnvSilently loads a .env file from the current or parent directory
// without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
func configureLogLevelDirectly() {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
