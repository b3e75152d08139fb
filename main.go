package main

import (
	"os"

	"github.com/careerfolio/resume-agent/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
