package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newSurveyPrompter()).Execute(); err != nil {
		os.Exit(1)
	}
}
