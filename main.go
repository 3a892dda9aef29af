package main

import (
	"os"

	"github.com/ayanchyaziz123/career-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
