package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mpatkar/interviewgen/cmd"
)

func main() {
	// Load .env if present. API keys may live there instead of the config file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
