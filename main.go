package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizdrill/cmd"
)

func main() {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
