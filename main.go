package main

import (
	"github.com/joho/godotenv"

	"github.com/ktausif7709-art/Time-tracker/cmd"
)

func main() {
	// Optional .env for GEMINI_API_KEY; a missing file is fine.
	_ = godotenv.Load()
	cmd.Execute()
}
