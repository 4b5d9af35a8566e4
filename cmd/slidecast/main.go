package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"slidecast/internal/cli"
)

func main() {
	// .env is optional; GEMINI_API_KEY may come from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
