// skillctl extracts and scores skills from local text files.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kailas-cloud/skillmatch/cmd/skillctl/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
