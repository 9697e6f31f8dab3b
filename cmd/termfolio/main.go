// termfolio renders a personal portfolio in the terminal
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kyaoi/termfolio/cmd/termfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
