// Command confab aggregates tech conference and CFP listings into a JSON
// snapshot and announces changes.
package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/confab-dev/confab/internal/cli"
)

func main() {
	cli.Execute()
}
