package main

import (
	"fmt"
	"os"
	"time"

	"github.com/confab-dev/confab/internal/calendar"
	"github.com/confab-dev/confab/internal/conference"
)

func main() {
	// Create a sample conference
	confs := []*conference.Conference{
		{
			ID:        "abc123def456",
			Name:      "GopherCon Europe 2026",
			URL:       "https://gophercon.eu",
			StartDate: "2026-06-15",
			EndDate:   "2026-06-17",
			Location:  conference.Location{Raw: "Berlin, Germany"},
			Domain:    "software",
			Tags:      []string{"golang"},
			CFP:       &conference.CFP{URL: "https://gophercon.eu/cfp", EndDate: "2026-02-01"},
			Source:    "sample",
		},
	}

	// Generate .ics file
	icsContent := calendar.GenerateICS(confs, time.Now().UTC())

	// Write to file (owner read/write only for security)
	filename := "test-confab.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
