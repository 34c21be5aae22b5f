package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/confab-dev/confab/internal/conference"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains search results to be output.
type OutputResult struct {
	GeneratedAt string                   `json:"generated_at,omitempty"`
	Filter      string                   `json:"filter,omitempty"`
	Conferences []*conference.Conference `json:"conferences"`
	Count       int                      `json:"count"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	if result.Count == 0 {
		fmt.Fprintln(w, "No conferences found.")
		return nil
	}

	for _, c := range result.Conferences {
		fmt.Fprintf(w, "%s\n", c.Name)
		fmt.Fprintf(w, "  Date: %s\n", orTBD(c.StartDate))
		fmt.Fprintf(w, "  Location: %s\n", locationLine(c))
		if c.Domain != "" {
			fmt.Fprintf(w, "  Domain: %s\n", c.Domain)
		}
		if len(c.Tags) > 0 {
			fmt.Fprintf(w, "  Tags: %s\n", strings.Join(c.Tags, ", "))
		}
		if line := cfpLine(c); line != "" {
			fmt.Fprintf(w, "  CFP: %s\n", line)
		}
		if c.URL != "" {
			fmt.Fprintf(w, "  URL: %s\n", c.URL)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d conferences\n", result.Count)
	return nil
}

func orTBD(s string) string {
	if s == "" {
		return "TBD"
	}
	return s
}

func locationLine(c *conference.Conference) string {
	if c.Online {
		return "Online"
	}
	return orTBD(c.Location.Raw)
}

func cfpLine(c *conference.Conference) string {
	if c.CFP == nil {
		return ""
	}
	switch {
	case c.CFP.Status == conference.CFPOpen && c.CFP.DaysRemaining != nil:
		return fmt.Sprintf("open, %d days left (%s)", *c.CFP.DaysRemaining, c.CFP.URL)
	case c.CFP.Status == conference.CFPOpen:
		return fmt.Sprintf("open (%s)", c.CFP.URL)
	case c.CFP.Status == conference.CFPClosed:
		return "closed"
	default:
		return c.CFP.URL
	}
}
