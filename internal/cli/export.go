package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/confab-dev/confab/internal/calendar"
	"github.com/confab-dev/confab/internal/filter"
)

func newExportCmd() *cobra.Command {
	var (
		flagSnapshot string
		flagOut      string
		flagDomains  []string
		flagOpenCFP  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a snapshot as an iCalendar file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadSnapshot(flagSnapshot)
			if err != nil {
				return err
			}

			f := filter.New()
			f.Domains = flagDomains
			f.OpenCFPOnly = flagOpenCFP

			ics := calendar.GenerateICS(f.Apply(doc.Months.All()), time.Now().UTC())

			if flagOut == "" || flagOut == "-" {
				fmt.Fprint(cmd.OutOrStdout(), ics)
				return nil
			}
			if err := os.WriteFile(flagOut, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Snapshot path (defaults to the configured output)")
	cmd.Flags().StringVar(&flagOut, "out", "-", "Calendar file path, or - for stdout")
	cmd.Flags().StringSliceVar(&flagDomains, "domain", nil, "Domain code (repeatable)")
	cmd.Flags().BoolVar(&flagOpenCFP, "open-cfp", false, "Open CFPs only")

	return cmd
}
