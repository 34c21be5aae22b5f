package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confab-dev/confab/internal/filter"
	"github.com/confab-dev/confab/internal/snapshot"
)

func newSearchCmd() *cobra.Command {
	var (
		flagSnapshot  string
		flagNames     []string
		flagDomains   []string
		flagTags      []string
		flagCountries []string
		flagOnline    bool
		flagOpenCFP   bool
		flagDates     string
		flagSort      string
		flagFormat    string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Query a previously written snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := OutputFormat(strings.ToLower(flagFormat))
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
			}
			order := SortOrder(strings.ToLower(flagSort))
			if order != SortByDate && order != SortByName && order != SortByDomain {
				return fmt.Errorf("invalid sort: %s (must be 'date', 'name', or 'domain')", flagSort)
			}

			f := filter.New()
			f.Names = flagNames
			f.Domains = flagDomains
			f.Tags = flagTags
			f.Countries = flagCountries
			f.OnlineOnly = flagOnline
			f.OpenCFPOnly = flagOpenCFP
			if flagDates != "" {
				from, to, err := filter.ParseDateRange(flagDates)
				if err != nil {
					return err
				}
				f.DateFrom, f.DateTo = from, to
			}

			doc, err := loadSnapshot(flagSnapshot)
			if err != nil {
				return err
			}

			hits := f.Apply(doc.Months.All())
			sortConferences(hits, order)

			return WriteOutput(os.Stdout, &OutputResult{
				GeneratedAt: doc.LastUpdated,
				Filter:      f.String(),
				Conferences: hits,
				Count:       len(hits),
			}, format)
		},
	}

	cmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Snapshot path (defaults to the configured output)")
	cmd.Flags().StringSliceVar(&flagNames, "name", nil, "Name substring (repeatable)")
	cmd.Flags().StringSliceVar(&flagDomains, "domain", nil, "Domain code (repeatable)")
	cmd.Flags().StringSliceVar(&flagTags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringSliceVar(&flagCountries, "country", nil, "Country (repeatable)")
	cmd.Flags().BoolVar(&flagOnline, "online", false, "Online conferences only")
	cmd.Flags().BoolVar(&flagOpenCFP, "open-cfp", false, "Open CFPs only")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Date range, e.g. '2026-03-01..2026-06-30' or 'March'")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, name, or domain")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	return cmd
}

// loadSnapshot opens the snapshot at path, falling back to the configured
// output location when path is empty.
func loadSnapshot(path string) (*snapshot.Document, error) {
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Output
	}

	store, err := snapshot.NewStore(path)
	if err != nil {
		return nil, err
	}
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no snapshot at %s: run the aggregator first", store.Path())
	}
	return doc, nil
}
