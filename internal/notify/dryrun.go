package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/confab-dev/confab/internal/conference"
)

// DryRun logs what would be posted without sending anything.
type DryRun struct {
	logger *zap.Logger
}

// NewDryRun creates a dry-run notifier.
func NewDryRun(logger *zap.Logger) *DryRun {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DryRun{logger: logger}
}

// NotifyNew implements Notifier.
func (d *DryRun) NotifyNew(_ context.Context, confs []*conference.Conference) error {
	for _, c := range confs {
		d.logger.Info("dry-run: would announce new CFP",
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("deadline", cfpEndDate(c)),
		)
	}
	return nil
}

// NotifyClosingSoon implements Notifier.
func (d *DryRun) NotifyClosingSoon(_ context.Context, confs []*conference.Conference) error {
	for _, c := range confs {
		d.logger.Info("dry-run: would remind about closing CFP",
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("deadline", cfpEndDate(c)),
		)
	}
	return nil
}

func cfpEndDate(c *conference.Conference) string {
	if c.CFP == nil {
		return ""
	}
	return c.CFP.EndDate
}
