// Package pipeline runs one full aggregation pass: fetch, dedupe, enrich,
// group, persist, notify.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/confab-dev/confab/internal/conference"
	"github.com/confab-dev/confab/internal/config"
	"github.com/confab-dev/confab/internal/enrich"
	"github.com/confab-dev/confab/internal/notify"
	"github.com/confab-dev/confab/internal/snapshot"
	"github.com/confab-dev/confab/internal/source"
)

// Pipeline wires the aggregation stages together.
type Pipeline struct {
	sources  []source.Source
	store    *snapshot.Store
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// Option tweaks pipeline construction.
type Option func(*Pipeline)

// WithSources replaces the default source set. Used by tests and by callers
// that only want a subset.
func WithSources(sources ...source.Source) Option {
	return func(p *Pipeline) { p.sources = sources }
}

// WithNotifier replaces the notification channel.
func WithNotifier(n notify.Notifier) Option {
	return func(p *Pipeline) { p.notifier = n }
}

// WithClock fixes the pipeline's notion of now.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New builds a pipeline from configuration. The default source set covers all
// live and curated providers.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := snapshot.NewStore(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}

	client := source.NewClient(source.ClientConfig{
		Timeout:    cfg.HTTP.Timeout(),
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.HTTP.MaxRetries,
	})

	var notifier notify.Notifier
	if cfg.Notify.DryRun {
		notifier = notify.NewDryRun(logger)
	} else {
		notifier = notify.NewWebhook(cfg.WebhookURL, logger)
	}

	p := &Pipeline{
		sources: []source.Source{
			source.NewDevEvents(client, ""),
			source.NewConfsTech(client, "", "", cfg.Years),
			source.NewWikiCFP(client, "", minYear(cfg.Years)),
			source.NewPapercall(client, ""),
			source.NewIEEE(cfg.Years),
			source.NewACM(cfg.Years),
			source.NewMLConfs(cfg.Years),
		},
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Result summarizes one aggregation run.
type Result struct {
	Document     *snapshot.Document
	Fetched      int
	Deduplicated int
	NewCFPs      int
	ClosingSoon  int
}

// Run executes one aggregation pass. A failing source costs only its records;
// a failing snapshot write fails the run. Notification errors are logged, not
// returned, so a broken webhook never loses a snapshot.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	now := p.now()

	var all []*conference.Conference
	for _, src := range p.sources {
		records, err := src.Fetch(ctx)
		if err != nil {
			p.logger.Warn("source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		p.logger.Info("source fetched", zap.String("source", src.Name()), zap.Int("records", len(records)))
		all = append(all, records...)
	}
	fetched := len(all)

	deduped := conference.Deduplicate(all)
	p.logger.Info("deduplicated", zap.Int("before", fetched), zap.Int("after", len(deduped)))

	enrich.Enrich(deduped, now)

	months := conference.GroupByMonth(deduped)
	stats := conference.ComputeStats(deduped)

	previous, err := p.store.Load()
	if err != nil {
		p.logger.Warn("previous snapshot unreadable, diffing against nothing", zap.Error(err))
		previous = nil
	}
	previousIDs := previous.IDs()

	doc := &snapshot.Document{
		LastUpdated: now.Format(time.RFC3339),
		Stats:       stats,
		Months:      months,
	}
	if err := p.store.Save(doc); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	p.logger.Info("snapshot written",
		zap.String("path", p.store.Path()),
		zap.Int("total", stats.Total),
		zap.Int("openCFPs", stats.WithOpenCFP),
	)

	newCFPs := notify.SelectNew(deduped, previousIDs)
	closingSoon := notify.SelectClosingSoon(deduped)

	if len(newCFPs) > 0 {
		if err := p.notifier.NotifyNew(ctx, newCFPs); err != nil {
			p.logger.Warn("new CFP notification failed", zap.Error(err))
		}
	}
	if len(closingSoon) > 0 {
		if err := p.notifier.NotifyClosingSoon(ctx, closingSoon); err != nil {
			p.logger.Warn("closing-soon notification failed", zap.Error(err))
		}
	}

	return &Result{
		Document:     doc,
		Fetched:      fetched,
		Deduplicated: len(deduped),
		NewCFPs:      len(newCFPs),
		ClosingSoon:  len(closingSoon),
	}, nil
}

func minYear(years []int) int {
	if len(years) == 0 {
		return 0
	}
	min := years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
	}
	return min
}
