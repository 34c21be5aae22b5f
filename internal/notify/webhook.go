package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/confab-dev/confab/internal/conference"
)

// Discord caps one webhook message at 10 embeds; reminders stay shorter.
const (
	maxNewEmbeds    = 10
	maxClosingLines = 5
)

// Urgency colors for embed sidebars, keyed off days until the deadline.
const (
	colorGray   = 0x808080
	colorRed    = 0xFF0000
	colorOrange = 0xFFA500
	colorYellow = 0xFFFF00
	colorGreen  = 0x00FF00
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title  string       `json:"title"`
	URL    string       `json:"url,omitempty"`
	Color  int          `json:"color"`
	Fields []embedField `json:"fields"`
}

type webhookPayload struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds,omitempty"`
}

// Webhook posts Discord-format messages to a webhook URL. An empty URL makes
// every call a logged no-op so callers never need to special-case an
// unconfigured channel.
type Webhook struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewWebhook creates a webhook notifier.
func NewWebhook(url string, logger *zap.Logger) *Webhook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// NotifyNew implements Notifier. The first ten conferences become embeds; the
// content line carries the full count.
func (w *Webhook) NotifyNew(ctx context.Context, confs []*conference.Conference) error {
	if w.url == "" {
		w.logger.Info("no webhook URL configured, skipping notification",
			zap.Int("count", len(confs)))
		return nil
	}
	if len(confs) == 0 {
		return nil
	}

	embeds := make([]embed, 0, maxNewEmbeds)
	for _, c := range confs {
		if len(embeds) == maxNewEmbeds {
			break
		}
		embeds = append(embeds, newEmbed(c))
	}

	payload := webhookPayload{
		Content: fmt.Sprintf("**New CFPs Detected (%d total)**", len(confs)),
		Embeds:  embeds,
	}
	if err := w.post(ctx, payload); err != nil {
		return err
	}
	w.logger.Info("sent new CFP notification", zap.Int("count", len(confs)))
	return nil
}

// NotifyClosingSoon implements Notifier.
func (w *Webhook) NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error {
	if w.url == "" {
		w.logger.Info("no webhook URL configured, skipping notification",
			zap.Int("count", len(confs)))
		return nil
	}
	if len(confs) == 0 {
		return nil
	}

	content := "**CFPs Closing Soon**\n"
	for i, c := range confs {
		if i == maxClosingLines {
			break
		}
		content += "\n" + closingLine(c)
	}

	if err := w.post(ctx, webhookPayload{Content: content}); err != nil {
		return err
	}
	w.logger.Info("sent closing-soon reminder", zap.Int("count", len(confs)))
	return nil
}

func (w *Webhook) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func newEmbed(c *conference.Conference) embed {
	cfpURL := c.URL
	var cfpEnd string
	var days *int
	if c.CFP != nil {
		if c.CFP.URL != "" {
			cfpURL = c.CFP.URL
		}
		cfpEnd = c.CFP.EndDate
		days = c.CFP.DaysRemaining
	}

	location := c.Location.Raw
	if location == "" {
		location = "TBD"
	}
	domain := c.Domain
	if domain == "" {
		domain = "general"
	}

	e := embed{
		Title: c.Name,
		URL:   cfpURL,
		Color: urgencyColor(days, cfpEnd),
		Fields: []embedField{
			{Name: "Location", Value: location, Inline: true},
			{Name: "Domain", Value: strings.ToUpper(domain), Inline: true},
		},
	}

	if cfpEnd != "" {
		daysText := "Deadline passed"
		if days != nil && *days > 0 {
			daysText = fmt.Sprintf("%d days left", *days)
		}
		e.Fields = append(e.Fields, embedField{
			Name:  "CFP Deadline",
			Value: fmt.Sprintf("%s (%s)", cfpEnd, daysText),
		})
	}
	if cfpURL != "" && cfpURL != c.URL {
		e.Fields = append(e.Fields, embedField{
			Name:  "Apply",
			Value: fmt.Sprintf("[Submit Talk](%s)", cfpURL),
		})
	}
	return e
}

func closingLine(c *conference.Conference) string {
	days := 0
	if c.CFP != nil && c.CFP.DaysRemaining != nil {
		days = *c.CFP.DaysRemaining
	}
	link := c.URL
	if c.CFP != nil && c.CFP.URL != "" {
		link = c.CFP.URL
	}

	urgency := "[SOON]"
	if days <= 3 {
		urgency = "[URGENT]"
	}
	return fmt.Sprintf("%s **%s** %d days left: %s", urgency, c.Name, days, link)
}

func urgencyColor(days *int, cfpEnd string) int {
	if cfpEnd == "" || days == nil {
		return colorGray
	}
	switch d := *days; {
	case d <= 7:
		return colorRed
	case d <= 14:
		return colorOrange
	case d <= 30:
		return colorYellow
	default:
		return colorGreen
	}
}
