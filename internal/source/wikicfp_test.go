package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikiCFPFetch(t *testing.T) {
	// The test server answers every category page with the same fixture; the
	// cross-category URL dedupe must still yield each event once.
	srv := fixtureServer(t, "wikicfp.html", "text/html")
	s := NewWikiCFP(NewClient(ClientConfig{}), srv.URL, 2025)

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	icml := records[0]
	assert.Equal(t, "ICML 2026", icml.Name)
	assert.Equal(t, srv.URL+"/cfp/servlet/event.showcfp?eventid=100&copyownerid=2", icml.URL)
	assert.Equal(t, "ai", icml.Domain)
	assert.Contains(t, icml.Tags, "ai")
	require.NotNil(t, icml.CFP)
	assert.Equal(t, icml.URL, icml.CFP.URL)
	assert.Equal(t, "wikicfp", icml.Source)

	// The 2019 edition is filtered; the yearless workshop survives.
	assert.Equal(t, "Workshop on Neural Methods", records[1].Name)
}

func TestWikiCFPAllCategoriesDown(t *testing.T) {
	s := NewWikiCFP(NewClient(ClientConfig{Timeout: time.Second, MaxRetries: 0}), "http://127.0.0.1:1", 2025)
	_, err := s.Fetch(context.Background())
	assert.Error(t, err)
}
