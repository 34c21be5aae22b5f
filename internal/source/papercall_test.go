package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPapercallFetch(t *testing.T) {
	srv := fixtureServer(t, "papercall.html", "text/html")
	s := NewPapercall(NewClient(ClientConfig{}), srv.URL)

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	awesome := records[0]
	assert.Equal(t, "Awesome Conf 2026", awesome.Name)
	assert.Equal(t, "https://www.papercall.io/awesome-conf-2026", awesome.URL)
	assert.Equal(t, "Berlin, Germany", awesome.Location.Raw)
	assert.Empty(t, awesome.StartDate, "listing pages carry no dates")
	require.NotNil(t, awesome.CFP)
	assert.Equal(t, awesome.URL, awesome.CFP.URL)
	assert.Equal(t, "papercall", awesome.Source)

	online := records[1]
	assert.Equal(t, "Online Testing Fest", online.Name)
	assert.True(t, online.Online)

	noLocation := records[2]
	assert.Equal(t, "DevSummit Lisbon", noLocation.Name)
	assert.Empty(t, noLocation.Location.Raw)
}

func TestPapercallSkipsNavigationAndDuplicates(t *testing.T) {
	srv := fixtureServer(t, "papercall.html", "text/html")
	s := NewPapercall(NewClient(ClientConfig{}), srv.URL)

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, rec := range records {
		seen[rec.URL]++
		assert.NotContains(t, []string{"Events", "Pricing", "About"}, rec.Name)
	}
	for url, n := range seen {
		assert.Equal(t, 1, n, "duplicate record for %s", url)
	}
}
