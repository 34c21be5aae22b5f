package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T, fixture, contentType string) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile("testdata/" + fixture)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDevEventsFetch(t *testing.T) {
	srv := fixtureServer(t, "devevents.json", "application/json")
	s := NewDevEvents(NewClient(ClientConfig{}), srv.URL)

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3, "the nameless entry must be dropped")

	dotjs := records[0]
	assert.Equal(t, "DotJS 2026", dotjs.Name)
	assert.Equal(t, "https://www.dotjs.io", dotjs.URL)
	assert.Equal(t, "2026-04-01", dotjs.StartDate)
	assert.Equal(t, "2026-04-02", dotjs.EndDate)
	assert.Equal(t, "Paris", dotjs.Location.City)
	assert.Equal(t, "France", dotjs.Location.Country)
	assert.False(t, dotjs.Online)
	require.NotNil(t, dotjs.CFP)
	assert.Equal(t, "https://www.dotjs.io/cfp", dotjs.CFP.URL)
	assert.Equal(t, "2026-03-01", dotjs.CFP.EndDate)
	assert.Equal(t, "developers.events", dotjs.Source)

	online := records[1]
	assert.True(t, online.Online)
	assert.Equal(t, "Online", online.Location.City)
	assert.Empty(t, online.StartDate)
	assert.Nil(t, online.CFP, "no link means no CFP")

	commaStyle := records[2]
	assert.Equal(t, "Austin", commaStyle.Location.City)
	assert.Equal(t, "USA", commaStyle.Location.Country)
	require.NotNil(t, commaStyle.CFP)
	assert.Empty(t, commaStyle.CFP.EndDate, "zero untilDate means no deadline")
}

func TestDevEventsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewDevEvents(NewClient(ClientConfig{}), srv.URL)
	_, err := s.Fetch(context.Background())
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw         string
		city        string
		country     string
	}{
		{"Paris (France)", "Paris", "France"},
		{"Austin, USA", "Austin", "USA"},
		{"Online", "Online", ""},
		{"", "", ""},
		{"Berlin", "Berlin", ""},
	}

	for _, tt := range tests {
		city, country := parseLocation(tt.raw)
		assert.Equal(t, tt.city, city, "city of %q", tt.raw)
		assert.Equal(t, tt.country, country, "country of %q", tt.raw)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{MaxRetries: 2})
	var out []devEventsItem
	err := c.GetJSON(context.Background(), srv.URL, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{MaxRetries: 3})
	var out []devEventsItem
	err := c.GetJSON(context.Background(), srv.URL, &out)
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
