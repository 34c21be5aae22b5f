package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIEEECatalogFetch(t *testing.T) {
	s := NewIEEE([]int{2025, 2026})

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)

	// 15 series over 2 years, minus the even-year ICCV edition.
	assert.Len(t, records, 29)

	var iccvYears []string
	for _, r := range records {
		if r.Name == "IEEE/CVF International Conference on Computer Vision 2026 (ICCV)" {
			t.Fatal("ICCV must not run in even years")
		}
		if r.Name == "IEEE/CVF International Conference on Computer Vision 2025 (ICCV)" {
			iccvYears = append(iccvYears, r.StartDate)
		}
		assert.Equal(t, "ieee", r.Source)
	}
	assert.Equal(t, []string{"2025-10-15"}, iccvYears)
}

func TestMLCatalogDeadlines(t *testing.T) {
	s := NewMLConfs([]int{2026})

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 13)

	deadlines := make(map[string]string)
	for _, r := range records {
		require.NotNil(t, r.CFP)
		deadlines[r.Name] = r.CFP.EndDate
	}

	// Lead time counts back from the event month; January wraps to the
	// previous year.
	assert.Equal(t, "2026-07-01", deadlines["Conference on Neural Information Processing Systems 2026 (NeurIPS)"])
	assert.Equal(t, "2025-10-01", deadlines["AAAI Conference on Artificial Intelligence 2026 (AAAI)"])
	assert.Equal(t, "2025-12-01", deadlines["International Conference on Artificial Intelligence and Statistics 2026 (AISTATS)"])
}

func TestMLCatalogBiennialSeries(t *testing.T) {
	s := NewMLConfs([]int{2025, 2026})

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)

	// 13 series over 2 years, minus the odd-year COLING edition.
	assert.Len(t, records, 25)

	var colingNames []string
	for _, r := range records {
		if r.Name == "COLING - International Conference on Computational Linguistics 2025 (COLING)" {
			t.Fatal("COLING must not run in odd years")
		}
		if r.Name == "COLING - International Conference on Computational Linguistics 2026 (COLING)" {
			colingNames = append(colingNames, r.Name)
		}
	}
	assert.Len(t, colingNames, 1)
}

func TestMLCatalogLeadTag(t *testing.T) {
	s := NewMLConfs([]int{2026})

	records, err := s.Fetch(context.Background())
	require.NoError(t, err)

	for _, r := range records {
		require.NotEmpty(t, r.Tags)
		assert.Equal(t, "ml", r.Tags[0])
		assert.Contains(t, r.Tags, "academic")
	}
}

func TestCatalogIsDeterministic(t *testing.T) {
	a, err := NewACM([]int{2026}).Fetch(context.Background())
	require.NoError(t, err)
	b, err := NewACM([]int{2026}).Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].StartDate, b[i].StartDate)
	}
}
