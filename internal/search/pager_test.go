package search_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/models"
	"github.com/repairtrack/backend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceFetch pages over an in-memory report list the way the store would:
// substring filter, then offset slicing.
func sliceFetch(reports []models.Report) search.FetchFunc {
	return func(term string, page, pageSize int) ([]models.Report, error) {
		var filtered []models.Report
		for _, r := range reports {
			if term == "" || strings.Contains(strings.ToLower(r.CustomerName), strings.ToLower(term)) {
				filtered = append(filtered, r)
			}
		}
		start := page * pageSize
		if start >= len(filtered) {
			return nil, nil
		}
		end := start + pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		return filtered[start:end], nil
	}
}

func makeReports(names ...string) []models.Report {
	reports := make([]models.Report, len(names))
	for i, name := range names {
		reports[i] = models.Report{ID: uuid.New(), CustomerName: name}
	}
	return reports
}

func TestPagerLoadMoreAppends(t *testing.T) {
	t.Parallel()

	pager := search.NewPager(sliceFetch(makeReports("a", "b", "c", "d", "e")), 2)

	require.NoError(t, pager.SetTerm(""))
	assert.Len(t, pager.Results(), 2)
	assert.True(t, pager.HasMore())

	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 4)
	assert.True(t, pager.HasMore())

	// The short final page latches the end of results.
	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 5)
	assert.False(t, pager.HasMore())

	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 5, "LoadMore after the end must be a no-op")
}

func TestPagerTermChangeResets(t *testing.T) {
	t.Parallel()

	pager := search.NewPager(sliceFetch(makeReports("Jane", "Janet", "Bob", "Jane")), 2)

	require.NoError(t, pager.SetTerm(""))
	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 4)

	// New term discards the accumulated pages and restarts at page 0.
	require.NoError(t, pager.SetTerm("jane"))
	results := pager.Results()
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Contains(t, strings.ToLower(r.CustomerName), "jane")
	}
	assert.Equal(t, "jane", pager.Term())
}

func TestPagerExactPageBoundary(t *testing.T) {
	t.Parallel()

	pager := search.NewPager(sliceFetch(makeReports("a", "b", "c", "d")), 2)

	require.NoError(t, pager.SetTerm(""))
	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 4)
	// Full final page: the end is only discovered by the next, empty fetch.
	assert.True(t, pager.HasMore())
	require.NoError(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 4)
	assert.False(t, pager.HasMore())
}

func TestPagerFetchFailureKeepsState(t *testing.T) {
	t.Parallel()

	healthy := sliceFetch(makeReports("a", "b", "c"))
	failing := false
	fetch := func(term string, page, pageSize int) ([]models.Report, error) {
		if failing {
			return nil, errors.New("backend unavailable")
		}
		return healthy(term, page, pageSize)
	}

	pager := search.NewPager(fetch, 2)
	require.NoError(t, pager.SetTerm(""))
	require.Len(t, pager.Results(), 2)

	failing = true
	assert.Error(t, pager.LoadMore())
	assert.Len(t, pager.Results(), 2, "displayed state stays intact on failure")
	assert.True(t, pager.HasMore())
}
