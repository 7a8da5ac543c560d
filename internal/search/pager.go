package search

import (
	"sync"

	"github.com/repairtrack/backend/internal/models"
)

// FetchFunc returns one page of reports for a search term.
type FetchFunc func(term string, page, pageSize int) ([]models.Report, error)

// Pager accumulates fetched pages for display ("load more"). A term change
// clears the accumulated results and restarts at page 0; advancing appends.
// Calls are serialized, so a term change can never interleave with a stale
// page append.
type Pager struct {
	mu       sync.Mutex
	fetch    FetchFunc
	pageSize int

	term     string
	nextPage int
	results  []models.Report
	done     bool
}

func NewPager(fetch FetchFunc, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Pager{fetch: fetch, pageSize: pageSize}
}

// SetTerm resets the view to page 0 of the new term, discarding anything
// accumulated for the previous term. It fetches the first page immediately.
func (p *Pager) SetTerm(term string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.term = term
	p.nextPage = 0
	p.results = nil
	p.done = false
	return p.loadLocked()
}

// LoadMore fetches the next page for the current term and appends it. It is
// a no-op once a short page has signaled the end of results.
func (p *Pager) LoadMore() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return nil
	}
	return p.loadLocked()
}

func (p *Pager) loadLocked() error {
	page, err := p.fetch(p.term, p.nextPage, p.pageSize)
	if err != nil {
		// Displayed state stays intact on failure.
		return err
	}
	p.results = append(p.results, page...)
	p.nextPage++
	if len(page) < p.pageSize {
		p.done = true
	}
	return nil
}

// Results returns a copy of the accumulated reports.
func (p *Pager) Results() []models.Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Report, len(p.results))
	copy(out, p.results)
	return out
}

// HasMore reports whether another page may exist.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.done
}

// Term returns the active search term.
func (p *Pager) Term() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.term
}
