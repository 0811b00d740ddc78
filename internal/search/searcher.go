package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"wanderly/internal/clients"
)

// State of a search session. Queries shorter than three characters never
// reach the remote lookup; they close the session and clear prior results.
type State string

const (
	StateIdle           State = "idle"
	StateQuerying       State = "querying"
	StateShowingResults State = "showingResults"
	StateShowingEmpty   State = "showingEmpty"
	StateClosed         State = "closed"
)

const (
	DefaultDebounce = 300 * time.Millisecond
	minQueryLen     = 3
)

// CityClient is the remote lookup behind a search session.
type CityClient interface {
	SearchCities(ctx context.Context, namePrefix string) ([]clients.City, error)
}

// Snapshot is the externally visible view of a session.
type Snapshot struct {
	State   State          `json:"state"`
	Query   string         `json:"query"`
	Results []clients.City `json:"results"`
}

// Searcher debounces free-text input into rate-limited city lookups.
// Each input restarts the debounce timer, so only the value present when
// the timer fires is looked up. In-flight lookups are keyed by query value:
// when the input has moved on by the time a lookup resolves, that resolution
// is discarded (last-query-wins). Lookup failures become StateShowingEmpty;
// no error ever crosses the component boundary.
type Searcher struct {
	mu      sync.Mutex
	client  CityClient
	delay   time.Duration
	timer   *time.Timer
	state   State
	query   string
	results []clients.City
}

func NewSearcher(client CityClient) *Searcher {
	return NewSearcherWithDebounce(client, DefaultDebounce)
}

// NewSearcherWithDebounce allows a shorter debounce window (used in tests).
func NewSearcherWithDebounce(client CityClient, delay time.Duration) *Searcher {
	return &Searcher{
		client: client,
		delay:  delay,
		state:  StateIdle,
	}
}

// Input registers a keystroke's worth of query text.
func (s *Searcher) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len(strings.TrimSpace(query)) < minQueryLen {
		s.state = StateClosed
		s.results = nil
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(query)
	})
}

// fire runs when the debounce timer elapses with query still current.
func (s *Searcher) fire(query string) {
	s.mu.Lock()
	if query != s.query {
		s.mu.Unlock()
		return
	}
	s.state = StateQuerying
	s.mu.Unlock()

	results, err := s.client.SearchCities(context.Background(), query)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer query owns the session now; this resolution is stale.
	if query != s.query {
		return
	}

	if err != nil {
		s.results = nil
		s.state = StateShowingEmpty
		return
	}

	s.results = results
	if len(results) == 0 {
		s.state = StateShowingEmpty
	} else {
		s.state = StateShowingResults
	}
}

// Select closes the session on the result with the given id and returns the
// chosen city along with its canonical "{name}, {country}" label.
func (s *Searcher) Select(cityId string) (*clients.City, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, city := range s.results {
		if city.ID == cityId {
			label := city.Name + ", " + city.Country
			s.query = label
			s.results = nil
			s.state = StateClosed
			if s.timer != nil {
				s.timer.Stop()
				s.timer = nil
			}
			selected := city
			return &selected, label, true
		}
	}

	return nil, "", false
}

// Dismiss closes the session (click-away) and clears results.
func (s *Searcher) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.results = nil
	s.state = StateClosed
}

func (s *Searcher) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]clients.City, len(s.results))
	copy(results, s.results)

	return Snapshot{
		State:   s.state,
		Query:   s.query,
		Results: results,
	}
}
