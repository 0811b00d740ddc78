package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/clients"
)

const testDebounce = 20 * time.Millisecond

type fakeCityClient struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]clients.City
	err     error
	block   chan struct{}
}

func (f *fakeCityClient) SearchCities(ctx context.Context, namePrefix string) ([]clients.City, error) {
	f.mu.Lock()
	f.calls = append(f.calls, namePrefix)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	if f.err != nil {
		return nil, f.err
	}
	return f.results[namePrefix], nil
}

func (f *fakeCityClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestShortQueryClosesWithoutLookup(t *testing.T) {
	client := &fakeCityClient{}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("pa")
	time.Sleep(3 * testDebounce)

	snap := s.Snapshot()
	assert.Equal(t, StateClosed, snap.State)
	assert.Empty(t, snap.Results)
	assert.Zero(t, client.callCount())
}

func TestRapidEditsCollapseToOneLookup(t *testing.T) {
	client := &fakeCityClient{
		results: map[string][]clients.City{
			"paris": {{ID: "1", Name: "Paris", Country: "France"}},
		},
	}
	s := NewSearcherWithDebounce(client, testDebounce)

	for _, q := range []string{"par", "pari", "paris"} {
		s.Input(q)
		time.Sleep(testDebounce / 4)
	}

	waitFor(t, func() bool { return s.Snapshot().State == StateShowingResults })

	assert.Equal(t, 1, client.callCount())
	snap := s.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "Paris", snap.Results[0].Name)
}

func TestStaleResolutionIsDiscarded(t *testing.T) {
	block := make(chan struct{})
	client := &fakeCityClient{
		results: map[string][]clients.City{
			"london": {{ID: "2", Name: "London", Country: "United Kingdom"}},
			"lisbon": {{ID: "3", Name: "Lisbon", Country: "Portugal"}},
		},
		block: block,
	}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("london")
	waitFor(t, func() bool { return client.callCount() == 1 })

	// The user keeps typing while the first lookup is in flight.
	s.Input("lisbon")
	client.mu.Lock()
	client.block = nil
	client.mu.Unlock()
	close(block)

	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.State == StateShowingResults && len(snap.Results) == 1 && snap.Results[0].Name == "Lisbon"
	})

	// The london resolution must never have been displayed.
	snap := s.Snapshot()
	assert.Equal(t, "lisbon", snap.Query)
	assert.Equal(t, "Lisbon", snap.Results[0].Name)
}

func TestLookupErrorShowsEmpty(t *testing.T) {
	client := &fakeCityClient{err: context.DeadlineExceeded}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("berlin")
	waitFor(t, func() bool { return s.Snapshot().State == StateShowingEmpty })

	assert.Empty(t, s.Snapshot().Results)
}

func TestSelectClosesWithLabel(t *testing.T) {
	client := &fakeCityClient{
		results: map[string][]clients.City{
			"rome": {{ID: "7", Name: "Rome", Country: "Italy"}},
		},
	}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("rome")
	waitFor(t, func() bool { return s.Snapshot().State == StateShowingResults })

	city, label, ok := s.Select("7")
	require.True(t, ok)
	assert.Equal(t, "Rome", city.Name)
	assert.Equal(t, "Rome, Italy", label)

	snap := s.Snapshot()
	assert.Equal(t, StateClosed, snap.State)
	assert.Equal(t, "Rome, Italy", snap.Query)
	assert.Empty(t, snap.Results)
}

func TestSelectUnknownIdFails(t *testing.T) {
	client := &fakeCityClient{
		results: map[string][]clients.City{
			"rome": {{ID: "7", Name: "Rome", Country: "Italy"}},
		},
	}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("rome")
	waitFor(t, func() bool { return s.Snapshot().State == StateShowingResults })

	_, _, ok := s.Select("999")
	assert.False(t, ok)
	assert.Equal(t, StateShowingResults, s.Snapshot().State)
}

func TestDismissClearsSession(t *testing.T) {
	client := &fakeCityClient{
		results: map[string][]clients.City{
			"oslo": {{ID: "9", Name: "Oslo", Country: "Norway"}},
		},
	}
	s := NewSearcherWithDebounce(client, testDebounce)

	s.Input("oslo")
	waitFor(t, func() bool { return s.Snapshot().State == StateShowingResults })

	s.Dismiss()

	snap := s.Snapshot()
	assert.Equal(t, StateClosed, snap.State)
	assert.Empty(t, snap.Results)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	store.ttl = 30 * time.Millisecond

	id := store.Create(NewSearcher(&fakeCityClient{}))

	_, ok := store.Get(id)
	require.True(t, ok)

	time.Sleep(2 * store.ttl)

	_, ok = store.Get(id)
	assert.False(t, ok)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()
	id := store.Create(NewSearcher(&fakeCityClient{}))

	store.Delete(id)

	_, ok := store.Get(id)
	assert.False(t, ok)
}
