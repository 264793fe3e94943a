package store

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkrasnovs/launchboard/internal/logging"
	"github.com/dkrasnovs/launchboard/internal/spacex"
)

// ---- fake client ----

// fakeClient implements spacex.Client for store unit tests.
type fakeClient struct {
	mu sync.Mutex

	QueryRet []spacex.LaunchDoc
	QueryErr error

	RocketsRet []spacex.RocketDoc
	RocketsErr error

	LaunchDetails map[string]*spacex.LaunchDetail
	LaunchErr     error

	RocketDetails map[string]*spacex.RocketDetail
	RocketErr     error

	// call bookkeeping
	QueryCalls  int
	LaunchCalls int
	RocketCalls int
	LastLaunch  string
	LastRocket  string
}

func (f *fakeClient) QueryLaunches(ctx context.Context, limit int) ([]spacex.LaunchDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.QueryCalls++
	return append([]spacex.LaunchDoc(nil), f.QueryRet...), f.QueryErr
}

func (f *fakeClient) ListRockets(ctx context.Context) ([]spacex.RocketDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]spacex.RocketDoc(nil), f.RocketsRet...), f.RocketsErr
}

func (f *fakeClient) GetLaunch(ctx context.Context, id string) (*spacex.LaunchDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LaunchCalls++
	f.LastLaunch = id
	if f.LaunchErr != nil {
		return nil, f.LaunchErr
	}
	return f.LaunchDetails[id], nil
}

func (f *fakeClient) GetRocket(ctx context.Context, id string) (*spacex.RocketDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RocketCalls++
	f.LastRocket = id
	if f.RocketErr != nil {
		return nil, f.RocketErr
	}
	return f.RocketDetails[id], nil
}

// ---- helpers ----

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }

func newStore(c spacex.Client) *Store {
	return New(c, 100, logging.NewJSONLogger(io.Discard))
}

func twoLaunchDocs() []spacex.LaunchDoc {
	return []spacex.LaunchDoc{
		{ID: "l1", Name: "Starlink-1", DateUTC: "2020-01-01T00:00:00.000Z", Success: boolPtr(true), FlightNumber: 1, Rocket: "r1"},
		{ID: "l2", Name: "CRS-2", DateUTC: "2021-06-01T00:00:00.000Z", Success: boolPtr(false), FlightNumber: 2, Rocket: "r1"},
	}
}

// ---- TESTS ----

func TestFetchLaunches_NormalizesDefaults(t *testing.T) {
	fc := &fakeClient{QueryRet: []spacex.LaunchDoc{
		{ID: "l1", Name: "Starlink-1", DateUTC: "2020-01-01T00:00:00.000Z", FlightNumber: 1, Rocket: "r1"},
	}}
	s := newStore(fc)

	s.FetchLaunches(context.Background())

	launches := s.Launches()
	require.Len(t, launches, 1)
	require.False(t, launches[0].Success, "absent success must default to false")
	require.Nil(t, launches[0].Details)
	require.Nil(t, launches[0].Links.Patch.Small)
	require.Nil(t, launches[0].Links.Webcast)
	require.Equal(t, "r1", launches[0].RocketID)

	require.False(t, s.IsLoading())
	require.Empty(t, s.Err())
}

func TestFetchLaunches_FailureKeepsOldCollection(t *testing.T) {
	fc := &fakeClient{QueryRet: twoLaunchDocs()}
	s := newStore(fc)

	s.FetchLaunches(context.Background())
	require.Len(t, s.Launches(), 2)

	fc.mu.Lock()
	fc.QueryErr = errors.New("network down")
	fc.mu.Unlock()

	s.FetchLaunches(context.Background())

	require.Len(t, s.Launches(), 2, "failed fetch must not touch cached collection")
	require.Equal(t, "Failed to fetch launches", s.Err())
	require.False(t, s.IsLoading())
}

func TestFetchLaunches_SuccessClearsErrorAndReplaces(t *testing.T) {
	fc := &fakeClient{QueryErr: errors.New("network down")}
	s := newStore(fc)

	s.FetchLaunches(context.Background())
	require.NotEmpty(t, s.Err())

	fc.mu.Lock()
	fc.QueryErr = nil
	fc.QueryRet = twoLaunchDocs()[:1]
	fc.mu.Unlock()

	s.FetchLaunches(context.Background())

	require.Empty(t, s.Err())
	launches := s.Launches()
	require.Len(t, launches, 1, "successful fetch fully replaces the collection")
	require.Equal(t, "l1", launches[0].ID)
}

func TestFetchRockets(t *testing.T) {
	fc := &fakeClient{RocketsRet: []spacex.RocketDoc{
		{ID: "r1", Name: "Falcon 9", SuccessRatePct: 98, Height: spacex.Height{Meters: 70}, Mass: spacex.Mass{Kg: 549054}},
	}}
	s := newStore(fc)

	s.FetchRockets(context.Background())

	rockets := s.Rockets()
	require.Len(t, rockets, 1)
	require.Equal(t, "Falcon 9", rockets[0].Name)
	require.Equal(t, 70.0, rockets[0].Height.Meters)

	r, ok := s.RocketByID("r1")
	require.True(t, ok)
	require.Equal(t, 98.0, r.SuccessRatePct)

	_, ok = s.RocketByID("missing")
	require.False(t, ok)
}

func TestStatusIsTrackedPerFetchKind(t *testing.T) {
	fc := &fakeClient{
		QueryErr:   errors.New("down"),
		RocketsRet: []spacex.RocketDoc{{ID: "r1"}},
	}
	s := newStore(fc)

	s.FetchLaunches(context.Background())
	s.FetchRockets(context.Background())

	require.NotEmpty(t, s.StatusOf(KindLaunches).Err)
	require.Empty(t, s.StatusOf(KindRockets).Err, "rockets fetch must not be clobbered by launches failure")
}

func TestLaunchByID(t *testing.T) {
	fc := &fakeClient{QueryRet: twoLaunchDocs()}
	s := newStore(fc)
	s.FetchLaunches(context.Background())

	l, ok := s.LaunchByID("l2")
	require.True(t, ok)
	require.Equal(t, "CRS-2", l.Name)

	_, ok = s.LaunchByID("nope")
	require.False(t, ok)
}

// gatedClient blocks each QueryLaunches call until its gate is closed,
// so a test can interleave two in-flight bulk fetches deterministically.
type gatedClient struct {
	fakeClient

	gateMu sync.Mutex
	calls  int
	gates  []chan struct{}
	rets   [][]spacex.LaunchDoc
}

func (c *gatedClient) started() int {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	return c.calls
}

func (c *gatedClient) QueryLaunches(ctx context.Context, limit int) ([]spacex.LaunchDoc, error) {
	c.gateMu.Lock()
	i := c.calls
	c.calls++
	c.gateMu.Unlock()

	<-c.gates[i]
	return c.rets[i], nil
}

func TestFetchLaunches_StaleResponseIsDiscarded(t *testing.T) {
	docsOld := []spacex.LaunchDoc{{ID: "old", Name: "Old", FlightNumber: 1}}
	docsNew := []spacex.LaunchDoc{{ID: "new", Name: "New", FlightNumber: 2}}

	gc := &gatedClient{
		gates: []chan struct{}{make(chan struct{}), make(chan struct{})},
		rets:  [][]spacex.LaunchDoc{docsOld, docsNew},
	}
	s := newStore(gc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchLaunches(context.Background())
	}()
	require.Eventually(t, func() bool { return gc.started() == 1 }, time.Second, time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchLaunches(context.Background())
	}()
	require.Eventually(t, func() bool { return gc.started() == 2 }, time.Second, time.Millisecond)

	// the newer fetch completes first
	close(gc.gates[1])
	require.Eventually(t, func() bool { return len(s.Launches()) == 1 }, time.Second, time.Millisecond)

	// the older, now stale response arrives late and must be dropped
	close(gc.gates[0])
	wg.Wait()

	launches := s.Launches()
	require.Len(t, launches, 1)
	require.Equal(t, "new", launches[0].ID)
	require.False(t, s.IsLoading())
}
