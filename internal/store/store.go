// Package store owns the cached launch/rocket collections and the on-demand
// enrichment map. It is the single application-state object: the composition
// root creates one Store and consumers mutate it only through its action
// methods.
//
// Fetch failures never propagate as errors; they are recorded into the
// per-operation status and logged, and the previously cached collection is
// left untouched. Callers observe Status/Err instead of catching errors.
package store

import (
	"context"
	"sync"

	"github.com/dkrasnovs/launchboard/internal/logging"
	"github.com/dkrasnovs/launchboard/internal/models"
	"github.com/dkrasnovs/launchboard/internal/spacex"
)

// FetchKind identifies one of the bulk fetch operations. Each kind tracks
// its own loading flag and error so concurrent fetches cannot clobber each
// other's terminal state.
type FetchKind string

const (
	KindLaunches FetchKind = "launches"
	KindRockets  FetchKind = "rockets"
)

// Status is the observable state of one fetch kind.
type Status struct {
	Loading bool
	Err     string
}

type Store struct {
	client spacex.Client
	log    logging.Logger
	limit  int

	mu       sync.RWMutex
	launches []models.Launch
	rockets  []models.Rocket
	enriched map[string]models.EnrichedLaunch
	status   map[FetchKind]Status
	gen      map[FetchKind]uint64
}

func New(client spacex.Client, limit int, log logging.Logger) *Store {
	return &Store{
		client:   client,
		log:      log,
		limit:    limit,
		enriched: make(map[string]models.EnrichedLaunch),
		status:   make(map[FetchKind]Status),
		gen:      make(map[FetchKind]uint64),
	}
}

// begin marks the fetch kind as loading and returns the generation of this
// attempt. A response whose generation no longer matches is stale (a newer
// fetch of the same kind started meanwhile) and must be discarded.
func (s *Store) begin(kind FetchKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[kind]++
	s.status[kind] = Status{Loading: true, Err: s.status[kind].Err}
	return s.gen[kind]
}

// FetchLaunches replaces the whole launch collection with a fresh bulk
// query, newest first. On failure the previous collection stays intact and
// the launches status carries the error message.
func (s *Store) FetchLaunches(ctx context.Context) {
	gen := s.begin(KindLaunches)

	docs, err := s.client.QueryLaunches(ctx, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen[KindLaunches] != gen {
		s.log.Warn(ctx, "discarding stale launches response", "gen", gen)
		return
	}

	if err != nil {
		s.log.Error(ctx, "error fetching launches", "err", err)
		s.status[KindLaunches] = Status{Err: "Failed to fetch launches"}
		return
	}

	launches := make([]models.Launch, 0, len(docs))
	for _, doc := range docs {
		launches = append(launches, normalizeLaunch(doc))
	}

	s.launches = launches
	s.status[KindLaunches] = Status{}
}

// FetchRockets replaces the whole rocket collection. Same failure policy as
// FetchLaunches.
func (s *Store) FetchRockets(ctx context.Context) {
	gen := s.begin(KindRockets)

	docs, err := s.client.ListRockets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen[KindRockets] != gen {
		s.log.Warn(ctx, "discarding stale rockets response", "gen", gen)
		return
	}

	if err != nil {
		s.log.Error(ctx, "error fetching rockets", "err", err)
		s.status[KindRockets] = Status{Err: "Failed to fetch rockets"}
		return
	}

	rockets := make([]models.Rocket, 0, len(docs))
	for _, doc := range docs {
		rockets = append(rockets, models.Rocket{
			ID:             doc.ID,
			Name:           doc.Name,
			Description:    doc.Description,
			Height:         models.Height{Meters: doc.Height.Meters},
			Mass:           models.Mass{Kg: doc.Mass.Kg},
			SuccessRatePct: doc.SuccessRatePct,
		})
	}

	s.rockets = rockets
	s.status[KindRockets] = Status{}
}

// normalizeLaunch maps a raw doc into the cached Launch shape: an absent
// success flag becomes false, absent link fields stay null.
func normalizeLaunch(doc spacex.LaunchDoc) models.Launch {
	success := false
	if doc.Success != nil {
		success = *doc.Success
	}

	return models.Launch{
		ID:           doc.ID,
		Name:         doc.Name,
		DateUTC:      doc.DateUTC,
		Success:      success,
		FlightNumber: doc.FlightNumber,
		Details:      doc.Details,
		Links: models.Links{
			Patch: models.Patch{
				Small: doc.Links.Patch.Small,
				Large: doc.Links.Patch.Large,
			},
			Webcast: doc.Links.Webcast,
			Article: doc.Links.Article,
		},
		RocketID: doc.Rocket,
	}
}

// Launches returns a copy of the cached launch collection.
func (s *Store) Launches() []models.Launch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Launch(nil), s.launches...)
}

// Rockets returns a copy of the cached rocket collection.
func (s *Store) Rockets() []models.Rocket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rocket(nil), s.rockets...)
}

// LaunchByID is a linear lookup over the cached collection; absence is
// reported with ok=false, not an error.
func (s *Store) LaunchByID(id string) (models.Launch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.launches {
		if l.ID == id {
			return l, true
		}
	}
	return models.Launch{}, false
}

// RocketByID is a linear lookup over the cached collection.
func (s *Store) RocketByID(id string) (models.Rocket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rockets {
		if r.ID == id {
			return r, true
		}
	}
	return models.Rocket{}, false
}

// Enriched returns the enriched record for a launch id, if one was built.
// A missing entry means "not yet enriched"; a failed enrichment looks the
// same to the caller.
func (s *Store) Enriched(id string) (models.EnrichedLaunch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.enriched[id]
	return e, ok
}

// EnrichedLaunches returns a copy of the whole enrichment map.
func (s *Store) EnrichedLaunches() map[string]models.EnrichedLaunch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.EnrichedLaunch, len(s.enriched))
	for k, v := range s.enriched {
		out[k] = v
	}
	return out
}

// StatusOf reports the status of one fetch kind.
func (s *Store) StatusOf(kind FetchKind) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[kind]
}

// IsLoading reports whether any bulk fetch is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.status {
		if st.Loading {
			return true
		}
	}
	return false
}

// Err returns the first recorded fetch error message, or "" when none.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, kind := range []FetchKind{KindLaunches, KindRockets} {
		if msg := s.status[kind].Err; msg != "" {
			return msg
		}
	}
	return ""
}
