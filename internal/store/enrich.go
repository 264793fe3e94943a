package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dkrasnovs/launchboard/internal/models"
	"github.com/dkrasnovs/launchboard/internal/spacex"
)

// unknownSerial is the sentinel used when a core record carries no serial.
const unknownSerial = "Unknown"

// FetchLaunchDetails enriches one cached launch with its detail record and
// the detail record of the rocket it references. A launch id absent from the
// cached collection is a no-op: enrichment never fetches a base record from
// scratch.
//
// The two detail requests are issued concurrently and awaited jointly. On
// any failure the error is logged and the enrichment map is left unchanged
// for this id. Entries for other ids are always preserved (merge, not
// replace), and an entry, once built, is never invalidated.
func (s *Store) FetchLaunchDetails(ctx context.Context, id string) {
	launch, ok := s.LaunchByID(id)
	if !ok {
		return
	}

	var (
		detail *spacex.LaunchDetail
		rocket *spacex.RocketDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.client.GetLaunch(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		rocket, err = s.client.GetRocket(gctx, launch.RocketID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error(ctx, "error fetching launch details", "id", id, "err", err)
		return
	}

	enriched := joinLaunchDetails(launch, detail, rocket)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.enriched[id] = enriched
}

// joinLaunchDetails merges the base launch with the two detail payloads,
// applying the defaults for missing core fields and an absent crew roster.
func joinLaunchDetails(launch models.Launch, detail *spacex.LaunchDetail, rocket *spacex.RocketDetail) models.EnrichedLaunch {
	cores := make([]models.Core, 0, len(detail.Cores))
	for _, c := range detail.Cores {
		core := models.Core{Serial: unknownSerial}
		if c.Core != nil {
			if c.Core.Serial != nil {
				core.Serial = *c.Core.Serial
			}
			if c.Core.ReuseCount != nil {
				core.ReuseCount = *c.Core.ReuseCount
			}
		}
		if c.LandingSuccess != nil {
			core.LandingSuccess = *c.LandingSuccess
		}
		if c.LandingType != nil {
			core.LandingType = *c.LandingType
		}
		if c.LandingVehicle != nil {
			core.LandingVehicle = *c.LandingVehicle
		}
		cores = append(cores, core)
	}

	crew := detail.Crew
	if crew == nil {
		crew = []string{}
	}

	return models.EnrichedLaunch{
		Launch: launch,
		Cores:  cores,
		Crew:   crew,
		RocketDetails: models.RocketDetails{
			Name:        rocket.Name,
			Type:        rocket.Type,
			Description: rocket.Description,
			SuccessRate: rocket.SuccessRatePct,
		},
		Rocket: models.RocketSummary{
			Description:    rocket.Description,
			Height:         models.Height{Meters: rocket.Height.Meters},
			Mass:           models.Mass{Kg: rocket.Mass.Kg},
			SuccessRatePct: rocket.SuccessRatePct,
		},
	}
}
