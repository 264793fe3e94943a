package cli

import (
	"context"
	"fmt"
	"strings"
)

// LaunchDetail enriches one launch and prints the composite record. The
// base collection is fetched first when it is still empty, because
// enrichment only works on already-cached launches.
func (a *App) LaunchDetail(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if len(args) == 0 {
		fmt.Println("Usage: launch <id>")
		return nil
	}
	id := args[0]

	if len(a.store.Launches()) == 0 {
		a.store.FetchLaunches(ctx)
	}

	launch, ok := a.store.LaunchByID(id)
	if !ok {
		fmt.Println("Unknown launch id:", id)
		return nil
	}

	a.store.FetchLaunchDetails(ctx, id)

	enriched, ok := a.store.Enriched(id)
	if !ok {
		// enrichment failed; show what we have
		fmt.Printf("%s (flight %d): details unavailable\n", launch.Name, launch.FlightNumber)
		return nil
	}

	fmt.Printf("%s (flight %d)\n", enriched.Name, enriched.FlightNumber)
	fmt.Println("Date:", enriched.DateUTC)
	if enriched.Details != nil {
		fmt.Println("Details:", *enriched.Details)
	}

	fmt.Printf("Rocket: %s (%s): %s\n", enriched.RocketDetails.Name, enriched.RocketDetails.Type, enriched.RocketDetails.Description)
	fmt.Printf("  height %.1f m, mass %.0f kg, success rate %.0f%%\n",
		enriched.Rocket.Height.Meters, enriched.Rocket.Mass.Kg, enriched.Rocket.SuccessRatePct)

	for _, core := range enriched.Cores {
		landing := "no landing"
		if core.LandingSuccess {
			landing = fmt.Sprintf("landed (%s %s)", core.LandingType, core.LandingVehicle)
		}
		fmt.Printf("Core %s: %d reuses, %s\n", core.Serial, core.ReuseCount, landing)
	}

	if len(enriched.Crew) > 0 {
		fmt.Println("Crew:", strings.Join(enriched.Crew, ", "))
	}
	return nil
}
