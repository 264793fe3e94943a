// Package spacex is the HTTP client for the public SpaceX data API
// (r/spacex-api v4/v5). It only transports and decodes payloads; all
// normalization and caching live in the store.
package spacex

import "context"

// LaunchDoc is a raw launch record as returned by the bulk query endpoint.
// Optional fields stay pointers so the store can apply its own defaults.
type LaunchDoc struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DateUTC      string   `json:"date_utc"`
	Success      *bool    `json:"success"`
	FlightNumber int      `json:"flight_number"`
	Details      *string  `json:"details"`
	Links        DocLinks `json:"links"`
	Rocket       string   `json:"rocket"`
}

type DocLinks struct {
	Patch   DocPatch `json:"patch"`
	Webcast *string  `json:"webcast"`
	Article *string  `json:"article"`
}

type DocPatch struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// LaunchDetail is the per-launch detail record (cores and crew roster).
type LaunchDetail struct {
	Cores []DetailCore `json:"cores"`
	Crew  []string     `json:"crew"`
}

// DetailCore wraps one core slot of the detail payload. The nested core
// record can be absent entirely.
type DetailCore struct {
	Core           *CoreRecord `json:"core"`
	LandingSuccess *bool       `json:"landing_success"`
	LandingType    *string     `json:"landing_type"`
	LandingVehicle *string     `json:"landing_vehicle"`
}

type CoreRecord struct {
	Serial     *string `json:"serial"`
	ReuseCount *int    `json:"reuse_count"`
}

// RocketDetail is a single rocket record with descriptive fields.
type RocketDetail struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Height         Height  `json:"height"`
	Mass           Mass    `json:"mass"`
	SuccessRatePct float64 `json:"success_rate_pct"`
}

type Height struct {
	Meters float64 `json:"meters"`
}

type Mass struct {
	Kg float64 `json:"kg"`
}

// Client is the remote data provider surface consumed by the store.
// The store accepts this interface so tests can substitute a fake.
type Client interface {
	// QueryLaunches requests up to limit launches sorted by descending date.
	QueryLaunches(ctx context.Context, limit int) ([]LaunchDoc, error)

	// ListRockets fetches the whole rocket collection.
	ListRockets(ctx context.Context) ([]RocketDoc, error)

	// GetLaunch fetches the detail record for one launch.
	GetLaunch(ctx context.Context, id string) (*LaunchDetail, error)

	// GetRocket fetches the detail record for one rocket.
	GetRocket(ctx context.Context, id string) (*RocketDetail, error)
}

// RocketDoc is a raw rocket record from the bulk endpoint; it is used
// verbatim as the cached rocket shape.
type RocketDoc struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Height         Height  `json:"height"`
	Mass           Mass    `json:"mass"`
	SuccessRatePct float64 `json:"success_rate_pct"`
}
