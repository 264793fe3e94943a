package models

// Patch holds mission patch image links. Absent links stay null.
type Patch struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// Links is the subset of launch link fields the dashboard shows.
type Links struct {
	Patch   Patch   `json:"patch"`
	Webcast *string `json:"webcast"`
	Article *string `json:"article"`
}

// Launch is a normalized launch record. Immutable once fetched;
// identity key is ID.
type Launch struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DateUTC      string  `json:"date_utc"`
	Success      bool    `json:"success"`
	FlightNumber int     `json:"flight_number"`
	Details      *string `json:"details"`
	Links        Links   `json:"links"`
	RocketID     string  `json:"rocket_id"`
}

// Height is a dimension in meters.
type Height struct {
	Meters float64 `json:"meters"`
}

// Mass is a weight in kilograms.
type Mass struct {
	Kg float64 `json:"kg"`
}

// Rocket is a catalog record. Immutable once fetched; identity key is ID.
type Rocket struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Height         Height  `json:"height"`
	Mass           Mass    `json:"mass"`
	SuccessRatePct float64 `json:"success_rate_pct"`
}

// Core describes one booster from the per-launch detail payload.
type Core struct {
	Serial         string `json:"serial"`
	ReuseCount     int    `json:"reuse_count"`
	LandingSuccess bool   `json:"landing_success"`
	LandingType    string `json:"landing_type"`
	LandingVehicle string `json:"landing_vehicle"`
}

// RocketDetails carries the descriptive rocket fields shown on the
// launch detail view.
type RocketDetails struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	SuccessRate float64 `json:"success_rate"`
}

// RocketSummary is the physical-characteristics subset of the rocket
// detail payload.
type RocketSummary struct {
	Description    string  `json:"description"`
	Height         Height  `json:"height"`
	Mass           Mass    `json:"mass"`
	SuccessRatePct float64 `json:"success_rate_pct"`
}

// EnrichedLaunch is a Launch joined with its per-launch detail record and
// the detail record of the referenced rocket. Built on demand, cached by
// launch id, never invalidated within a session.
type EnrichedLaunch struct {
	Launch
	Cores         []Core        `json:"cores"`
	Crew          []string      `json:"crew"`
	RocketDetails RocketDetails `json:"rocket_details"`
	Rocket        RocketSummary `json:"rocket"`
}
