// Package views computes derived projections (search, status filter, sort)
// over a launch collection. Everything here is pure: no store access, no
// side effects, recomputed from scratch on every call.
package views

import (
	"slices"
	"strings"
	"time"

	"github.com/dkrasnovs/launchboard/internal/models"
)

// Direction selects the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Status filter values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	// StatusUpcoming keeps launches without a date. Normalization always
	// supplies a date from the API, so in practice this matches nothing;
	// kept as-is rather than inventing a future-date meaning.
	StatusUpcoming = "upcoming"
)

// Sort field values. Anything else leaves the relative order unchanged.
const (
	SortDate   = "date"
	SortFlight = "flight"
	SortName   = "name"
)

// Query is the user-supplied projection parameters.
type Query struct {
	Text          string
	Status        string
	SortField     string
	SortDirection Direction
}

// Apply filters and sorts the collection according to q and returns a new
// slice; the input is never mutated. An empty Text matches everything, an
// empty Status keeps everything, and an unknown SortField preserves order.
func Apply(launches []models.Launch, q Query) []models.Launch {
	out := make([]models.Launch, 0, len(launches))

	text := strings.ToLower(q.Text)
	for _, l := range launches {
		if text != "" && !strings.Contains(strings.ToLower(l.Name), text) {
			continue
		}
		if !matchesStatus(l, q.Status) {
			continue
		}
		out = append(out, l)
	}

	sortLaunches(out, q.SortField, q.SortDirection)
	return out
}

func matchesStatus(l models.Launch, status string) bool {
	switch status {
	case StatusSuccess:
		return l.Success
	case StatusFailed:
		return !l.Success
	case StatusUpcoming:
		return l.DateUTC == ""
	default:
		return true
	}
}

func sortLaunches(launches []models.Launch, field string, dir Direction) {
	var compare func(a, b models.Launch) int

	switch field {
	case SortDate:
		compare = func(a, b models.Launch) int {
			return compareDates(a.DateUTC, b.DateUTC)
		}
	case SortFlight:
		compare = func(a, b models.Launch) int {
			return a.FlightNumber - b.FlightNumber
		}
	case SortName:
		compare = func(a, b models.Launch) int {
			return strings.Compare(a.Name, b.Name)
		}
	default:
		return
	}

	if dir == Desc {
		inner := compare
		compare = func(a, b models.Launch) int { return -inner(a, b) }
	}

	slices.SortStableFunc(launches, compare)
}

// compareDates orders two date_utc strings chronologically. Values that do
// not parse as RFC 3339 fall back to lexicographic comparison, which for
// API-supplied UTC timestamps is the same ordering.
func compareDates(a, b string) int {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}
