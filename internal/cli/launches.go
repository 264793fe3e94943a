package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dkrasnovs/launchboard/internal/models"
	"github.com/dkrasnovs/launchboard/internal/views"
)

// parseQuery turns REPL arguments of the form key=value into a view query.
// Recognized keys: search, status, sort, dir. Unknown keys are ignored.
func parseQuery(args []string) views.Query {
	q := views.Query{}
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "search":
			q.Text = parts[1]
		case "status":
			q.Status = parts[1]
		case "sort":
			q.SortField = parts[1]
		case "dir":
			q.SortDirection = views.Direction(parts[1])
		}
	}
	return q
}

// Launches refreshes the launch collection and prints the projection
// selected by the arguments.
func (a *App) Launches(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	a.store.FetchLaunches(ctx)
	if msg := a.store.Err(); msg != "" {
		fmt.Println(msg)
		return nil
	}

	projected := views.Apply(a.store.Launches(), parseQuery(args))
	printLaunchTable(projected)
	return nil
}

func printLaunchTable(launches []models.Launch) {
	if len(launches) == 0 {
		fmt.Println("No launches match")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FLIGHT\tNAME\tDATE\tSTATUS\tID")
	for _, l := range launches {
		status := "Failed"
		if l.Success {
			status = "Success"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", l.FlightNumber, l.Name, l.DateUTC, status, l.ID)
	}
	_ = w.Flush()
}
