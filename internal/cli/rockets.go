package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// Rockets refreshes and prints the rocket collection.
func (a *App) Rockets(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	a.store.FetchRockets(ctx)
	if msg := a.store.Err(); msg != "" {
		fmt.Println(msg)
		return nil
	}

	rockets := a.store.Rockets()
	if len(rockets) == 0 {
		fmt.Println("No rockets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tHEIGHT (M)\tMASS (KG)\tSUCCESS %\tID")
	for _, r := range rockets {
		fmt.Fprintf(w, "%s\t%.1f\t%.0f\t%.0f\t%s\n", r.Name, r.Height.Meters, r.Mass.Kg, r.SuccessRatePct, r.ID)
	}
	return w.Flush()
}
