package cratesindex

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dimension-labs/cargo-dimension/internal/dependency"
)

// maxInFlight bounds concurrent index requests.
const maxInFlight = 4

// Drift compares a registered version with the latest published one.
type Drift struct {
	Name       string
	Registered string
	Latest     string
}

// Current reports whether the registered version is the latest one.
func (d Drift) Current() bool {
	return d.Registered == d.Latest
}

// DriftError lists the crates whose registered version is not the latest.
type DriftError struct {
	Stale []Drift
}

func (e *DriftError) Error() string {
	parts := make([]string, len(e.Stale))
	for i, d := range e.Stale {
		parts[i] = fmt.Sprintf("%s %s (latest %s)", d.Name, d.Registered, d.Latest)
	}
	return "registered versions are out of date: " + strings.Join(parts, ", ")
}

// CheckAll looks up every descriptor concurrently. Results are in input
// order. The first lookup failure cancels the remaining requests and is
// returned; drift is not an error here, see Stale.
func (c *Client) CheckAll(ctx context.Context, deps []dependency.Descriptor) ([]Drift, error) {
	results := make([]Drift, len(deps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for i, d := range deps {
		g.Go(func() error {
			latest, err := c.Latest(gctx, d.Name)
			if err != nil {
				return err
			}
			results[i] = Drift{Name: d.Name, Registered: d.Version, Latest: latest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Stale returns a *DriftError if any result is not current, else nil.
func Stale(results []Drift) error {
	var stale []Drift
	for _, d := range results {
		if !d.Current() {
			stale = append(stale, d)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return &DriftError{Stale: stale}
}
