package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

// Search enumerates the space and returns the minimal feasible designs.
//
// Within a group the lower bar counts are tried in ascending order and the
// first feasible one ends the group; larger counts are never evaluated.
// Invalid candidates and candidates whose checks do not compute are
// counted as rejected and the enumeration continues.
//
// On cancellation the partial result is returned together with ctx.Err().
// Progress is logged to the zerolog logger carried by ctx, if any.
func Search(ctx context.Context, model wall.Model, space Space, baseline wall.Design) (*Result, error) {
	if err := space.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search space: %w", err)
	}
	if err := baseline.Validate(model.C); err != nil {
		return nil, fmt.Errorf("invalid baseline: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	tracker := NewTracker(Candidate{Design: baseline, Quantities: model.Quantities(baseline)})
	var stats Stats

	start := time.Now()
	current := rebar.Diameter{}

	for g := range space.Groups() {
		if err := ctx.Err(); err != nil {
			res := tracker.Result()
			res.Stats = stats
			return &res, err
		}

		if g.Diameter != current {
			current = g.Diameter
			logger.Info().
				Str("diameter", current.String()).
				Int("feasible_so_far", stats.Feasible).
				Msg("Searching diameter")
		}
		stats.Groups++

		for _, d := range g.Candidates {
			stats.Evaluated++
			ok, err := model.Feasible(d)
			if err != nil {
				stats.Rejected++
				logger.Trace().Err(err).Stringer("design", d).Msg("Candidate rejected")
				continue
			}
			if !ok {
				continue
			}

			stats.Feasible++
			c := Candidate{Design: d, Quantities: model.Quantities(d)}
			if tracker.Observe(c) {
				stats.Improvements++
				logger.Debug().
					Stringer("design", d).
					Float64("steel", c.Quantities.Steel).
					Float64("concrete", c.Quantities.Concrete).
					Msg("New minimum")
			}
			break
		}
	}

	res := tracker.Result()
	res.Stats = stats

	logger.Info().
		Int("groups", stats.Groups).
		Int("evaluated", stats.Evaluated).
		Int("feasible", stats.Feasible).
		Int("rejected", stats.Rejected).
		Dur("elapsed", time.Since(start)).
		Msg("Search finished")

	return &res, nil
}
