package search

import (
	"github.com/alexiusacademia/gorwall/internal/wall"
)

// Candidate pairs a design with its material quantities.
type Candidate struct {
	Design     wall.Design
	Quantities wall.Quantities
}

// Stats counts the work done by a search.
type Stats struct {
	Groups       int // (φ, bm, bs, hs, n) combinations visited
	Evaluated    int // candidate designs checked
	Feasible     int // designs that passed every check point
	Rejected     int // designs that were invalid or failed to compute
	Improvements int // updates of any minimum
}

// Result holds the tracked designs of a search.
type Result struct {
	Baseline    Candidate // the starting design
	Joint       Candidate // improved steel and concrete together
	MinConcrete Candidate
	MinSteel    Candidate

	Stats Stats
}

// Labeled is a result row with its display name.
type Labeled struct {
	Label string
	Candidate
}

// Rows returns the tracked designs in report order.
func (r *Result) Rows() []Labeled {
	return []Labeled{
		{"default", r.Baseline},
		{"minVc", r.MinConcrete},
		{"minVs", r.MinSteel},
		{"min", r.Joint},
	}
}

// Tracker keeps the running minima. Only feasible designs may be observed.
type Tracker struct {
	result      Result
	minSteel    float64
	minConcrete float64
}

// NewTracker starts every slot, and both minima, at the baseline.
func NewTracker(baseline Candidate) *Tracker {
	return &Tracker{
		result: Result{
			Baseline:    baseline,
			Joint:       baseline,
			MinConcrete: baseline,
			MinSteel:    baseline,
		},
		minSteel:    baseline.Quantities.Steel,
		minConcrete: baseline.Quantities.Concrete,
	}
}

// Observe offers a feasible candidate and reports whether any slot changed.
// The joint slot only moves when concrete and steel improve together.
func (t *Tracker) Observe(c Candidate) bool {
	q := c.Quantities
	switch {
	case q.Concrete < t.minConcrete:
		t.minConcrete = q.Concrete
		t.result.MinConcrete = c
		if q.Steel < t.minSteel {
			t.minSteel = q.Steel
			t.result.MinSteel = c
			t.result.Joint = c
		}
	case q.Steel < t.minSteel:
		t.minSteel = q.Steel
		t.result.MinSteel = c
	default:
		return false
	}
	return true
}

// Result returns a copy of the current slots.
func (t *Tracker) Result() Result {
	return t.result
}
