package wall

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorwall/internal/jsce"
	"github.com/alexiusacademia/gorwall/internal/rebar"
)

// Design is one stem configuration. Widths and heights are in metres,
// cover in millimetres.
type Design struct {
	LowerWidth       float64        // b2 - thickness at the base (m)
	UpperWidth       float64        // b4 - thickness at the top (m)
	Cover            float64        // c - cover to bar surface (mm)
	Diameter         rebar.Diameter // φ - main bar
	TransitionHeight float64        // hs - where the bar count changes (m)
	LowerCount       int            // m - bars per unit width below the transition
	UpperCount       int            // n - bars per unit width above the transition
}

// MinBarCount is the fewest main bars allowed per unit width.
const MinBarCount = 3

// Baseline returns the reference design the search starts from.
func Baseline() Design {
	return Design{
		LowerWidth:       0.45,
		UpperWidth:       0.30,
		Cover:            52,
		Diameter:         rebar.D19,
		TransitionHeight: 2,
		LowerCount:       8,
		UpperCount:       4,
	}
}

// NewDesign builds a Design and validates it against the code constants.
func NewDesign(c jsce.Constants, b2, b4, cover float64, phi rebar.Diameter, hs float64, m, n int) (Design, error) {
	d := Design{
		LowerWidth:       b2,
		UpperWidth:       b4,
		Cover:            cover,
		Diameter:         phi,
		TransitionHeight: hs,
		LowerCount:       m,
		UpperCount:       n,
	}
	if err := d.Validate(c); err != nil {
		return Design{}, err
	}
	return d, nil
}

// Validate checks the geometry and reinforcement invariants.
func (d Design) Validate(c jsce.Constants) error {
	if !d.Diameter.Valid() {
		_, err := d.Diameter.Area()
		return &InvalidDesignError{Field: "diameter", Reason: "not a catalog bar", Err: err}
	}
	if !(d.UpperWidth > 0) || math.IsInf(d.UpperWidth, 0) {
		return &InvalidDesignError{Field: "upper width", Reason: fmt.Sprintf("must be positive and finite, got %.3f m", d.UpperWidth)}
	}
	if math.IsInf(d.LowerWidth, 0) {
		return &InvalidDesignError{Field: "lower width", Reason: fmt.Sprintf("must be finite, got %.3f m", d.LowerWidth)}
	}
	if !(d.LowerWidth >= d.UpperWidth) {
		return &InvalidDesignError{Field: "lower width", Reason: fmt.Sprintf("%.3f m is less than upper width %.3f m", d.LowerWidth, d.UpperWidth)}
	}
	if !(d.Cover > 0) || math.IsInf(d.Cover, 0) {
		return &InvalidDesignError{Field: "cover", Reason: fmt.Sprintf("must be positive and finite, got %.1f mm", d.Cover)}
	}
	if d.UpperWidth*1000 <= 2*d.Cover+d.Diameter.MM() {
		return &InvalidDesignError{Field: "upper width", Reason: fmt.Sprintf("%.3f m leaves no room for cover %.0f mm and bar %.1f mm", d.UpperWidth, d.Cover, d.Diameter.MM())}
	}
	if !(d.TransitionHeight >= 0 && d.TransitionHeight <= c.Height) {
		return &InvalidDesignError{Field: "transition height", Reason: fmt.Sprintf("%.3f m is outside [0, %.3f]", d.TransitionHeight, c.Height)}
	}
	if d.UpperCount < MinBarCount {
		return &InvalidDesignError{Field: "upper count", Reason: fmt.Sprintf("must be at least %d, got %d", MinBarCount, d.UpperCount)}
	}
	if d.LowerCount < d.UpperCount {
		return &InvalidDesignError{Field: "lower count", Reason: fmt.Sprintf("%d is less than upper count %d", d.LowerCount, d.UpperCount)}
	}
	if d.LowerCount%d.UpperCount != 0 {
		return &InvalidDesignError{Field: "lower count", Reason: fmt.Sprintf("%d is not a multiple of upper count %d", d.LowerCount, d.UpperCount)}
	}
	return nil
}

func (d Design) String() string {
	return fmt.Sprintf("b2=%.2f b4=%.2f c=%.0f φ=%.1f hs=%.2f m=%d n=%d",
		d.LowerWidth, d.UpperWidth, d.Cover, d.Diameter.MM(), d.TransitionHeight, d.LowerCount, d.UpperCount)
}

var (
	// ErrInvalidDesign marks a design that violates a geometry or count invariant.
	ErrInvalidDesign = errors.New("invalid design")
	// ErrNonFinite marks a computation that produced NaN or ±Inf.
	ErrNonFinite = errors.New("non-finite result")
)

// InvalidDesignError describes the first violated invariant of a design.
type InvalidDesignError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidDesignError) Error() string {
	return fmt.Sprintf("invalid design: %s: %s", e.Field, e.Reason)
}

func (e *InvalidDesignError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidDesign, e.Err}
	}
	return []error{ErrInvalidDesign}
}

// ComputationError reports a non-finite quantity at a position.
type ComputationError struct {
	Quantity string
	Position float64
	Value    float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s is %v at x=%.3f m", e.Quantity, e.Value, e.Position)
}

func (e *ComputationError) Unwrap() error {
	return ErrNonFinite
}
