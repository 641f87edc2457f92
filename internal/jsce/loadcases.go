package jsce

import (
	"fmt"
	"strings"
)

// LoadCase identifies a design situation for the stem.
type LoadCase int

const (
	// Permanent covers static earth pressure and surcharge.
	Permanent LoadCase = iota
	// Seismic adds the seismic active pressure and wall inertia.
	Seismic
)

// LoadCases lists every case checked by the safety evaluation.
var LoadCases = []LoadCase{Permanent, Seismic}

func (lc LoadCase) String() string {
	switch lc {
	case Permanent:
		return "permanent"
	case Seismic:
		return "seismic"
	}
	return fmt.Sprintf("LoadCase(%d)", int(lc))
}

// ParseLoadCase maps a case name to its LoadCase.
func ParseLoadCase(s string) (LoadCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permanent", "static":
		return Permanent, nil
	case "seismic", "earthquake":
		return Seismic, nil
	}
	return 0, fmt.Errorf("unknown load case %q", s)
}

// ImportanceFactor returns the multiplier applied to the demand of a case
// when forming safety ratios. The seismic case carries it in its own
// coefficients.
func (c Constants) ImportanceFactor(lc LoadCase) float64 {
	if lc == Permanent {
		return c.GammaI
	}
	return 1
}
