package search

import (
	"fmt"
	"iter"
	"math"

	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

// Space bounds the discrete design space. Widths and heights are in metres,
// cover in millimetres.
type Space struct {
	Diameters []rebar.Diameter
	Cover     float64

	// Mean stem width bm and half taper bs share one grid.
	WidthStep    float64
	MeanWidthMin float64 // 0 means the clearance bound alone
	MeanWidthMax float64 // exclusive

	TransitionMin  float64
	TransitionMax  float64 // inclusive
	TransitionStep float64

	UpperCounts   []int
	MinBarCount   int
	MaxLowerCount map[rebar.Diameter]int
}

// DefaultSpace returns the full space on a 1 cm grid. D13 is too small
// for main bars and is left out.
func DefaultSpace() Space {
	return Space{
		Diameters:      []rebar.Diameter{rebar.D16, rebar.D19, rebar.D22},
		Cover:          52,
		WidthStep:      0.01,
		MeanWidthMax:   0.7,
		TransitionMin:  0.5,
		TransitionMax:  4.0,
		TransitionStep: 0.01,
		UpperCounts:    []int{3, 4, 5, 6},
		MinBarCount:    wall.MinBarCount,
		// bar spacing and the distribution steel cap the count per diameter
		MaxLowerCount: map[rebar.Diameter]int{
			rebar.D16: 15,
			rebar.D19: 10,
			rebar.D22: 7,
		},
	}
}

// Validate checks that the space can be enumerated.
func (s Space) Validate() error {
	if len(s.Diameters) == 0 {
		return fmt.Errorf("search space has no diameters")
	}
	for _, d := range s.Diameters {
		if !d.Valid() {
			_, err := d.Area()
			return err
		}
		if _, ok := s.MaxLowerCount[d]; !ok {
			return fmt.Errorf("no maximum bar count for %s", d)
		}
	}
	if !(s.Cover > 0) {
		return fmt.Errorf("cover must be positive, got %v", s.Cover)
	}
	if !(s.WidthStep > 0) || !(s.TransitionStep > 0) {
		return fmt.Errorf("steps must be positive (width %v, transition %v)", s.WidthStep, s.TransitionStep)
	}
	if s.MeanWidthMin < 0 || s.MeanWidthMax <= s.MeanWidthMin {
		return fmt.Errorf("invalid mean width range [%v, %v)", s.MeanWidthMin, s.MeanWidthMax)
	}
	if s.TransitionMax < s.TransitionMin {
		return fmt.Errorf("invalid transition range [%v, %v]", s.TransitionMin, s.TransitionMax)
	}
	if len(s.UpperCounts) == 0 {
		return fmt.Errorf("search space has no upper bar counts")
	}
	for _, n := range s.UpperCounts {
		if n < 1 {
			return fmt.Errorf("upper bar count must be positive, got %d", n)
		}
	}
	return nil
}

// Group is one (φ, bm, bs, hs, n) combination with its lower-count
// candidates in ascending order. Only multiples of n are included.
type Group struct {
	Diameter         rebar.Diameter
	MeanWidth        float64 // bm
	HalfTaper        float64 // bs
	TransitionHeight float64 // hs
	UpperCount       int     // n

	Candidates []wall.Design
}

// clearance is the thinnest stem that fits cover, bar and cover (m).
func (s Space) clearance(phi rebar.Diameter) float64 {
	return (2*s.Cover + phi.MM()) / 1000
}

func (s Space) firstWidthIndex(phi rebar.Diameter) int {
	i := int(math.Ceil((2*s.Cover + phi.MM()) / (s.WidthStep * 1000)))
	if s.MeanWidthMin > 0 {
		i = max(i, int(math.Ceil(s.MeanWidthMin/s.WidthStep-1e-9)))
	}
	return i
}

// Groups enumerates the space lazily in a fixed order: diameter, mean
// width, half taper, transition height, upper count.
func (s Space) Groups() iter.Seq[Group] {
	return func(yield func(Group) bool) {
		for _, phi := range s.Diameters {
			clear := s.clearance(phi)
			maxLower := s.MaxLowerCount[phi]

			for i := s.firstWidthIndex(phi); float64(i)*s.WidthStep < s.MeanWidthMax; i++ {
				bm := float64(i) * s.WidthStep

				for k := 0; float64(k)*s.WidthStep < bm-clear; k++ {
					bs := float64(k) * s.WidthStep

					for h := 0; ; h++ {
						hs := s.TransitionMin + float64(h)*s.TransitionStep
						if hs > s.TransitionMax+1e-9 {
							break
						}

						for _, n := range s.UpperCounts {
							g := Group{
								Diameter:         phi,
								MeanWidth:        bm,
								HalfTaper:        bs,
								TransitionHeight: hs,
								UpperCount:       n,
							}
							for m := max(n, s.MinBarCount); m <= maxLower; m++ {
								if m%n != 0 {
									continue
								}
								g.Candidates = append(g.Candidates, wall.Design{
									LowerWidth:       bm + bs,
									UpperWidth:       bm - bs,
									Cover:            s.Cover,
									Diameter:         phi,
									TransitionHeight: hs,
									LowerCount:       m,
									UpperCount:       n,
								})
							}
							if !yield(g) {
								return
							}
						}
					}
				}
			}
		}
	}
}
