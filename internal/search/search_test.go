package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/alexiusacademia/gorwall/internal/jsce"
	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/alexiusacademia/gorwall/internal/wall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// smallSpace is a coarse slice of the default space that runs quickly.
func smallSpace() Space {
	s := DefaultSpace()
	s.WidthStep = 0.02
	s.MeanWidthMin = 0.30
	s.MeanWidthMax = 0.40
	s.TransitionStep = 0.5
	return s
}

func TestDefaultSpace(t *testing.T) {
	s := DefaultSpace()
	require.NoError(t, s.Validate())
	assert.NotContains(t, s.Diameters, rebar.D13)
	assert.Equal(t, []int{3, 4, 5, 6}, s.UpperCounts)
}

func TestSpaceValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Space)
	}{
		{"no diameters", func(s *Space) { s.Diameters = nil }},
		{"zero diameter", func(s *Space) { s.Diameters = []rebar.Diameter{{}} }},
		{"missing max count", func(s *Space) { s.Diameters = []rebar.Diameter{rebar.D13} }},
		{"zero cover", func(s *Space) { s.Cover = 0 }},
		{"zero width step", func(s *Space) { s.WidthStep = 0 }},
		{"zero transition step", func(s *Space) { s.TransitionStep = 0 }},
		{"empty width range", func(s *Space) { s.MeanWidthMin = 0.8 }},
		{"inverted transition range", func(s *Space) { s.TransitionMax = 0.1 }},
		{"no upper counts", func(s *Space) { s.UpperCounts = nil }},
		{"zero upper count", func(s *Space) { s.UpperCounts = []int{0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSpace()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestGroupsRespectBounds(t *testing.T) {
	s := smallSpace()
	c := jsce.Default()

	groups, candidates := 0, 0
	for g := range s.Groups() {
		groups++
		clear := s.clearance(g.Diameter)
		assert.GreaterOrEqual(t, g.MeanWidth, s.MeanWidthMin-tol)
		assert.Less(t, g.MeanWidth, s.MeanWidthMax)
		assert.Less(t, g.HalfTaper, g.MeanWidth-clear)
		assert.GreaterOrEqual(t, g.TransitionHeight, s.TransitionMin)
		assert.LessOrEqual(t, g.TransitionHeight, s.TransitionMax+tol)

		prev := 0
		for _, d := range g.Candidates {
			candidates++
			assert.Zero(t, d.LowerCount%d.UpperCount, "design %s", d)
			assert.Equal(t, g.UpperCount, d.UpperCount)
			assert.GreaterOrEqual(t, d.LowerCount, max(d.UpperCount, s.MinBarCount))
			assert.LessOrEqual(t, d.LowerCount, s.MaxLowerCount[d.Diameter])
			assert.Greater(t, d.LowerCount, prev, "lower counts must ascend")
			prev = d.LowerCount
			require.NoError(t, d.Validate(c), "design %s", d)
		}
	}
	assert.Equal(t, 5440, groups)
	assert.Equal(t, 11960, candidates)
}

func TestGroupsIncludeTransitionEndpoint(t *testing.T) {
	s := smallSpace()
	s.Diameters = []rebar.Diameter{rebar.D22}
	s.MeanWidthMax = 0.31
	s.UpperCounts = []int{3}

	var heights []float64
	for g := range s.Groups() {
		if g.HalfTaper == 0 {
			heights = append(heights, g.TransitionHeight)
		}
	}
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}, heights)
}

func TestGroupsStopEarly(t *testing.T) {
	n := 0
	for range DefaultSpace().Groups() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestTracker(t *testing.T) {
	base := Candidate{Quantities: wall.Quantities{Steel: 100, Concrete: 1000}}
	tr := NewTracker(base)

	mk := func(steel, concrete float64) Candidate {
		return Candidate{Quantities: wall.Quantities{Steel: steel, Concrete: concrete}}
	}

	// concrete only
	assert.True(t, tr.Observe(mk(120, 900)))
	r := tr.Result()
	assert.Equal(t, 900.0, r.MinConcrete.Quantities.Concrete)
	assert.Equal(t, base, r.MinSteel)
	assert.Equal(t, base, r.Joint)

	// steel only
	assert.True(t, tr.Observe(mk(90, 950)))
	r = tr.Result()
	assert.Equal(t, 90.0, r.MinSteel.Quantities.Steel)
	assert.Equal(t, base, r.Joint)

	// both together
	assert.True(t, tr.Observe(mk(80, 800)))
	r = tr.Result()
	assert.Equal(t, mk(80, 800), r.Joint)
	assert.Equal(t, mk(80, 800), r.MinSteel)
	assert.Equal(t, mk(80, 800), r.MinConcrete)

	// no improvement
	assert.False(t, tr.Observe(mk(80, 800)))
	assert.False(t, tr.Observe(mk(85, 850)))
	assert.Equal(t, base, tr.Result().Baseline)
}

func TestTrackerInvariantsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := NewTracker(Candidate{Quantities: wall.Quantities{Steel: 500, Concrete: 5000}})

	for i := 0; i < 5000; i++ {
		tr.Observe(Candidate{Quantities: wall.Quantities{
			Steel:    rng.Float64() * 600,
			Concrete: rng.Float64() * 6000,
		}})
		r := tr.Result()
		assert.GreaterOrEqual(t, r.Joint.Quantities.Concrete, r.MinConcrete.Quantities.Concrete)
		assert.GreaterOrEqual(t, r.Joint.Quantities.Steel, r.MinSteel.Quantities.Steel)
	}
}

func TestSearchSmallSpace(t *testing.T) {
	model := wall.NewModel(jsce.Default())

	res, err := Search(context.Background(), model, smallSpace(), wall.Baseline())
	require.NoError(t, err)

	assert.Equal(t, 5440, res.Stats.Groups)
	assert.Equal(t, 11681, res.Stats.Evaluated)
	assert.Equal(t, 1683, res.Stats.Feasible)
	assert.Zero(t, res.Stats.Rejected)

	base := wall.Baseline()
	assert.Equal(t, base, res.Baseline.Design)
	assert.Equal(t, base, res.Joint.Design)
	assert.InDelta(t, 9729.6, res.Baseline.Quantities.Steel, tol)

	mc := res.MinConcrete.Design
	assert.Equal(t, rebar.D16, mc.Diameter)
	assert.InDelta(t, 0.36, mc.LowerWidth, tol)
	assert.InDelta(t, 0.24, mc.UpperWidth, tol)
	assert.InDelta(t, 4.0, mc.TransitionHeight, tol)
	assert.Equal(t, 15, mc.LowerCount)
	assert.Equal(t, 5, mc.UpperCount)
	assert.InDelta(t, 14693.1, res.MinConcrete.Quantities.Steel, 1e-6)
	assert.InDelta(t, 1335306.9, res.MinConcrete.Quantities.Concrete, 1e-6)

	ms := res.MinSteel.Design
	assert.Equal(t, rebar.D16, ms.Diameter)
	assert.InDelta(t, 0.60, ms.LowerWidth, tol)
	assert.InDelta(t, 0.12, ms.UpperWidth, tol)
	assert.InDelta(t, 2.5, ms.TransitionHeight, tol)
	assert.Equal(t, 8, ms.LowerCount)
	assert.Equal(t, 4, ms.UpperCount)
	assert.InDelta(t, 7841.4, res.MinSteel.Quantities.Steel, 1e-6)

	for _, row := range res.Rows() {
		d := row.Design
		assert.Zero(t, d.LowerCount%d.UpperCount, row.Label)
		ok, err := model.Feasible(d)
		require.NoError(t, err)
		assert.True(t, ok, row.Label)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	model := wall.NewModel(jsce.Default())
	s := smallSpace()
	s.Diameters = []rebar.Diameter{rebar.D19}
	s.MeanWidthMax = 0.36
	s.TransitionMin = 1.0
	s.TransitionMax = 3.0
	s.UpperCounts = []int{3, 4}

	first, err := Search(context.Background(), model, s, wall.Baseline())
	require.NoError(t, err)
	second, err := Search(context.Background(), model, s, wall.Baseline())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 300, first.Stats.Groups)
	assert.Equal(t, 750, first.Stats.Evaluated)
	assert.Equal(t, 46, first.Stats.Feasible)

	mc := first.MinConcrete.Design
	assert.InDelta(t, 0.40, mc.LowerWidth, tol)
	assert.InDelta(t, 0.20, mc.UpperWidth, tol)
	assert.InDelta(t, 3.0, mc.TransitionHeight, tol)
	assert.Equal(t, 9, mc.LowerCount)
	assert.Equal(t, 3, mc.UpperCount)
}

// The first sufficient lower count closes its group.
func TestSearchStopsAtFirstFeasibleCount(t *testing.T) {
	model := wall.NewModel(jsce.Default())
	s := DefaultSpace()
	s.Diameters = []rebar.Diameter{rebar.D16}
	s.WidthStep = 0.05
	s.MeanWidthMin = 0.40
	s.MeanWidthMax = 0.41
	s.TransitionMin = 3
	s.TransitionMax = 3
	s.UpperCounts = []int{3}

	var groups []Group
	for g := range s.Groups() {
		groups = append(groups, g)
	}
	require.NotEmpty(t, groups)

	want, total, feasible := 0, 0, 0
	for _, g := range groups {
		total += len(g.Candidates)
		for _, d := range g.Candidates {
			want++
			ok, err := model.Feasible(d)
			require.NoError(t, err)
			if ok {
				feasible++
				break
			}
		}
	}
	require.Len(t, groups, 6)
	assert.Equal(t, 6, feasible)
	assert.Equal(t, 22, want)
	assert.Equal(t, 30, total)

	res, err := Search(context.Background(), model, s, wall.Baseline())
	require.NoError(t, err)
	assert.Equal(t, len(groups), res.Stats.Groups)
	assert.Equal(t, want, res.Stats.Evaluated)
	assert.Equal(t, feasible, res.Stats.Feasible)
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Search(ctx, wall.NewModel(jsce.Default()), DefaultSpace(), wall.Baseline())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, wall.Baseline(), res.MinSteel.Design)
	assert.Zero(t, res.Stats.Evaluated)
}

func TestSearchRejectsBadInput(t *testing.T) {
	model := wall.NewModel(jsce.Default())

	bad := DefaultSpace()
	bad.WidthStep = 0
	_, err := Search(context.Background(), model, bad, wall.Baseline())
	assert.ErrorContains(t, err, "invalid search space")

	base := wall.Baseline()
	base.LowerCount = 6
	_, err = Search(context.Background(), model, DefaultSpace(), base)
	assert.ErrorIs(t, err, wall.ErrInvalidDesign)
}
