package service

import (
	"math"
	"sort"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
)

// LevelPolicy controls the support/resistance scan: the extremum window, the
// magnitude-dependent merge gaps, and the display rounding grid. The gap and
// grid share the same price breakpoint but are independent knobs.
type LevelPolicy struct {
	Window          int
	MergeGapNear    float64
	MergeGapFar     float64
	PriceBreakpoint float64
	RoundStep       float64
}

func DefaultLevelPolicy() LevelPolicy {
	return LevelPolicy{
		Window:          10,
		MergeGapNear:    1,
		MergeGapFar:     2,
		PriceBreakpoint: 100,
		RoundStep:       5,
	}
}

func NewLevelPolicy(cfg config.Analysis) LevelPolicy {
	policy := DefaultLevelPolicy()
	if cfg.Window > 0 {
		policy.Window = cfg.Window
	}
	if cfg.MergeGapNear > 0 {
		policy.MergeGapNear = cfg.MergeGapNear
	}
	if cfg.MergeGapFar > 0 {
		policy.MergeGapFar = cfg.MergeGapFar
	}
	if cfg.PriceBreakpoint > 0 {
		policy.PriceBreakpoint = cfg.PriceBreakpoint
	}
	if cfg.RoundStep > 0 {
		policy.RoundStep = cfg.RoundStep
	}
	return policy
}

// Round snaps a price to its display grid: nearest whole below the
// breakpoint, nearest RoundStep multiple at or above it.
func (p LevelPolicy) Round(price float64) float64 {
	if price < p.PriceBreakpoint {
		return math.Round(price)
	}
	return math.Round(price/p.RoundStep) * p.RoundStep
}

func (p LevelPolicy) requiredGap(lastAccepted float64) float64 {
	if lastAccepted < p.PriceBreakpoint {
		return p.MergeGapNear
	}
	return p.MergeGapFar
}

// DetectLevels scans a daily close series for support and resistance levels.
// A close equal to the min (max) of its symmetric window is a raw support
// (resistance) candidate; candidates are deduplicated, greedily merged by the
// policy gap, and rounded to the display grid. Series shorter than
// 2*Window+1 bars yield an empty pair.
func DetectLevels(bars []dto.PriceBar, policy LevelPolicy) (supports, resistances []float64) {
	w := policy.Window
	if w <= 0 || len(bars) < 2*w+1 {
		return nil, nil
	}

	var rawSupports, rawResistances []float64
	for i := w; i < len(bars)-w; i++ {
		lo, hi := windowMinMax(bars, i-w, i+w)
		price := bars[i].Close
		if approxEqual(price, lo) {
			rawSupports = append(rawSupports, price)
		}
		if approxEqual(price, hi) {
			rawResistances = append(rawResistances, price)
		}
	}

	supports = policy.roundLevels(policy.mergeLevels(uniqueSorted(rawSupports)))
	resistances = policy.roundLevels(policy.mergeLevels(uniqueSorted(rawResistances)))
	return supports, resistances
}

func windowMinMax(bars []dto.PriceBar, from, to int) (float64, float64) {
	lo, hi := bars[from].Close, bars[from].Close
	for i := from + 1; i <= to; i++ {
		if bars[i].Close < lo {
			lo = bars[i].Close
		}
		if bars[i].Close > hi {
			hi = bars[i].Close
		}
	}
	return lo, hi
}

// approxEqual mirrors a relative-plus-absolute float tolerance so a close
// that is the window extremum up to noise still counts.
func approxEqual(a, b float64) bool {
	const (
		rtol = 1e-5
		atol = 1e-8
	)
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

func uniqueSorted(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[float64]struct{}, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// mergeLevels is a single left-to-right greedy fold: a candidate is accepted
// only if it sits at least the required gap away from the last accepted
// level, and the gap itself depends on that last accepted value. The result
// is order-dependent on purpose; do not replace with a set operation.
func (p LevelPolicy) mergeLevels(levels []float64) []float64 {
	if len(levels) == 0 {
		return nil
	}

	lastAccepted := levels[0]
	accepted := []float64{lastAccepted}
	for _, level := range levels[1:] {
		if math.Abs(level-lastAccepted) >= p.requiredGap(lastAccepted) {
			accepted = append(accepted, level)
			lastAccepted = level
		}
	}
	return accepted
}

// roundLevels applies display rounding and drops duplicates in first-seen
// order; rounding can collapse two accepted levels onto one grid value.
func (p LevelPolicy) roundLevels(levels []float64) []float64 {
	if len(levels) == 0 {
		return nil
	}

	seen := make(map[float64]struct{}, len(levels))
	out := make([]float64, 0, len(levels))
	for _, level := range levels {
		rounded := p.Round(level)
		if _, ok := seen[rounded]; ok {
			continue
		}
		seen[rounded] = struct{}{}
		out = append(out, rounded)
	}
	return out
}
