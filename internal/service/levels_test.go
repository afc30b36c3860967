package service

import (
	"testing"
	"time"

	"tradier-trading/internal/dto"

	"github.com/stretchr/testify/assert"
)

func barsFromCloses(closes []float64) []dto.PriceBar {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]dto.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = dto.PriceBar{Date: start.AddDate(0, 0, i), Close: c}
	}
	return bars
}

func TestLevelPolicy_Round(t *testing.T) {
	policy := DefaultLevelPolicy()

	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{name: "below breakpoint rounds to nearest whole", price: 47.6, want: 48},
		{name: "just below breakpoint stays whole", price: 99.4, want: 99},
		{name: "at breakpoint snaps down to grid", price: 101, want: 100},
		{name: "above breakpoint snaps up to grid", price: 102.6, want: 105},
		{name: "midway above breakpoint snaps down", price: 117, want: 115},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Round(tt.price))
		})
	}
}

func TestDetectLevels_InsufficientSeries(t *testing.T) {
	policy := DefaultLevelPolicy()

	tests := []struct {
		name string
		bars []dto.PriceBar
	}{
		{name: "empty series", bars: nil},
		{name: "single bar", bars: barsFromCloses([]float64{100})},
		{name: "one bar short of 2w+1", bars: barsFromCloses(make([]float64, 20))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supports, resistances := DetectLevels(tt.bars, policy)
			assert.Empty(t, supports)
			assert.Empty(t, resistances)
		})
	}
}

func TestDetectLevels_OscillatingSeries(t *testing.T) {
	// 30 closes between 95 and 105 with a unique maximum of 104.8 at index 10
	// and a unique minimum of 95.2 at index 15.
	closes := []float64{
		99.5, 100.2, 101.3, 102.1, 103.0, 103.6, 102.4, 101.8, 102.9, 103.9,
		104.8, 103.7, 102.2, 100.9, 98.4, 95.2, 96.1, 97.3, 98.8, 99.6,
		100.4, 101.1, 100.2, 99.3, 98.6, 99.1, 100.0, 100.8, 101.5, 102.0,
	}

	supports, resistances := DetectLevels(barsFromCloses(closes), DefaultLevelPolicy())

	assert.Equal(t, []float64{95}, supports)
	assert.Equal(t, []float64{105}, resistances)
}

func TestDetectLevels_FlatWindowIsBothKinds(t *testing.T) {
	closes := make([]float64, 21)
	for i := range closes {
		closes[i] = 100
	}

	supports, resistances := DetectLevels(barsFromCloses(closes), DefaultLevelPolicy())

	assert.Equal(t, []float64{100}, supports)
	assert.Equal(t, []float64{100}, resistances)
}

func TestMergeLevels_AdaptiveGap(t *testing.T) {
	policy := DefaultLevelPolicy()

	tests := []struct {
		name   string
		levels []float64
		want   []float64
	}{
		{
			name:   "gap of one below the breakpoint",
			levels: []float64{90, 90.5, 91.2, 95},
			want:   []float64{90, 91.2, 95},
		},
		{
			name: "gap widens to two once the last accepted crosses the breakpoint",
			// 100.5 is accepted with the near gap because the last accepted
			// level is still 99; 102 is then rejected under the far gap.
			levels: []float64{99, 100.5, 102, 104.1},
			want:   []float64{99, 100.5, 104.1},
		},
		{
			name:   "single candidate passes through",
			levels: []float64{120},
			want:   []float64{120},
		},
		{
			name:   "empty input",
			levels: nil,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.mergeLevels(tt.levels))
		})
	}
}

func TestRoundLevels_CollapseDeduplicates(t *testing.T) {
	policy := DefaultLevelPolicy()

	// 102.6 and 106 survive the merge (gap 3.4 >= 2) but both round to 105,
	// so only the first-seen value remains.
	assert.Equal(t, []float64{105}, policy.roundLevels([]float64{102.6, 106}))
}

func TestDetectLevels_ConsecutiveOutputsRespectGrid(t *testing.T) {
	policy := DefaultLevelPolicy()

	closes := []float64{
		92.1, 93.4, 94.8, 96.0, 97.5, 98.2, 97.1, 96.3, 95.5, 94.2,
		91.3, 92.7, 93.9, 95.1, 96.4, 97.8, 99.0, 100.3, 101.6, 102.8,
		104.0, 103.1, 102.0, 100.9, 99.8, 98.7, 97.6, 96.5, 95.4, 94.3,
		93.2, 92.4, 91.8, 92.9, 94.1, 95.3, 96.6, 97.9, 99.2, 100.5,
	}

	supports, resistances := DetectLevels(barsFromCloses(closes), policy)

	for _, levels := range [][]float64{supports, resistances} {
		for i := 1; i < len(levels); i++ {
			grid := policy.MergeGapNear
			if levels[i-1] >= policy.PriceBreakpoint {
				grid = policy.MergeGapFar
			}
			assert.GreaterOrEqual(t, levels[i]-levels[i-1], grid,
				"rounded outputs must stay at least one grid apart")
		}
	}
}
