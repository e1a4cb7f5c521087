package ticks

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOptimalTickCount(t *testing.T) {
	tests := []struct {
		length float64
		o      Orientation
		want   int
	}{
		{800, Horizontal, 10},
		{400, Horizontal, 5},
		{100, Horizontal, 3},
		{5000, Horizontal, 10},
		{400, Vertical, 10},
		{200, Vertical, 5},
		{0, Horizontal, 3},
		{-50, Vertical, 3},
		{math.NaN(), Horizontal, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v-%s", tt.length, tt.o), func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateOptimalTickCount(tt.length, tt.o))
		})
	}
}

func TestGenerateNiceTicks(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
		want     []float64
	}{
		{"zero to hundred", 0, 100, 5, []float64{0, 20, 40, 60, 80, 100}},
		{"reversed", 100, 0, 5, []float64{0, 20, 40, 60, 80, 100}},
		{"fractions", 0.1, 0.9, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"negative span", -7, 13, 5, []float64{-10, -5, 0, 5, 10, 15}},
		{"equal bounds", 42, 42, 5, []float64{42}},
		{"single desired tick treated as two", 0, 10, 1, []float64{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateNiceTicks(tt.min, tt.max, tt.count))
		})
	}
}

func TestGenerateNiceTicks_NonFinite(t *testing.T) {
	assert.Nil(t, GenerateNiceTicks(math.NaN(), 1, 5))
	assert.Nil(t, GenerateNiceTicks(0, math.Inf(1), 5))
}

func TestGenerateNiceTicks_Properties(t *testing.T) {
	ranges := [][2]float64{
		{0, 1},
		{0, 7},
		{-3.3, 12.7},
		{1234, 98765},
		{0.0012, 0.0197},
		{-1e6, -2},
		{17, 18},
		{-0.5, 0.5},
		{0, 3e-11},
		{1e16, 1e16 + 4},
		{-1e16 - 8, -1e16},
		{1e300, 1.5e300},
	}

	for _, r := range ranges {
		for count := 2; count <= 10; count++ {
			name := fmt.Sprintf("%v..%v/%d", r[0], r[1], count)
			t.Run(name, func(t *testing.T) {
				ticks := GenerateNiceTicks(r[0], r[1], count)
				require.GreaterOrEqual(t, len(ticks), 2)

				assert.LessOrEqual(t, ticks[0], r[0])
				assert.GreaterOrEqual(t, ticks[len(ticks)-1], r[1])

				step := NiceStep(r[0], r[1], count)
				require.Greater(t, step, 0.0)
				for i := 1; i < len(ticks); i++ {
					assert.Greater(t, ticks[i], ticks[i-1])
					assert.InDelta(t, step, ticks[i]-ticks[i-1], step*1e-6)
				}
			})
		}
	}
}

func TestGenerateNiceTicks_TinyStep(t *testing.T) {
	assert.Equal(t, []float64{0, 1e-11, 2e-11, 3e-11}, GenerateNiceTicks(0, 3e-11, 4))
}

func TestGenerateNiceTicks_CoarsensUnrepresentableStep(t *testing.T) {
	// floats near 1e16 are 2 apart, so a step of 1 cannot be placed
	ticks := GenerateNiceTicks(1e16, 1e16+4, 5)
	assert.Equal(t, []float64{1e16, 1e16 + 2, 1e16 + 4}, ticks)
	assert.Equal(t, 2.0, NiceStep(1e16, 1e16+4, 5))
}

func TestGenerateNiceTicks_DesiredIsCapped(t *testing.T) {
	huge := GenerateNiceTicks(0, 1, 50_000_001)
	capped := GenerateNiceTicks(0, 1, MaxDesiredTicks)
	assert.Equal(t, capped, huge)
	assert.LessOrEqual(t, len(huge), 2*MaxDesiredTicks)
	assert.Equal(t, NiceStep(0, 1, MaxDesiredTicks), NiceStep(0, 1, 1<<40))
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		min, max float64
		count    int
		want     float64
	}{
		{0, 100, 5, 20},
		{0, 100, 11, 10},
		{0, 1, 5, 0.2},
		{0, 60, 5, 20},   // 15 normalizes to 1.5, which snaps up to 2
		{0, 260, 5, 50},  // 6.5 snaps to 5
		{0, 280, 5, 100}, // 7 snaps to 10
		{5, 5, 5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NiceStep(tt.min, tt.max, tt.count), 1e-12, "%v..%v/%d", tt.min, tt.max, tt.count)
	}
}

func TestRecommendedTickRotation(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		width  float64
		count  int
		want   int
	}{
		{"short labels", []string{"Jan", "Feb", "Mar"}, 800, 10, 0},
		{"medium labels", []string{"0123456789", "abcdefghij"}, 800, 10, 45},
		{"long labels", []string{"a very long label text"}, 800, 10, 90},
		{"no ticks", []string{"whatever"}, 800, 0, 0},
		{"no labels", nil, 800, 5, 0},
		{"multibyte counted as runes", []string{"日本語"}, 800, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendedTickRotation(tt.labels, tt.width, tt.count))
		})
	}
}

func FuzzGenerateNiceTicks(f *testing.F) {
	f.Add(0.0, 100.0, 5)
	f.Add(-3.5, 2.25, 7)
	f.Add(42.0, 42.0, 3)
	f.Add(1e5, -1e5, 10)

	f.Fuzz(func(t *testing.T, a, b float64, count int) {
		if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a) > 1e6 || math.Abs(b) > 1e6 {
			return
		}
		if a != b && math.Abs(a-b) < 1e-6 {
			return
		}
		count = 2 + ((count%9)+9)%9

		ticks := GenerateNiceTicks(a, b, count)
		require.NotEmpty(t, ticks)
		lo, hi := math.Min(a, b), math.Max(a, b)
		if ticks[0] > lo+1e-9 || ticks[len(ticks)-1] < hi-1e-9 {
			t.Fatalf("ticks %v do not cover [%v, %v]", ticks, lo, hi)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i] <= ticks[i-1] {
				t.Fatalf("ticks not increasing: %v", ticks)
			}
		}
	})
}
