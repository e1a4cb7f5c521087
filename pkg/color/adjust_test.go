package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		factor float64
		want   string
	}{
		{"lighten half", "#808080", 0.5, "#C0C0C0"},
		{"darken half", "#808080", -0.5, "#404040"},
		{"no change", "#2563eb", 0, "#2563EB"},
		{"full lighten", "#123456", 1, "#FFFFFF"},
		{"full darken", "#123456", -1, "#000000"},
		{"factor clamped high", "#123456", 3, "#FFFFFF"},
		{"factor clamped low", "#123456", -7, "#000000"},
		{"white stays white", "#FFFFFF", 0.4, "#FFFFFF"},
		{"black stays black", "#000000", -0.4, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustBrightness(tt.input, tt.factor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AdjustBrightness("#12345", 0.1)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestAutoAdjustContrast_AlreadyCompliant(t *testing.T) {
	got, err := AutoAdjustContrast("#000000", "#FFFFFF", 4.5)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)

	got, err = AutoAdjustContrast("#2563eb", "#ffffff", 4.5)
	require.NoError(t, err)
	assert.Equal(t, "#2563EB", got)
}

func TestAutoAdjustContrast_Darkens(t *testing.T) {
	got, err := AutoAdjustContrast("#CCCCCC", "#FFFFFF", 4.5)
	require.NoError(t, err)

	ratio, err := ContrastRatio(got, "#FFFFFF")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ratio, 4.5)

	lumIn, _ := RelativeLuminance("#CCCCCC")
	lumOut, _ := RelativeLuminance(got)
	assert.Less(t, lumOut, lumIn)
	assert.NotEqual(t, Black, got, "a 5%% step should succeed before reaching black")
}

func TestAutoAdjustContrast_LightensWhenDarkeningCannotWork(t *testing.T) {
	got, err := AutoAdjustContrast("#333333", "#000000", 4.5)
	require.NoError(t, err)

	ratio, err := ContrastRatio(got, "#000000")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ratio, 4.5)

	lumIn, _ := RelativeLuminance("#333333")
	lumOut, _ := RelativeLuminance(got)
	assert.Greater(t, lumOut, lumIn)
}

func TestAutoAdjustContrast_Fallback(t *testing.T) {
	// 22:1 is unreachable, so the state machine must fall through.
	got, err := AutoAdjustContrast("#808080", "#FFFFFF", 22)
	require.NoError(t, err)
	assert.Equal(t, Black, got)

	got, err = AutoAdjustContrast("#808080", "#000000", 22)
	require.NoError(t, err)
	assert.Equal(t, White, got)
}

func TestAutoAdjustContrast_DefaultTarget(t *testing.T) {
	got, err := AutoAdjustContrast("#CCCCCC", "#FFFFFF", 0)
	require.NoError(t, err)
	ratio, _ := ContrastRatio(got, "#FFFFFF")
	assert.GreaterOrEqual(t, ratio, DefaultContrastTarget)
}

func TestAutoAdjustContrast_InvalidInput(t *testing.T) {
	_, err := AutoAdjustContrast("#CCC", "#FFFFFF", 4.5)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	_, err = AutoAdjustContrast("#CCCCCC", "white", 4.5)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestGenerateDarkModeVariant(t *testing.T) {
	for _, c := range CategoricalPool() {
		t.Run(c, func(t *testing.T) {
			v, err := GenerateDarkModeVariant(c)
			require.NoError(t, err)

			ok, err := MeetsWCAGAA(v, DarkBackground, false)
			require.NoError(t, err)
			assert.True(t, ok, "%s -> %s is not AA on the dark background", c, v)
		})
	}
}

func TestGenerateDarkModePalette(t *testing.T) {
	in := []string{"#2563EB", "#DC2626", "#000000"}
	out, err := GenerateDarkModePalette(in)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		single, err := GenerateDarkModeVariant(in[i])
		require.NoError(t, err)
		assert.Equal(t, single, out[i])
	}

	empty, err := GenerateDarkModePalette(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = GenerateDarkModePalette([]string{"#2563EB", "bad"})
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}
