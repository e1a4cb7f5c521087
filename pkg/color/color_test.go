package color

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	c, err := HexToRGB("#ff8800")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 136, B: 0}, c)
	assert.Equal(t, "#FF8800", RGBToHex(c))
}

func TestHexToRGB_Invalid(t *testing.T) {
	tests := []string{
		"",
		"FF8800",
		"#FF880",
		"#FF88001",
		"##FF8800",
		"#GG8800",
		"#FFF",
		" #FF8800",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := HexToRGB(input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#abcdef", "#1F2937", "#e5e7eb"} {
		c, err := HexToRGB(hex)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(hex), RGBToHex(c))
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("#abcdef")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", got)

	_, err = Normalize("abcdef")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	assert.False(t, IsValidHex("abcdef"))
	assert.True(t, IsValidHex("#abcdef"))
}

func TestContrastRatio(t *testing.T) {
	ratio, err := ContrastRatio(Black, White)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	same, err := ContrastRatio("#3B82F6", "#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, 1.0, same)

	_, err = ContrastRatio("#000", White)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	_, err = ContrastRatio(White, "nope")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestContrastRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"#2563EB", "#FFFFFF"},
		{"#DC2626", "#1F2937"},
		{"#E5E7EB", "#000000"},
		{"#123456", "#654321"},
	}
	for _, p := range pairs {
		ab, err := ContrastRatio(p[0], p[1])
		require.NoError(t, err)
		ba, err := ContrastRatio(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "%s vs %s", p[0], p[1])
		assert.GreaterOrEqual(t, ab, 1.0)
		assert.LessOrEqual(t, ab, 21.0)
	}
}

func TestRelativeLuminance(t *testing.T) {
	l, err := RelativeLuminance(White)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l, 1e-9)

	l, err = RelativeLuminance(Black)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l)
}

func TestMeetsWCAG(t *testing.T) {
	tests := []struct {
		name      string
		fg, bg    string
		largeText bool
		wantAA    bool
		wantAAA   bool
	}{
		{"black on white", Black, White, false, true, true},
		{"767676 on white passes AA", "#767676", White, false, true, false},
		{"777777 on white fails AA", "#777777", White, false, false, false},
		{"777777 large text passes AA", "#777777", White, true, true, false},
		{"white on white", White, White, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aa, err := MeetsWCAGAA(tt.fg, tt.bg, tt.largeText)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAA, aa)

			aaa, err := MeetsWCAGAAA(tt.fg, tt.bg, tt.largeText)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAAA, aaa)
		})
	}

	_, err := MeetsWCAGAA("bad", White, false)
	assert.Error(t, err)
}

func TestContrastingTextColor(t *testing.T) {
	got, err := ContrastingTextColor(White)
	require.NoError(t, err)
	assert.Equal(t, Black, got)

	got, err = ContrastingTextColor(DarkBackground)
	require.NoError(t, err)
	assert.Equal(t, White, got)
}

func TestAuditContrast(t *testing.T) {
	audit, err := AuditContrast([]string{"#000000", "#ffffff", "#777777"}, White)
	require.NoError(t, err)
	require.Len(t, audit, 3)

	assert.True(t, audit[0].AA)
	assert.True(t, audit[0].AAA)
	assert.Equal(t, "#FFFFFF", audit[1].Color)
	assert.False(t, audit[1].AALarge)
	assert.False(t, audit[2].AA)
	assert.True(t, audit[2].AALarge)

	_, err = AuditContrast([]string{"#12"}, White)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func FuzzHexToRGB(f *testing.F) {
	f.Add("#000000")
	f.Add("#abcdef")
	f.Add("#GGGGGG")
	f.Add("123456")
	f.Add("")
	f.Add("#12345")

	f.Fuzz(func(t *testing.T, input string) {
		c, err := HexToRGB(input)
		if err != nil {
			if !errors.Is(err, ErrInvalidColorFormat) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		if got := RGBToHex(c); got != strings.ToUpper(input) {
			t.Fatalf("round trip of %q gave %q", input, got)
		}
	})
}
