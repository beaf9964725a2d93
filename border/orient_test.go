package border

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrientationPaper(t *testing.T) {
	cases := []struct {
		name  string
		paper Paper
		or    Orientation
		want  Dimensions
	}{
		{
			name:  "named paper defaults to portrait",
			paper: Paper{Mode: PaperNamed, Label: "8x10"},
			want:  Dimensions{W: 8, H: 10},
		},
		{
			name:  "manual landscape wins over the default",
			paper: Paper{Mode: PaperNamed, Label: "8x10"},
			or:    Orientation{Manual: true, Landscape: true},
			want:  Dimensions{W: 10, H: 8},
		},
		{
			name:  "custom paper derives landscape from its own shape",
			paper: Paper{Mode: PaperCustom, Width: 10, Height: 8},
			want:  Dimensions{W: 10, H: 8},
		},
		{
			name:  "manual portrait overrides a landscape sheet",
			paper: Paper{Mode: PaperCustom, Width: 10, Height: 8},
			or:    Orientation{Manual: true, Landscape: false},
			want:  Dimensions{W: 8, H: 10},
		},
		{
			name:  "unknown label falls back to the entered dimensions",
			paper: Paper{Mode: PaperNamed, Label: "no-such", Width: 6, Height: 9},
			want:  Dimensions{W: 6, H: 9},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := Input{Paper: tc.paper, Orientation: tc.or, Ratio: Ratio{Mode: RatioCustom, Width: 1, Height: 1}}
			paper, _ := ResolveOrientation(in)
			assert.Equal(t, tc.want, paper)
		})
	}
}

func TestResolveOrientationRatio(t *testing.T) {
	base := Input{Paper: Paper{Mode: PaperNamed, Label: "8x10"}}

	in := base
	in.Ratio = Ratio{Mode: RatioNamed, Label: "2:3 (35mm)"}
	_, ratio := ResolveOrientation(in)
	assert.Equal(t, Dimensions{W: 2, H: 3}, ratio)

	in.RatioFlipped = true
	_, ratio = ResolveOrientation(in)
	assert.Equal(t, Dimensions{W: 3, H: 2}, ratio)

	in = base
	in.Ratio = Ratio{Mode: RatioCustom, Width: 65, Height: 24}
	_, ratio = ResolveOrientation(in)
	assert.Equal(t, Dimensions{W: 65, H: 24}, ratio)

	// even-borders equals the oriented paper and ignores the flip flag
	in = base
	in.Ratio = Ratio{Mode: RatioEvenBorder}
	in.RatioFlipped = true
	paper, ratio := ResolveOrientation(in)
	assert.Equal(t, paper, ratio)
}

func TestResolveOrientationClampsGarbage(t *testing.T) {
	in := Input{
		Paper: Paper{Mode: PaperCustom, Width: -1, Height: 0},
		Ratio: Ratio{Mode: RatioCustom, Width: 0, Height: -5},
	}
	paper, ratio := ResolveOrientation(in)

	assert.Greater(t, paper.W, 0.0)
	assert.Greater(t, paper.H, 0.0)
	assert.Greater(t, ratio.W, 0.0)
	assert.Greater(t, ratio.H, 0.0)
}
