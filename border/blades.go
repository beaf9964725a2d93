package border

// offsets is the requested shift of the print inside its borders, inches.
// Positive horizontal moves the print right, positive vertical moves it
// down.
type offsets struct {
	horizontal float64
	vertical   float64
	ignoreMin  bool
}

// bladeSet is the outcome of distributing the leftover border around the
// print: the four border widths (identical to the blade readings) and the
// offsets that survived clamping.
type bladeSet struct {
	borders  Edges
	appliedH float64
	appliedV float64
}

// computeBorders splits the slack between paper and print across the four
// edges and applies the requested offsets.
//
// Clamping runs per axis. With the minimum border enforced, an offset may
// consume at most the slack above minBorder; with IgnoreMinBorder the print
// may ride all the way to the paper edge but never off it. Either way the
// resulting border widths are what the user dials onto the easel blades.
func computeBorders(paper, print Dimensions, minBorder float64, off offsets) bladeSet {
	nominalH := (paper.W - print.W) / 2
	nominalV := (paper.H - print.H) / 2

	floor := minBorder
	if off.ignoreMin {
		floor = 0
	}

	appliedH := clampOffset(off.horizontal, nominalH-floor)
	appliedV := clampOffset(off.vertical, nominalV-floor)

	return bladeSet{
		borders: Edges{
			Left:   nominalH - appliedH,
			Right:  nominalH + appliedH,
			Top:    nominalV - appliedV,
			Bottom: nominalV + appliedV,
		},
		appliedH: appliedH,
		appliedV: appliedV,
	}
}

// clampOffset bounds the requested shift to +-slack. Slack below zero means
// the axis has no room at all (degenerate sizing), so the print stays
// centered.
func clampOffset(requested, slack float64) float64 {
	if slack <= 0 {
		return 0
	}
	if requested > slack {
		return slack
	}
	if requested < -slack {
		return -slack
	}
	return requested
}

// borderPercents scales the edge widths against the paper for preview
// rendering.
func borderPercents(b Edges, paper Dimensions) Edges {
	return Edges{
		Left:   b.Left / paper.W * 100,
		Right:  b.Right / paper.W * 100,
		Top:    b.Top / paper.H * 100,
		Bottom: b.Bottom / paper.H * 100,
	}
}

// bladeThickness is the preview stroke width for the blade outlines,
// derived from the sheet so the preview looks right at any scale.
func bladeThickness(paper Dimensions) float64 {
	t := paper.W
	if paper.H > t {
		t = paper.H
	}
	t /= 40
	if t < 0.05 {
		t = 0.05
	}
	return t
}
