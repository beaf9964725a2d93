package border

import "math"

// dimEpsilon replaces non-finite or non-positive dimensions so the later
// stages never divide by zero.
const dimEpsilon = 1e-6

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return dimEpsilon
	}
	return v
}

func orient(w, h float64, landscape bool) Dimensions {
	lo, hi := minMax(w, h)
	if landscape {
		return Dimensions{W: hi, H: lo}
	}
	return Dimensions{W: lo, H: hi}
}

// paperDimensions resolves the raw sheet size, catalog or custom.
func paperDimensions(p Paper) (float64, float64) {
	if p.Mode == PaperNamed {
		if entry, ok := FindPaper(p.Label); ok {
			return entry.Width, entry.Height
		}
	}
	return sanitize(p.Width), sanitize(p.Height)
}

// ResolveOrientation turns the raw paper and ratio selections into the
// effective oriented dimensions every later stage works with.
//
// Paper: a manual flip always wins; otherwise landscape is derived from the
// sheet as entered (wider than tall means landscape). Ratio: even-borders is
// defined as the oriented paper's own ratio, so flipping it is meaningless
// and RatioFlipped is ignored on that path; every other ratio is swapped
// according to RatioFlipped.
func ResolveOrientation(in Input) (paper Dimensions, ratio Dimensions) {
	rawW, rawH := paperDimensions(in.Paper)

	landscape := rawW > rawH
	if in.Orientation.Manual {
		landscape = in.Orientation.Landscape
	}
	paper = orient(rawW, rawH, landscape)

	switch in.Ratio.Mode {
	case RatioEvenBorder:
		ratio = Dimensions{W: paper.W, H: paper.H}
	case RatioNamed:
		rw, rh := sanitize(in.Ratio.Width), sanitize(in.Ratio.Height)
		if entry, ok := FindRatio(in.Ratio.Label); ok {
			rw, rh = entry.Width, entry.Height
		}
		ratio = orientRatio(rw, rh, in.RatioFlipped)
	default:
		ratio = orientRatio(sanitize(in.Ratio.Width), sanitize(in.Ratio.Height), in.RatioFlipped)
	}
	return paper, ratio
}

// orientRatio swaps the ratio only when flipped; unlike paper, an unflipped
// ratio keeps the units exactly as stored or entered.
func orientRatio(w, h float64, flipped bool) Dimensions {
	if flipped {
		return Dimensions{W: h, H: w}
	}
	return Dimensions{W: w, H: h}
}
