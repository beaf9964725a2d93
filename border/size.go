package border

// SizePrint computes the largest print that keeps at least minBorder of
// paper visible on every side while preserving the oriented ratio, the
// plain contain rule over the reduced sheet.
//
// degenerate is true when the border eats the whole sheet on either axis;
// the print collapses to zero area instead of going negative and the caller
// raises the min-border warning.
func SizePrint(paper, ratio Dimensions, minBorder float64) (print Dimensions, degenerate bool) {
	availW := paper.W - 2*minBorder
	availH := paper.H - 2*minBorder
	if availW <= 0 || availH <= 0 {
		return Dimensions{}, true
	}

	scale := availW / ratio.W
	if s := availH / ratio.H; s < scale {
		scale = s
	}
	return Dimensions{W: ratio.W * scale, H: ratio.H * scale}, false
}
