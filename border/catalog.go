package border

// PaperSize is one reference row of the paper catalog. Dimensions are
// inches, stored portrait (Width <= Height); orientation is resolved later.
type PaperSize struct {
	Label    string  `json:"label"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Standard bool    `json:"standard"`
}

// RatioSize is one reference row of the aspect-ratio catalog. Width and
// Height are ratio units, not inches.
type RatioSize struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StandardPapers lists the cut sheet sizes sold for darkroom printing.
// Treat as read-only.
var StandardPapers = []PaperSize{
	{Label: "4x5", Width: 4, Height: 5, Standard: true},
	{Label: "4x6", Width: 4, Height: 6, Standard: true},
	{Label: "5x7", Width: 5, Height: 7, Standard: true},
	{Label: "8x10", Width: 8, Height: 10, Standard: true},
	{Label: "11x14", Width: 11, Height: 14, Standard: true},
	{Label: "16x20", Width: 16, Height: 20, Standard: true},
	{Label: "20x24", Width: 20, Height: 24, Standard: true},
}

// EaselSlots lists the fixed slot sizes found on four-blade easels,
// smallest first. A paper size outside this list has to be corner-aligned
// in the next larger slot.
var EaselSlots = []PaperSize{
	{Label: "5x7", Width: 5, Height: 7, Standard: true},
	{Label: "8x10", Width: 8, Height: 10, Standard: true},
	{Label: "11x14", Width: 11, Height: 14, Standard: true},
	{Label: "16x20", Width: 16, Height: 20, Standard: true},
	{Label: "20x24", Width: 20, Height: 24, Standard: true},
}

// NamedRatios lists the negative formats the calculator knows about.
// Stored with Width <= Height like the papers. Treat as read-only.
var NamedRatios = []RatioSize{
	{Label: "1:1", Width: 1, Height: 1},
	{Label: "4:5", Width: 4, Height: 5},
	{Label: "5:7", Width: 5, Height: 7},
	{Label: "3:4", Width: 3, Height: 4},
	{Label: "2:3 (35mm)", Width: 2, Height: 3},
	{Label: "4.5:6", Width: 4.5, Height: 6},
	{Label: "6:7", Width: 6, Height: 7},
	{Label: "6:9", Width: 6, Height: 9},
	{Label: "9:16", Width: 9, Height: 16},
	{Label: "24:65 (XPan)", Width: 24, Height: 65},
}

// FindPaper looks up a catalog paper by label.
func FindPaper(label string) (PaperSize, bool) {
	for _, p := range StandardPapers {
		if p.Label == label {
			return p, true
		}
	}
	return PaperSize{}, false
}

// FindRatio looks up a catalog ratio by label.
func FindRatio(label string) (RatioSize, bool) {
	for _, r := range NamedRatios {
		if r.Label == label {
			return r, true
		}
	}
	return RatioSize{}, false
}

// matchTolerance absorbs float noise when comparing user-entered custom
// dimensions against catalog rows.
const matchTolerance = 1e-6

// IsStandardPaper reports whether w x h (either orientation) exactly
// matches a catalog paper size.
func IsStandardPaper(w, h float64) bool {
	lo, hi := minMax(w, h)
	for _, p := range StandardPapers {
		if eq(lo, p.Width) && eq(hi, p.Height) {
			return true
		}
	}
	return false
}

// SmallestEaselFor returns the smallest easel slot that covers w x h in
// either orientation. ok is false when the paper is larger than every slot.
func SmallestEaselFor(w, h float64) (PaperSize, bool) {
	lo, hi := minMax(w, h)
	for _, e := range EaselSlots {
		if lo <= e.Width+matchTolerance && hi <= e.Height+matchTolerance {
			return e, true
		}
	}
	return PaperSize{}, false
}

func eq(a, b float64) bool {
	d := a - b
	return d < matchTolerance && d > -matchTolerance
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
