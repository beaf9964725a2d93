package border

type PaperMode string
type RatioMode string

const (
	PaperNamed  PaperMode = "named"
	PaperCustom PaperMode = "custom"

	RatioNamed      RatioMode = "named"
	RatioCustom     RatioMode = "custom"
	RatioEvenBorder RatioMode = "even-borders"
)

// Paper selects either a catalog size by label or a custom sheet by
// explicit dimensions (inches).
type Paper struct {
	Mode   PaperMode `json:"mode"`
	Label  string    `json:"label,omitempty"`
	Width  float64   `json:"width,omitempty"`
	Height float64   `json:"height,omitempty"`
}

// Ratio selects the print aspect: a catalog ratio, a custom one (ratio
// units), or the even-borders sentinel whose ratio is defined as the
// oriented paper's own.
type Ratio struct {
	Mode   RatioMode `json:"mode"`
	Label  string    `json:"label,omitempty"`
	Width  float64   `json:"width,omitempty"`
	Height float64   `json:"height,omitempty"`
}

// Orientation carries the paper orientation with its history: until the
// user flips the paper by hand the calculator derives landscape from the
// sheet itself, afterwards the manual choice wins.
type Orientation struct {
	Manual    bool `json:"manual"`
	Landscape bool `json:"landscape"`
}

// Input is one immutable calculator state. The consuming layer builds a
// fresh Input on every edit and carries LastValidMinBorder over from the
// previous Result so degenerate edits can be reverted.
type Input struct {
	Paper       Paper       `json:"paper"`
	Orientation Orientation `json:"orientation"`

	Ratio        Ratio `json:"ratio"`
	RatioFlipped bool  `json:"ratioFlipped"`

	MinBorder float64 `json:"minBorder"`

	EnableOffset     bool    `json:"enableOffset"`
	IgnoreMinBorder  bool    `json:"ignoreMinBorder"`
	HorizontalOffset float64 `json:"horizontalOffset"`
	VerticalOffset   float64 `json:"verticalOffset"`

	LastValidMinBorder float64 `json:"lastValidMinBorder"`
}

// Dimensions is an oriented width/height pair, inches for paper, ratio
// units for aspect.
type Dimensions struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Edges holds one value per paper edge. Used for border widths (which are
// literally the blade readings, inches) and for border percentages.
type Edges struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Min returns the smallest of the four edge values.
func (e Edges) Min() float64 {
	m := e.Left
	if e.Right < m {
		m = e.Right
	}
	if e.Top < m {
		m = e.Top
	}
	if e.Bottom < m {
		m = e.Bottom
	}
	return m
}

// Warnings are the four independent advisory states of a calculation.
// Empty string means clear; none of them is fatal.
type Warnings struct {
	MinBorder string `json:"minBorder,omitempty"`
	Offset    string `json:"offset,omitempty"`
	Blade     string `json:"blade,omitempty"`
	PaperSize string `json:"paperSize,omitempty"`
}

// Result is the full outcome of one calculation. It is a pure function of
// Input: same input, same result, no hidden state.
type Result struct {
	PaperWidth  float64 `json:"paperWidth"`
	PaperHeight float64 `json:"paperHeight"`

	PrintWidth  float64 `json:"printWidth"`
	PrintHeight float64 `json:"printHeight"`

	// Blade readings: distance from each paper edge to its blade.
	Blades Edges `json:"blades"`
	// Border widths as a percentage of the matching paper dimension,
	// preview rendering only.
	BorderPercent Edges `json:"borderPercent"`

	PrintWidthPercent  float64 `json:"printWidthPercent"`
	PrintHeightPercent float64 `json:"printHeightPercent"`
	BladeThickness     float64 `json:"bladeThickness"`

	// Offsets actually applied after clamping; differ from the requested
	// ones exactly when Warnings.Offset is set.
	AppliedHorizontalOffset float64 `json:"appliedHorizontalOffset"`
	AppliedVerticalOffset   float64 `json:"appliedVerticalOffset"`

	IsNonStandardPaperSize bool   `json:"isNonStandardPaperSize"`
	EaselSizeLabel         string `json:"easelSizeLabel,omitempty"`

	Warnings Warnings `json:"warnings"`

	// The most recent MinBorder that produced a non-degenerate print;
	// echoed from the input when the current one does not.
	LastValidMinBorder float64 `json:"lastValidMinBorder"`
}
