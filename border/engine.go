package border

import (
	"fmt"
	"math"
)

// DefaultMinBladeReading is the reading below which a blade sits so close
// to the paper edge that its position is mechanically unreliable. Tunable
// per easel via Config, not a physical constant.
const DefaultMinBladeReading = 0.05

// Config tunes the engine. Zero values fall back to the defaults.
type Config struct {
	// MinBladeReading is the threshold for the blade warning, inches.
	MinBladeReading float64 `yaml:"min_blade"`
}

// Engine is the pure print-border calculator. It holds no mutable state;
// every Calculate call is a total function of its Input.
type Engine struct {
	minBlade float64
}

func New(cfg Config) *Engine {
	minBlade := cfg.MinBladeReading
	if minBlade <= 0 {
		minBlade = DefaultMinBladeReading
	}
	return &Engine{minBlade: minBlade}
}

// Calculate runs the whole pipeline: orientation, sizing, border
// distribution and warning derivation. It never fails; nonsensical inputs
// come back clamped, with the matching warning set.
func (e *Engine) Calculate(in Input) Result {
	paper, ratio := ResolveOrientation(in)

	minBorder := in.MinBorder
	if math.IsNaN(minBorder) || minBorder < 0 {
		minBorder = 0
	}

	print, degenerate := SizePrint(paper, ratio, minBorder)

	off := offsets{ignoreMin: in.IgnoreMinBorder}
	if in.EnableOffset {
		off.horizontal = sanitizeOffset(in.HorizontalOffset)
		off.vertical = sanitizeOffset(in.VerticalOffset)
	}
	set := computeBorders(paper, print, minBorder, off)

	res := Result{
		PaperWidth:  paper.W,
		PaperHeight: paper.H,
		PrintWidth:  print.W,
		PrintHeight: print.H,

		Blades:        set.borders,
		BorderPercent: borderPercents(set.borders, paper),

		PrintWidthPercent:  print.W / paper.W * 100,
		PrintHeightPercent: print.H / paper.H * 100,
		BladeThickness:     bladeThickness(paper),

		AppliedHorizontalOffset: set.appliedH,
		AppliedVerticalOffset:   set.appliedV,

		LastValidMinBorder: minBorder,
	}

	e.deriveWarnings(&res, in, paper, minBorder, degenerate, off, set)
	return res
}

// deriveWarnings fills the four advisory fields from the same pass. They
// are independent and may all fire at once.
func (e *Engine) deriveWarnings(res *Result, in Input, paper Dimensions, minBorder float64, degenerate bool, off offsets, set bladeSet) {
	if degenerate {
		res.Warnings.MinBorder = fmt.Sprintf(
			"minimum border of %.2f\" leaves no room for a print on %.1fx%.1f paper",
			minBorder, paper.W, paper.H)
		// keep the caller's recovery value instead of the offending one
		res.LastValidMinBorder = in.LastValidMinBorder
	}

	var constrained []string
	if set.appliedH != off.horizontal {
		constrained = append(constrained, "horizontal")
	}
	if set.appliedV != off.vertical {
		constrained = append(constrained, "vertical")
	}
	if len(constrained) > 0 {
		bound := "the minimum border"
		if off.ignoreMin {
			bound = "the paper edge"
		}
		res.Warnings.Offset = fmt.Sprintf(
			"%s offset reduced to keep the print inside %s",
			joinAxes(constrained), bound)
	}

	if set.borders.Min() < e.minBlade {
		res.Warnings.Blade = fmt.Sprintf(
			"a blade reading below %.2f\" puts the blade at the paper edge and cannot be set reliably",
			e.minBlade)
	}

	if !IsStandardPaper(paper.W, paper.H) {
		res.IsNonStandardPaperSize = true
		if easel, ok := SmallestEaselFor(paper.W, paper.H); ok {
			res.EaselSizeLabel = easel.Label
			res.Warnings.PaperSize = fmt.Sprintf(
				"%.2fx%.2f is not a standard easel slot; align the paper in one corner of the %s slot and read the blades from that corner",
				paper.W, paper.H, easel.Label)
		} else {
			res.Warnings.PaperSize = fmt.Sprintf(
				"%.2fx%.2f is larger than any standard easel slot", paper.W, paper.H)
		}
	}
}

func sanitizeOffset(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func joinAxes(parts []string) string {
	if len(parts) == 2 {
		return parts[0] + " and " + parts[1]
	}
	return parts[0]
}
