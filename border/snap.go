package border

import "math"

// snapIncrement matches the quarter-inch markings on real easel rails.
const snapIncrement = 0.25

const alignTolerance = 1e-9

// SnapMinBorder proposes a minimum border that lands the smallest blade
// reading of the configuration on a quarter-inch mark, keeping the same
// axis binding and all the usual clamps intact.
//
// ok is false when the current reading is already aligned or when no
// candidate survives: the suggestion is assistive only, the engine never
// applies it itself.
func (e *Engine) SnapMinBorder(in Input) (minBorder float64, ok bool) {
	current := e.Calculate(in)
	if current.Warnings.MinBorder != "" {
		return 0, false
	}

	smallest := current.Blades.Min()
	if aligned(smallest) {
		return 0, false
	}

	lower := math.Floor(smallest/snapIncrement) * snapIncrement
	targets := []float64{lower, lower + snapIncrement}
	if smallest-lower > snapIncrement/2 {
		targets[0], targets[1] = targets[1], targets[0]
	}

	for _, target := range targets {
		if target <= 0 {
			continue
		}
		candidate := in.MinBorder + (target - smallest)
		if candidate < 0 {
			continue
		}

		next := in
		next.MinBorder = candidate
		res := e.Calculate(next)
		if res.Warnings.MinBorder != "" {
			continue
		}
		if !aligned(res.Blades.Min()) {
			// a clamp or a binding-axis change absorbed the shift
			continue
		}
		if bindingAxis(res.Blades) != bindingAxis(current.Blades) {
			continue
		}
		return candidate, true
	}
	return 0, false
}

func aligned(v float64) bool {
	_, frac := math.Modf(v / snapIncrement)
	return frac < alignTolerance || 1-frac < alignTolerance
}

// bindingAxis reports which axis holds the smallest reading; horizontal
// wins ties so the comparison is stable across recomputation.
func bindingAxis(b Edges) string {
	h := math.Min(b.Left, b.Right)
	v := math.Min(b.Top, b.Bottom)
	if h <= v {
		return "horizontal"
	}
	return "vertical"
}
