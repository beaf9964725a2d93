package cli

import (
	"fmt"

	"github.com/darkroomtools/easeld/border"
)

func describePaper(in border.Input) string {
	desc := in.Paper.Label
	if in.Paper.Mode == border.PaperCustom {
		desc = fmt.Sprintf("custom %gx%g", in.Paper.Width, in.Paper.Height)
	}
	if in.Orientation.Manual {
		if in.Orientation.Landscape {
			return desc + " landscape"
		}
		return desc + " portrait"
	}
	return desc
}

func describeRatio(in border.Input) string {
	var desc string
	switch in.Ratio.Mode {
	case border.RatioEvenBorder:
		return "even borders"
	case border.RatioCustom:
		desc = fmt.Sprintf("custom %g:%g", in.Ratio.Width, in.Ratio.Height)
	default:
		desc = in.Ratio.Label
	}
	if in.RatioFlipped {
		desc += " flipped"
	}
	return desc
}
