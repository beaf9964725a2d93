package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/config"
)

// inchesToCentimeters is presentation only; the engine speaks inches.
const inchesToCentimeters = 2.54

type inputFlags struct {
	paper       *string
	paperWidth  *float64
	paperHeight *float64
	landscape   *bool
	portrait    *bool

	ratio       *string
	ratioWidth  *float64
	ratioHeight *float64
	flipRatio   *bool
	evenBorders *bool

	minBorder *float64

	offsetH         *float64
	offsetV         *float64
	ignoreMinBorder *bool
}

func bindInputFlags(fs *flag.FlagSet) *inputFlags {
	f := &inputFlags{}
	f.paper = fs.String("paper", "8x10", "catalog paper size label")
	f.paperWidth = fs.Float64("paper-width", 0, "custom paper width, inches (with -paper-height)")
	f.paperHeight = fs.Float64("paper-height", 0, "custom paper height, inches")
	f.landscape = fs.Bool("landscape", false, "force landscape paper")
	f.portrait = fs.Bool("portrait", false, "force portrait paper")

	f.ratio = fs.String("ratio", "2:3 (35mm)", "catalog aspect ratio label")
	f.ratioWidth = fs.Float64("ratio-width", 0, "custom ratio width (with -ratio-height)")
	f.ratioHeight = fs.Float64("ratio-height", 0, "custom ratio height")
	f.flipRatio = fs.Bool("flip-ratio", false, "swap the ratio orientation")
	f.evenBorders = fs.Bool("even-borders", false, "match the paper's own ratio for uniform borders")

	f.minBorder = fs.Float64("min-border", 0.5, "minimum border, inches")

	f.offsetH = fs.Float64("offset-h", 0, "horizontal offset, inches (positive moves right)")
	f.offsetV = fs.Float64("offset-v", 0, "vertical offset, inches (positive moves down)")
	f.ignoreMinBorder = fs.Bool("ignore-min-border", false, "let offsets run to the paper edge")
	return f
}

func (f *inputFlags) build() border.Input {
	in := border.Input{
		Paper:     border.Paper{Mode: border.PaperNamed, Label: *f.paper},
		Ratio:     border.Ratio{Mode: border.RatioNamed, Label: *f.ratio},
		MinBorder: *f.minBorder,

		RatioFlipped:       *f.flipRatio,
		LastValidMinBorder: *f.minBorder,
	}
	if *f.paperWidth > 0 && *f.paperHeight > 0 {
		in.Paper = border.Paper{Mode: border.PaperCustom, Width: *f.paperWidth, Height: *f.paperHeight}
	}
	switch {
	case *f.evenBorders:
		in.Ratio = border.Ratio{Mode: border.RatioEvenBorder}
		in.RatioFlipped = false
	case *f.ratioWidth > 0 && *f.ratioHeight > 0:
		in.Ratio = border.Ratio{Mode: border.RatioCustom, Width: *f.ratioWidth, Height: *f.ratioHeight}
	}
	if *f.landscape || *f.portrait {
		in.Orientation = border.Orientation{Manual: true, Landscape: *f.landscape}
	}
	if *f.offsetH != 0 || *f.offsetV != 0 {
		in.EnableOffset = true
		in.HorizontalOffset = *f.offsetH
		in.VerticalOffset = *f.offsetV
	}
	return in
}

func runCalc(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s calc [options]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	inFlags := bindInputFlags(fs)
	cm := fs.Bool("cm", false, "display centimeters instead of inches")
	snap := fs.Bool("snap", false, "suggest a quarter-inch aligned minimum border")

	if err := fs.Parse(args); err != nil {
		return err
	}

	engine := border.New(cfg.Calculator)
	in := inFlags.build()
	res := engine.Calculate(in)

	printResult(res, *cm)

	if *snap {
		if minBorder, ok := engine.SnapMinBorder(in); ok {
			fmt.Printf("\nQuarter-inch assist: try a minimum border of %s\n",
				formatLength(minBorder, *cm))
		} else {
			fmt.Println("\nQuarter-inch assist: blades are already on quarter-inch marks")
		}
	}
	return nil
}

func printResult(res border.Result, cm bool) {
	fmt.Printf("Paper:  %s x %s\n",
		formatLength(res.PaperWidth, cm), formatLength(res.PaperHeight, cm))
	fmt.Printf("Print:  %s x %s\n",
		formatLength(res.PrintWidth, cm), formatLength(res.PrintHeight, cm))

	fmt.Println("\nBlade readings:")
	fmt.Printf("  left   %s\n", formatLength(res.Blades.Left, cm))
	fmt.Printf("  right  %s\n", formatLength(res.Blades.Right, cm))
	fmt.Printf("  top    %s\n", formatLength(res.Blades.Top, cm))
	fmt.Printf("  bottom %s\n", formatLength(res.Blades.Bottom, cm))

	if res.IsNonStandardPaperSize && res.EaselSizeLabel != "" {
		fmt.Printf("\nEasel: use the %s slot\n", res.EaselSizeLabel)
	}

	for _, w := range []string{
		res.Warnings.MinBorder,
		res.Warnings.Offset,
		res.Warnings.Blade,
		res.Warnings.PaperSize,
	} {
		if w != "" {
			fmt.Printf("warning: %s\n", w)
		}
	}
}

func formatLength(inches float64, cm bool) string {
	if cm {
		return fmt.Sprintf("%.2f cm", inches*inchesToCentimeters)
	}
	return fmt.Sprintf("%.2f\"", inches)
}
