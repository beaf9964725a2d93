package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/share"
)

func runShare(cfg config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("share needs a subcommand: encode | decode")
	}

	switch args[0] {
	case "encode":
		return runShareEncode(cfg, args[1:])
	case "decode":
		return runShareDecode(args[1:])
	default:
		return fmt.Errorf("unknown share subcommand: %s", args[0])
	}
}

func runShareEncode(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("share encode", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s share encode [options]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	inFlags := bindInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := share.Encode(inFlags.build())
	if err != nil {
		return err
	}
	fmt.Println(share.URL(cfg.Share.BaseURL, token))
	return nil
}

func runShareDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("share decode needs exactly one token")
	}

	in, err := share.Decode(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("paper:       %s\n", describePaper(in))
	fmt.Printf("ratio:       %s\n", describeRatio(in))
	fmt.Printf("min border:  %.3f\"\n", in.MinBorder)
	if in.EnableOffset {
		fmt.Printf("offset:      %+.3f\" / %+.3f\"", in.HorizontalOffset, in.VerticalOffset)
		if in.IgnoreMinBorder {
			fmt.Print(" (min border ignored)")
		}
		fmt.Println()
	}
	return nil
}
