package cli

import (
	"fmt"
	"os"

	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/server"
)

func Run(cfg config.Config) error {
	if len(os.Args) == 1 {
		return runServe(cfg)
	}

	cmd := os.Args[1]

	switch cmd {
	case "serve":
		return runServe(cfg)

	case "calc":
		return runCalc(cfg, os.Args[2:])

	case "share":
		return runShare(cfg, os.Args[2:])

	case "recipes":
		return runRecipes(cfg, os.Args[2:])

	case "-h", "--help", "help":
		printGlobalHelp()
		return nil

	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printGlobalHelp() {
	fmt.Printf(`Usage: %s <command> [options]

Commands:
  serve       Run the HTTP API
  calc        Compute blade settings for one configuration
  share       Encode or decode a shareable settings link
  recipes     Manage saved recipes in the local store

Use "%s <command> --help" for command-specific options.
`, os.Args[0], os.Args[0])
}

func runServe(cfg config.Config) error {
	return server.Server(cfg)
}
