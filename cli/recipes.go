package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/db"
	"github.com/darkroomtools/easeld/recipes"
)

func runRecipes(cfg config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("recipes needs a subcommand: list | save | delete")
	}

	store, err := recipes.NewStore(db.GetDatabase())
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return runRecipesList(store)
	case "save":
		return runRecipesSave(store, args[1:])
	case "delete":
		return runRecipesDelete(store, args[1:])
	default:
		return fmt.Errorf("unknown recipes subcommand: %s", args[0])
	}
}

func runRecipesList(store *recipes.Store) error {
	list, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no saved recipes")
		return nil
	}

	for _, rec := range list {
		fmt.Printf("%s  %-24s %s, %s, border %.3f\"\n",
			rec.ID, rec.Name, describePaper(rec.Input), describeRatio(rec.Input), rec.Input.MinBorder)
		if rec.Notes != "" {
			fmt.Printf("%38s%s\n", "", rec.Notes)
		}
	}
	return nil
}

func runRecipesSave(store *recipes.Store, args []string) error {
	fs := flag.NewFlagSet("recipes save", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s recipes save -name <name> [options]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	name := fs.String("name", "", "recipe name (required)")
	notes := fs.String("notes", "", "free-form darkroom notes")
	inFlags := bindInputFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, err := store.Create(context.Background(), *name, *notes, inFlags.build())
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%s)\n", rec.Name, rec.ID)
	return nil
}

func runRecipesDelete(store *recipes.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("recipes delete needs exactly one recipe id")
	}
	if err := store.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("deleted", args[0])
	return nil
}
