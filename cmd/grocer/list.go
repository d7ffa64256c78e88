package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grocerapp/grocer/internal/aggregate"
	"github.com/grocerapp/grocer/internal/config"
	"github.com/grocerapp/grocer/internal/list"
	"github.com/grocerapp/grocer/internal/recipe"
)

// newListCommand creates `grocer list <recipes...>`.
func newListCommand(app *App) *cobra.Command {
	var (
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list <recipe-file>...",
		Short: "Generate a shopping list from recipe files",
		Long: `Generate a consolidated shopping list from one or more recipe files.

Files may be YAML or JSON. Same-named ingredients are merged across
recipes, with compatible units converted and summed; amounts that cannot
be combined are kept as notes so nothing is lost.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Loader.LoadAll(args)
			if err != nil {
				return err
			}
			records := recipe.Records(recipes)

			app.Logger.Debug("Aggregating ingredients",
				"recipes", len(recipes),
				"records", len(records),
			)

			shoppingList := list.Build(aggregate.Aggregate(records))

			if asJSON || app.Config.Output.Format == config.OutputJSON {
				return shoppingList.WriteJSON(cmd.OutOrStdout())
			}

			color := !noColor && !app.Config.Output.NoColor && isTerminal(os.Stdout)
			renderList(cmd.OutOrStdout(), shoppingList, color)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the list as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")

	return cmd
}
