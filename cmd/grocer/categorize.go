package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grocerapp/grocer/internal/grocery"
	"github.com/grocerapp/grocer/internal/measure"
)

// newCategorizeCommand creates `grocer categorize <ingredient>`.
func newCategorizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <ingredient>",
		Short: "Show the shopping category for an ingredient name",
		Example: `  grocer categorize "fresh basil"
  grocer categorize "chicken broth"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			fmt.Fprintf(cmd.OutOrStdout(), "category:  %s\n", grocery.Categorize(name))
			fmt.Fprintf(cmd.OutOrStdout(), "core name: %s\n", measure.ExtractIngredientName(name))
			return nil
		},
	}
}
