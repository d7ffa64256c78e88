package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grocerapp/grocer/internal/measure"
)

// newParseCommand creates `grocer parse <measurement>`.
func newParseCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <measurement>",
		Short: "Show how a measurement string is interpreted",
		Example: `  grocer parse "1 1/2 cups"
  grocer parse "to taste"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			qty, unit := measure.Parse(text)

			fmt.Fprintf(cmd.OutOrStdout(), "quantity: %s\n", qty)
			fmt.Fprintf(cmd.OutOrStdout(), "unit:     %s\n", unit)
			fmt.Fprintf(cmd.OutOrStdout(), "category: %s\n", measure.CategoryOf(unit))
			return nil
		},
	}
}
