package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainerrors "github.com/grocerapp/grocer/internal/errors"
	"github.com/grocerapp/grocer/internal/measure"
)

// newConvertCommand creates `grocer convert <qty> <from> <to>`.
func newConvertCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <quantity> <from-unit> <to-unit>",
		Short: "Convert a quantity between kitchen units",
		Example: `  grocer convert 2 cups tbsp
  grocer convert 1/2 gallon cups
  grocer convert 1500 g lbs`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantityArg(args[0])
			if err != nil {
				return err
			}

			result, err := measure.Convert(qty, args[1], args[2])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", qty, args[1], result, args[2])
			return nil
		},
	}
}

// parseQuantityArg accepts "2", "1.5" or "1/2".
func parseQuantityArg(arg string) (measure.Quantity, error) {
	if num, den, ok := strings.Cut(arg, "/"); ok {
		n, nOK := measure.ParseDecimal(num)
		d, dOK := measure.ParseDecimal(den)
		if nOK && dOK && !d.IsZero() {
			return n.Div(d), nil
		}
		return measure.Quantity{}, domainerrors.Validationf("invalid quantity %q", arg)
	}

	qty, ok := measure.ParseDecimal(arg)
	if !ok {
		return measure.Quantity{}, domainerrors.Validationf("invalid quantity %q", arg)
	}
	return qty, nil
}
