package main

import (
	"github.com/spf13/cobra"

	"github.com/grocerapp/grocer/internal/logger"
)

// newRootCommand creates the `grocer` command tree.
func newRootCommand(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "grocer",
		Short: "Turn recipes into a consolidated shopping list",
		Long: `grocer parses free-text ingredient measurements from recipe files,
converts compatible units, and merges everything into one categorized
shopping list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				app.Logger = logger.New(logger.Config{
					Format: app.Config.Logger.Format,
					Level:  logger.ParseLevel(logLevel),
				})
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(newListCommand(app))
	root.AddCommand(newConvertCommand(app))
	root.AddCommand(newParseCommand(app))
	root.AddCommand(newCategorizeCommand(app))

	return root
}
