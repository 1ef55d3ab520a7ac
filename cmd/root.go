package cmd

import (
	"fmt"

	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "vstyle",
		Short:   "VSCode color themes for Qt widget stylesheets",
		Long: `vstyle renders VSCode color themes into Qt stylesheets.

It resolves a theme against the VSCode color registry, recolors the
stylesheet icons and writes resource folders for Qt Designer.`,
		SilenceUsage: true,
		RunE: func(cm *cobra.Command, args []string) error {
			container.Console.Welcome()
			fmt.Println("")
			container.Console.Hint("Run 'vstyle list themes' to see the built-in themes.")
			container.Console.Hint("Run 'vstyle render --theme DARK_VS' to print a stylesheet.")
			return nil
		},
	}

	return rootCmd
}
