package cmd

import (
	"strings"

	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/stylesheet"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(c *cli.Container) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in themes, color roles or icons",
	}

	listCmd.AddCommand(
		newListThemesCmd(c),
		newListColorsCmd(c),
		newListIconsCmd(c),
	)
	return listCmd
}

func newListThemesCmd(c *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, b := range theme.Builtins() {
				rows = append(rows, []string{b.Name, b.Symbol, string(b.Type)})
			}
			c.Console.Table([]string{"Theme", "Symbol", "Type"}, rows)
			return nil
		},
	}
}

func newListColorsCmd(c *cli.Container) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the color roles a theme can set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, entry := range theme.Catalog() {
				if filter != "" && !strings.Contains(strings.ToLower(entry.ID), strings.ToLower(filter)) {
					continue
				}
				rows = append(rows, []string{entry.ID, entry.Title})
			}
			c.Console.Table([]string{"ID", "Title"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only list ids containing this text")
	return cmd
}

func newListIconsCmd(c *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icons the stylesheet template can reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := stylesheet.IconNames(stylesheet.DefaultIcons())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(names))
			for _, n := range names {
				rows = append(rows, []string{n})
			}
			c.Console.Table([]string{"Icon"}, rows)
			return nil
		},
	}
}
