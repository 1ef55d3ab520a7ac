package cmd

import (
	"fmt"
	"sort"

	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the command printing resolved role colors
func NewResolveCmd(c *cli.Container) *cobra.Command {
	var flags themeFlags
	var roles []string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved colors of a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, custom, err := flags.load(c)
			if err != nil {
				return err
			}

			d, err := theme.Load(src)
			if err != nil {
				return err
			}
			res, err := theme.Resolve(registry.Default(), d, custom)
			if err != nil {
				return err
			}

			for _, drop := range res.Dropped {
				c.Console.Warning("ignored color %q: no %s default to override", drop.ID, drop.Variant)
			}

			ids := roles
			if len(ids) == 0 {
				for id := range res.Colors {
					ids = append(ids, id)
				}
				sort.Strings(ids)
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				col, ok := res.Colors[id]
				switch {
				case !ok:
					return fmt.Errorf("%w: %s", registry.ErrUnknownRole, id)
				case col == nil:
					rows = append(rows, []string{id, "-", "-"})
				default:
					rows = append(rows, []string{id, "#" + col.Hex(), col.String()})
				}
			}

			c.Console.Info("%s (%s)", describeSource(src), res.Variant)
			c.Console.Table([]string{"Role", "Hex", "RGBA"}, rows)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringSliceVarP(&roles, "role", "r", nil, "only print these role ids")
	return cmd
}
