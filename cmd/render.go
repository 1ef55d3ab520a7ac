package cmd

import (
	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the stylesheet render command
func NewRenderCmd(c *cli.Container) *cobra.Command {
	var flags themeFlags
	var output, toolkitVersion string
	var variantOnly bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the stylesheet for a theme",
		Long: `Render resolves a theme and prints the stylesheet. Icons are written
under ~/.vstyle/resources and stay there until the next run.

With --variant-only only the resolved variant (light, dark or hc) is printed
and nothing is written under resources.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, custom, err := flags.load(c)
			if err != nil {
				return err
			}

			if variantOnly {
				v, err := resolveVariant(src, custom)
				if err != nil {
					return err
				}
				return writeOutput(output, string(v)+"\n")
			}

			e, err := c.NewEngine(toolkitVersion)
			if err != nil {
				return err
			}

			stylesheet, err := e.LoadStylesheet(src, custom)
			if err != nil {
				return err
			}

			if err := writeOutput(output, stylesheet); err != nil {
				return err
			}
			if output != "" {
				c.Console.Success("Stylesheet written to %s", output)
			}
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the stylesheet to a file instead of stdout")
	cmd.Flags().BoolVar(&variantOnly, "variant-only", false, "print only the resolved theme variant")
	cmd.Flags().StringVar(&toolkitVersion, "toolkit-version", "", "Qt version the stylesheet targets")
	return cmd
}
