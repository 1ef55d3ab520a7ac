package cmd

import (
	"fmt"
	"os"

	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/resource"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the designer resource builder command
func NewBuildCmd(c *cli.Container) *cobra.Command {
	var flags themeFlags
	var path, toolkitVersion string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a Qt Designer resource folder",
		Long: `Build writes <path>/` + resource.DirName + ` containing stylesheet.qss,
the recolored svg icons and a resource.qrc manifest. Compile the manifest
and paste the stylesheet into Qt Designer. The folder must not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				path = wd
			}

			src, custom, err := flags.load(c)
			if err != nil {
				return err
			}

			e, err := c.NewEngine(toolkitVersion)
			if err != nil {
				return err
			}
			defer e.Close()

			res, err := resource.Build(e, path, src, custom)
			if err != nil {
				c.Logger.Error("resource build failed", map[string]interface{}{"path": path, "error": err.Error()})
				return err
			}

			c.Logger.Info("resources built", map[string]interface{}{
				"dir":   res.Dir,
				"theme": describeSource(src),
				"icons": len(res.Icons),
			})
			c.Console.Success("Resources for %s written to %s", describeSource(src), res.Dir)
			c.Console.Hint("%d icons, stylesheet %s, manifest %s", len(res.Icons), res.Stylesheet, res.Manifest)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&path, "path", "p", "", "directory to create the resource folder in (default: working directory)")
	cmd.Flags().StringVar(&toolkitVersion, "toolkit-version", "", "Qt version the stylesheet targets")
	return cmd
}
