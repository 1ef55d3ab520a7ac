package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/spf13/cobra"
)

// themeFlags are the flags shared by the commands that load a theme
type themeFlags struct {
	symbol       string
	file         string
	customColors string
}

func (f *themeFlags) register(cmd *cobra.Command, withFile bool) {
	cmd.Flags().StringVarP(&f.symbol, "theme", "t", "", "built-in theme symbol, see 'vstyle list themes'")
	if withFile {
		cmd.Flags().StringVarP(&f.file, "file", "f", "", "theme JSON file, takes precedence over --theme")
	}
	cmd.Flags().StringVarP(&f.customColors, "custom-colors-path", "c", "", "YAML or JSON file of color overrides")
}

// load returns the theme source and custom colors selected by the flags
func (f *themeFlags) load(c *cli.Container) (any, map[string]string, error) {
	src, err := c.ThemeSource(f.symbol, f.file)
	if err != nil {
		return nil, nil, err
	}
	custom, err := c.CustomColors(f.customColors)
	if err != nil {
		return nil, nil, err
	}
	return src, custom, nil
}

// resolveVariant resolves a theme against the default registry and returns
// its variant. No stylesheet or icons are produced.
func resolveVariant(src any, custom map[string]string) (registry.Variant, error) {
	d, err := theme.Load(src)
	if err != nil {
		return "", err
	}
	res, err := theme.Resolve(registry.Default(), d, custom)
	if err != nil {
		return "", err
	}
	return res.Variant, nil
}

func describeSource(src any) string {
	switch s := src.(type) {
	case theme.Builtin:
		return s.Symbol
	case theme.Path:
		return string(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// writeOutput writes data to path, or to stdout when path is empty
func writeOutput(path string, data string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(data), 0644)
}
