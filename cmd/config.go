package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/config"
	"github.com/shaharia-lab/vstyle/internal/filesystem"
	"github.com/shaharia-lab/vstyle/internal/logger"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates a config command
func NewConfigCmd(c *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "config",
		Short:   "Manage vstyle configuration",
		Long:    `Commands to manage and view your vstyle configuration.`,
	}

	cfgCmd.AddCommand(NewConfigPreviewCmd(c), NewConfigInitCmd(c))
	return cfgCmd
}

// NewConfigPreviewCmd creates a command to preview the config file
func NewConfigPreviewCmd(c *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the current configuration file",
		Long:  `Display the content of your vstyle configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := c.Paths[filesystem.ConfigFilePath]
			configData, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("error reading config file: %w", err)
			}

			color.New(color.FgHiCyan, color.Bold).Println("\n📄 Configuration File")
			color.New(color.FgHiWhite).Printf("Located at: %s\n\n", configPath)

			if len(configData) == 0 {
				c.Console.Hint("The file is empty, defaults apply. Run 'vstyle config init' to create it.")
				return nil
			}
			fmt.Println(string(configData))
			return nil
		},
	}

	return cmd
}

// NewConfigInitCmd creates an interactive wizard that writes the config file
func NewConfigInitCmd(c *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file with a guided setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Info("Starting configuration wizard", nil)

			settings, err := askSettings(c.Settings)
			if err != nil {
				c.Logger.Error("configuration wizard failed", map[string]interface{}{"error": err.Error()})
				return err
			}

			path := c.Paths[filesystem.ConfigFilePath]
			if err := config.SaveSettings(path, settings); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			c.Logger.Info("Configuration saved", map[string]interface{}{"path": path})
			c.Console.Success("Configuration saved to %s", path)
			c.Console.Hint("Run 'vstyle render' to print the stylesheet for %s.", settings.Theme)
			return nil
		},
	}
}

func askSettings(current config.Settings) (config.Settings, error) {
	settings := current

	var symbols []string
	for _, b := range theme.Builtins() {
		symbols = append(symbols, b.Symbol)
	}
	defaultTheme := theme.DefaultBuiltin.Symbol
	if b, err := theme.LookupBuiltin(current.Theme); err == nil {
		defaultTheme = b.Symbol
	}

	promptTheme := &survey.Select{
		Message: "Choose the default theme:",
		Options: symbols,
		Default: defaultTheme,
		Description: func(value string, index int) string {
			if b, err := theme.LookupBuiltin(value); err == nil {
				return b.Name
			}
			return ""
		},
	}
	if err := survey.AskOne(promptTheme, &settings.Theme); err != nil {
		return current, err
	}

	promptCustom := &survey.Input{
		Message: "Path of a custom colors file (optional):",
		Default: current.CustomColorsPath,
		Help:    "A YAML or JSON object mapping color ids to values, applied on top of the theme",
	}
	if err := survey.AskOne(promptCustom, &settings.CustomColorsPath, survey.WithValidator(optionalFile)); err != nil {
		return current, err
	}

	promptToolkit := &survey.Input{
		Message: "Qt version the stylesheets target (optional):",
		Default: current.ToolkitVersion,
		Help:    "Leave empty to apply the patches for the newest Qt",
	}
	if err := survey.AskOne(promptToolkit, &settings.ToolkitVersion); err != nil {
		return current, err
	}

	promptLevel := &survey.Select{
		Message: "Log level:",
		Options: []string{
			string(logger.DebugLevel),
			string(logger.InfoLevel),
			string(logger.WarnLevel),
			string(logger.ErrorLevel),
		},
		Default: string(logger.ParseLevel(current.Log.Level)),
	}
	if err := survey.AskOne(promptLevel, &settings.Log.Level); err != nil {
		return current, err
	}

	return settings, nil
}

func optionalFile(ans interface{}) error {
	path, _ := ans.(string)
	if path == "" {
		return nil
	}
	if _, err := theme.LoadCustomColors(path); err != nil {
		return err
	}
	return nil
}
