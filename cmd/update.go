package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/config"
	"github.com/shaharia-lab/vstyle/internal/console"
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates a new update command
func NewUpdateCmd(c *cli.Container) *cobra.Command {
	updateCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "update",
		Short:   "Check for updates and update the CLI",
		Long:    "Check for updates and if a new version is available, download and install it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(c.Console, c.Config.Repository, c.Config.Version.Version)
		},
	}

	return updateCmd
}

func runUpdate(out *console.Manager, repository config.Repository, currentAppVersion string) error {
	out.Info("Checking for updates for %s/%s... [Current version: %s]",
		repository.Owner,
		repository.Repo,
		currentAppVersion,
	)

	latest, found, err := selfupdate.DetectLatest(fmt.Sprintf("%s/%s", repository.Owner, repository.Repo))
	if err != nil {
		return fmt.Errorf("error detecting version: %w", err)
	}

	if latest == nil {
		out.Warning("No updates found")
		return nil
	}

	currentVersionNoV := strings.TrimPrefix(currentAppVersion, "v")
	latestVersionNoV := strings.TrimPrefix(latest.Version.String(), "v")

	if !found || latestVersionNoV == currentVersionNoV {
		out.Info("Current version (%s) is the latest", currentAppVersion)
		return nil
	}

	out.Info("New version available: %s (current: %s)", latest.Version, currentAppVersion)
	out.Hint("Release notes:\n%s", latest.ReleaseNotes)

	proceed := false
	if err := survey.AskOne(&survey.Confirm{Message: "Do you want to update?"}, &proceed); err != nil {
		return err
	}
	if !proceed {
		out.Info("Update cancelled")
		return nil
	}

	out.Info("Downloading and installing update...")
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("error updating binary: %w", err)
	}

	out.Success("Successfully updated to version %s", latest.Version)
	return nil
}
