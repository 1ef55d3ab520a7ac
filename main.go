package main

import (
	"fmt"
	"os"

	"github.com/shaharia-lab/vstyle/cmd"
	"github.com/shaharia-lab/vstyle/internal/cli"
	"github.com/shaharia-lab/vstyle/internal/console"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version: version,
		Commit:  commit,
		Date:    date,
		Theme:   console.NewProfessionalTheme(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	log := container.Logger
	defer log.Sync()

	log.Debugf("%s started", container.Config.Name)

	rootCmd := cmd.NewRootCmd(container)
	rootCmd.AddCommand(
		cmd.NewBuildCmd(container),
		cmd.NewRenderCmd(container),
		cmd.NewListCmd(container),
		cmd.NewResolveCmd(container),
		cmd.NewConfigCmd(container),
		cmd.NewUpdateCmd(container),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error(fmt.Sprintf("%s exited with error", container.Config.Name), map[string]interface{}{"error": err.Error()})
		log.Sync()
		os.Exit(1)
	}

	log.Debugf("%s exited successfully", container.Config.Name)
}
