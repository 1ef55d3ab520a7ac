package cli

import (
	"fmt"

	"github.com/shaharia-lab/vstyle/internal/config"
	"github.com/shaharia-lab/vstyle/internal/console"
	"github.com/shaharia-lab/vstyle/internal/engine"
	"github.com/shaharia-lab/vstyle/internal/filesystem"
	"github.com/shaharia-lab/vstyle/internal/logger"
	"github.com/shaharia-lab/vstyle/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.AppConfig
	Filesystem *filesystem.Filesystem
	Paths      map[filesystem.PathType]string
	Settings   config.Settings
	Logger     logger.Logger
	Console    *console.Manager
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version string
	Commit  string
	Date    string
	// LogLevel overrides the level from the settings file
	LogLevel logger.LogLevel
	Theme    console.Theme
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	container := &Container{}
	var err error

	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}

	if opts.Commit == "" {
		return nil, fmt.Errorf("commit is required")
	}

	if opts.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	if opts.Theme == nil {
		opts.Theme = console.NewProfessionalTheme()
	}

	container.Config = config.NewDefaultConfig(
		config.WithVersion(config.Version{
			Version: opts.Version,
			Commit:  opts.Commit,
			Date:    opts.Date,
		}),
	)

	container.Console = console.NewManager(opts.Theme, container.Config, nil)

	container.Filesystem = filesystem.NewAppFilesystem(container.Config)

	container.Paths, err = container.Filesystem.EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	if container.Paths[filesystem.ConfigFilePath] == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	container.Settings, err = config.LoadSettings(container.Paths[filesystem.ConfigFilePath])
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	level := opts.LogLevel
	if level == "" {
		level = logger.ParseLevel(container.Settings.Log.Level)
	}

	container.Logger, err = logger.NewZapLogger(logger.Config{
		FilePath:   container.Paths[filesystem.LogsFilePath],
		LogLevel:   level,
		UseConsole: container.Settings.Log.Console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container.Logger.Debug("Logger initialized successfully", map[string]interface{}{
		"level": string(level),
		"file":  container.Paths[filesystem.LogsFilePath],
	})

	return container, nil
}

// NewEngine returns an engine writing its icons under the resources directory
func (c *Container) NewEngine(toolkitVersion string) (*engine.Engine, error) {
	if toolkitVersion == "" {
		toolkitVersion = c.Settings.ToolkitVersion
	}
	return engine.New(engine.Options{
		ResourcesDir:   c.Paths[filesystem.ResourcesDirectory],
		ToolkitVersion: toolkitVersion,
		Logger:         c.Logger.WithField("component", "engine"),
	})
}

// ThemeSource picks the theme to load: an explicit file, an explicit
// built-in symbol, the configured file, then the configured symbol.
func (c *Container) ThemeSource(symbol, file string) (any, error) {
	switch {
	case file != "":
		return theme.Path(file), nil
	case symbol != "":
		return theme.LookupBuiltin(symbol)
	case c.Settings.ThemeFile != "":
		return theme.Path(c.Settings.ThemeFile), nil
	case c.Settings.Theme != "":
		return theme.LookupBuiltin(c.Settings.Theme)
	default:
		return theme.DefaultBuiltin, nil
	}
}

// CustomColors reads the overrides at path, or at the configured path
func (c *Container) CustomColors(path string) (map[string]string, error) {
	if path == "" {
		path = c.Settings.CustomColorsPath
	}
	if path == "" {
		return nil, nil
	}
	return theme.LoadCustomColors(path)
}
