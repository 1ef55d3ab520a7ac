// Package filesystem manages the application home directory and the
// scratch directories recolored icons are written to.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shaharia-lab/vstyle/internal/config"
)

type PathType string

const (
	configYamlFileName = "config.yaml"
	resourcesDirName   = "resources"

	AppDirectory       PathType = "app"
	ConfigDirectory    PathType = "config"
	ConfigFilePath     PathType = "config_file"
	LogsDirectory      PathType = "logs"
	LogsFilePath       PathType = "log_file"
	ResourcesDirectory PathType = "resources"
)

// ErrDirectoryExists is returned by CreateEmptyDir when the target already exists
var ErrDirectoryExists = errors.New("directory already exists")

// Filesystem is a struct that contains the methods to interact with local storage.
type Filesystem struct {
	appCfg *config.AppConfig
}

// NewAppFilesystem creates a new Filesystem instance.
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	return &Filesystem{
		appCfg: appCfg,
	}
}

func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.EnsureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	for _, dir := range []PathType{ConfigDirectory, LogsDirectory, ResourcesDirectory} {
		p := filepath.Join(appDirectory, string(dir))
		if err := ensureDir(p); err != nil {
			return paths, err
		}
		paths[dir] = p
	}

	// create empty config file under config directory
	configFilePath := filepath.Join(paths[ConfigDirectory], configYamlFileName)
	if err := ensureFile(configFilePath); err != nil {
		return paths, err
	}
	paths[ConfigFilePath] = configFilePath

	logFilePath := filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	if err := ensureFile(logFilePath); err != nil {
		return paths, err
	}
	paths[LogsFilePath] = logFilePath

	return paths, nil
}

func (s *Filesystem) EnsureAppDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(homeDir, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))
	if err := ensureDir(appDir); err != nil {
		return "", err
	}
	return appDir, nil
}

// CleanResources empties the resources root, leaving the directory in place.
func CleanResources(root string) error {
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", root, err)
	}
	return ensureDir(root)
}

// NewEphemeralDir creates a uniquely named directory under root
func NewEphemeralDir(root string) (string, error) {
	dir := filepath.Join(root, "temp"+strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ephemeral directory: %w", err)
	}
	return dir, nil
}

// CreateEmptyDir creates dir and its parents. It fails with
// ErrDirectoryExists when dir is already present.
func CreateEmptyDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, dir)
	}
	return os.MkdirAll(dir, 0755)
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		return f.Close()
	}
	return nil
}
