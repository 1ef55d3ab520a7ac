package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaharia-lab/vstyle/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnv(t *testing.T) string {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	return tempDir
}

func TestNewAppFilesystem(t *testing.T) {
	appCfg := &config.AppConfig{
		Name: "TestApp",
	}

	fs := NewAppFilesystem(appCfg)
	assert.NotNil(t, fs, "Filesystem should not be nil")
}

func TestEnsureAppDirectory(t *testing.T) {
	tempHome := setupTestEnv(t)

	fs := NewAppFilesystem(&config.AppConfig{Name: "TestApp"})

	appDir, err := fs.EnsureAppDirectory()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, ".testapp"), appDir, "App directory path should match expected path")

	info, err := os.Stat(appDir)
	require.NoError(t, err, "Should be able to stat the app directory")
	assert.True(t, info.IsDir(), "App path should be a directory")

	appDirAgain, err := fs.EnsureAppDirectory()
	assert.NoError(t, err, "Second call should not return an error")
	assert.Equal(t, appDir, appDirAgain)
}

func TestEnsureAllPaths(t *testing.T) {
	tempHome := setupTestEnv(t)

	fs := NewAppFilesystem(&config.AppConfig{Name: "TestApp"})

	paths, err := fs.EnsureAllPaths()
	require.NoError(t, err, "EnsureAllPaths should not return an error")

	expectedAppDir := filepath.Join(tempHome, ".testapp")

	pathTests := []struct {
		pathType     PathType
		expectedPath string
		isDir        bool
	}{
		{AppDirectory, expectedAppDir, true},
		{ConfigDirectory, filepath.Join(expectedAppDir, "config"), true},
		{LogsDirectory, filepath.Join(expectedAppDir, "logs"), true},
		{ResourcesDirectory, filepath.Join(expectedAppDir, "resources"), true},
		{ConfigFilePath, filepath.Join(expectedAppDir, "config", "config.yaml"), false},
		{LogsFilePath, filepath.Join(expectedAppDir, "logs", "testapp.log"), false},
	}

	for _, tt := range pathTests {
		t.Run(string(tt.pathType), func(t *testing.T) {
			assert.Equal(t, tt.expectedPath, paths[tt.pathType])

			info, err := os.Stat(tt.expectedPath)
			require.NoError(t, err, "Path should exist")
			assert.Equal(t, tt.isDir, info.IsDir())
		})
	}

	require.NoError(t, os.WriteFile(paths[ConfigFilePath], []byte("theme: RED\n"), 0644))
	_, err = fs.EnsureAllPaths()
	require.NoError(t, err)

	data, err := os.ReadFile(paths[ConfigFilePath])
	require.NoError(t, err)
	assert.Equal(t, "theme: RED\n", string(data), "existing config must not be truncated")
}

func TestCleanResources(t *testing.T) {
	root := filepath.Join(t.TempDir(), "resources")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "old"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "old", "a.svg"), []byte("x"), 0644))

	require.NoError(t, CleanResources(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewEphemeralDir(t *testing.T) {
	root := t.TempDir()

	a, err := NewEphemeralDir(root)
	require.NoError(t, err)
	b, err := NewEphemeralDir(root)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, root, filepath.Dir(a))
	assert.DirExists(t, a)
	assert.DirExists(t, b)
}

func TestCreateEmptyDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "vstyle_resources")

	require.NoError(t, CreateEmptyDir(dir))
	assert.DirExists(t, dir)

	err := CreateEmptyDir(dir)
	assert.ErrorIs(t, err, ErrDirectoryExists)
}
