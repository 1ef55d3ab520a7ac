package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaharia-lab/vstyle/internal/filesystem"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	c, err := NewContainer(InitOptions{Version: "1.0.0", Commit: "abc", Date: "today"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Logger.Sync() })
	return c
}

func TestNewContainerValidation(t *testing.T) {
	_, err := NewContainer(InitOptions{Commit: "abc", Date: "today"})
	assert.Error(t, err)
	_, err = NewContainer(InitOptions{Version: "1", Date: "today"})
	assert.Error(t, err)
	_, err = NewContainer(InitOptions{Version: "1", Commit: "abc"})
	assert.Error(t, err)
}

func TestNewContainer(t *testing.T) {
	c := newTestContainer(t)

	assert.Equal(t, "vstyle", c.Config.Name)
	assert.Equal(t, "DARK_VS", c.Settings.Theme)
	assert.NotNil(t, c.Console)
	assert.FileExists(t, c.Paths[filesystem.ConfigFilePath])
	assert.DirExists(t, c.Paths[filesystem.ResourcesDirectory])
}

func TestThemeSource(t *testing.T) {
	c := newTestContainer(t)

	src, err := c.ThemeSource("", "")
	require.NoError(t, err)
	assert.Equal(t, theme.DarkVS, src)

	src, err = c.ThemeSource("monokai", "")
	require.NoError(t, err)
	assert.Equal(t, theme.Monokai, src)

	src, err = c.ThemeSource("monokai", "/tmp/theme.json")
	require.NoError(t, err)
	assert.Equal(t, theme.Path("/tmp/theme.json"), src)

	c.Settings.Theme = "ABYSS"
	src, err = c.ThemeSource("", "")
	require.NoError(t, err)
	assert.Equal(t, theme.Abyss, src)

	_, err = c.ThemeSource("nope", "")
	assert.ErrorIs(t, err, theme.ErrUnknownBuiltin)
}

func TestCustomColors(t *testing.T) {
	c := newTestContainer(t)

	colors, err := c.CustomColors("")
	require.NoError(t, err)
	assert.Nil(t, colors)

	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focusBorder: \"#ff0000\"\n"), 0644))
	c.Settings.CustomColorsPath = path

	colors, err = c.CustomColors("")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"focusBorder": "#ff0000"}, colors)
}

func TestNewEngine(t *testing.T) {
	c := newTestContainer(t)

	e, err := c.NewEngine("")
	require.NoError(t, err)
	defer e.Close()

	out, err := e.LoadStylesheet(theme.DarkVS, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
