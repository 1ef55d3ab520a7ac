package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/shaharia-lab/vstyle/internal/color"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/shaharia-lab/vstyle/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIcon = `<svg viewBox="0 0 16 16"><path d="M0 0" fill="currentColor"/></svg>`

func testIcons() fstest.MapFS {
	return fstest.MapFS{
		"arrow.svg": &fstest.MapFile{Data: []byte(testIcon)},
	}
}

func colorPtr(c color.Color) *color.Color { return &c }

func TestBuildTypePatch(t *testing.T) {
	tmpl := `QWidget { $type_patch{"types": "dark", "value": "color: red"}; }`

	dark, err := Build(BuildOptions{Template: tmpl, Variant: registry.Dark})
	require.NoError(t, err)
	assert.Equal(t, `QWidget { color: red; }`, dark)

	light, err := Build(BuildOptions{Template: tmpl, Variant: registry.Light})
	require.NoError(t, err)
	assert.Equal(t, `QWidget { ; }`, light)
}

func TestBuildTypePatchList(t *testing.T) {
	tmpl := `$type_patch{"types": "dark | hc", "value": ["a {", "  b: $fg;", "}"]};`

	out, err := Build(BuildOptions{
		Template: tmpl,
		Variant:  registry.HighContrast,
		Colors:   map[string]*color.Color{"fg": colorPtr(color.White())},
	})
	require.NoError(t, err)
	assert.Equal(t, "a {\n  b: rgba(255.000, 255.000, 255.000, 1.000);\n};", out)
}

func TestBuildEnvPatch(t *testing.T) {
	tmpl := `a: $env_patch{"version": ">=5.15.0", "value": "new"}|b: $env_patch{"version": "<5.15.0", "value": "old"}`

	tests := []struct {
		version string
		want    string
	}{
		{version: "5.15.2", want: "a: new|b: "},
		{version: "5.12.0", want: "a: |b: old"},
		{version: "", want: "a: new|b: "},
		{version: "6", want: "a: new|b: "},
	}
	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			out, err := Build(BuildOptions{Template: tmpl, Variant: registry.Dark, ToolkitVersion: tt.version})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMatchVersion(t *testing.T) {
	tests := []struct {
		qualifier string
		want      bool
	}{
		{"==5.15.0", true},
		{"!=5.15.0", false},
		{">=5.15.0", true},
		{"<=5.15.0", true},
		{">5.14", true},
		{"<5.14", false},
		{"> 6.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.qualifier, func(t *testing.T) {
			tmpl := `$env_patch{"version": "` + tt.qualifier + `", "value": "x"}`
			out, err := Build(BuildOptions{Template: tmpl, Variant: registry.Dark, ToolkitVersion: "5.15.0"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out == "x")
		})
	}
}

func TestBuildEnvPatchErrors(t *testing.T) {
	_, err := Build(BuildOptions{Template: `$env_patch{"version": "5.15.0", "value": "x"}`, Variant: registry.Dark})
	assert.ErrorIs(t, err, ErrInvalidQualifier)

	_, err = Build(BuildOptions{Template: `$env_patch{"version": ">=banana", "value": "x"}`, Variant: registry.Dark})
	assert.Error(t, err)

	_, err = Build(BuildOptions{Template: `$env_patch{version}`, Variant: registry.Dark})
	assert.ErrorIs(t, err, ErrInvalidDirective)

	_, err = Build(BuildOptions{Template: "x", Variant: registry.Dark, ToolkitVersion: "not-a-version"})
	assert.Error(t, err)
}

func TestBuildPlaceholders(t *testing.T) {
	tmpl := "$a_b; $a; $missing; $none"
	out, err := Build(BuildOptions{
		Template: tmpl,
		Variant:  registry.Dark,
		Colors: map[string]*color.Color{
			"a.b":  colorPtr(color.Red()),
			"a":    colorPtr(color.Blue()),
			"none": nil,
		},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"rgba(255.000, 0.000, 0.000, 1.000); rgba(0.000, 0.000, 255.000, 1.000); $missing; ",
		out)
}

func TestBuildPlaceholderCollision(t *testing.T) {
	_, err := Build(BuildOptions{
		Template: "$a_b_c",
		Variant:  registry.Dark,
		Colors: map[string]*color.Color{
			"a.b_c": colorPtr(color.Red()),
			"a_b.c": colorPtr(color.Blue()),
		},
	})
	require.ErrorIs(t, err, ErrPlaceholderCollision)
	assert.Contains(t, err.Error(), "a.b_c and a_b.c both render as $a_b_c")
}

func TestBuildURLs(t *testing.T) {
	dir := t.TempDir()
	tmpl := strings.Join([]string{
		`a { image: $url{"icon": "arrow.svg", "id": "icon.foreground", "rotate": 90}; }`,
		`b { image: $url{"icon": "arrow.svg", "id": "icon.foreground", "rotate": 90}; }`,
		`c { image: $url{"icon": "arrow", "id": "icon_foreground", "rotate": "0"}; }`,
	}, "\n")
	c := color.RGB(10, 20, 30).Transparent(0.5)

	out, err := Build(BuildOptions{
		Template:  tmpl,
		Variant:   registry.Dark,
		OutputDir: dir,
		Icons:     testIcons(),
		Colors:    map[string]*color.Color{"icon.foreground": &c},
	})
	require.NoError(t, err)

	rotated := filepath.ToSlash(filepath.Join(dir, "arrow_icon.foreground_90.svg"))
	assert.Equal(t, 2, strings.Count(out, "url("+rotated+")"), "duplicated url references one file")
	assert.Contains(t, out, "url("+filepath.ToSlash(filepath.Join(dir, "arrow_icon_foreground_0.svg"))+")")

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	data, err := os.ReadFile(filepath.Join(dir, "arrow_icon.foreground_90.svg"))
	require.NoError(t, err)
	assert.Equal(t,
		`<svg viewBox="0 0 16 16"><path d="M0 0" fill="rgb(10, 20, 30)" fill-opacity="0.5" transform="rotate(90, 8, 8)"/></svg>`,
		string(data))
}

func TestBuildDesignerURLs(t *testing.T) {
	dir := t.TempDir()
	out, err := Build(BuildOptions{
		Template:  `$url{"icon": "arrow.svg", "id": "fg", "rotate": 0}`,
		Variant:   registry.Light,
		OutputDir: dir,
		Designer:  true,
		Icons:     testIcons(),
		Colors:    map[string]*color.Color{"fg": nil},
	})
	require.NoError(t, err)
	assert.Equal(t, "url(:/vscode/arrow_fg_0.svg)", out)

	data, err := os.ReadFile(filepath.Join(dir, "arrow_fg_0.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `fill="" transform="rotate(0, 8, 8)"`)
}

func TestBuildURLErrors(t *testing.T) {
	colors := map[string]*color.Color{"fg": colorPtr(color.White())}

	_, err := Build(BuildOptions{
		Template: `$url{"icon": "missing.svg", "id": "fg", "rotate": 0}`, Variant: registry.Dark,
		OutputDir: t.TempDir(), Icons: testIcons(), Colors: colors,
	})
	assert.ErrorIs(t, err, ErrUnknownIcon)

	_, err = Build(BuildOptions{
		Template: `$url{"icon": "arrow.svg", "id": "bg", "rotate": 0}`, Variant: registry.Dark,
		OutputDir: t.TempDir(), Icons: testIcons(), Colors: colors,
	})
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = Build(BuildOptions{
		Template: `$url{"icon": "arrow.svg", "id": "fg"}`, Variant: registry.Dark,
		Icons: testIcons(), Colors: colors,
	})
	assert.Error(t, err, "no output directory")

	_, err = Build(BuildOptions{
		Template: `$url{"id": "fg"}`, Variant: registry.Dark,
		OutputDir: t.TempDir(), Icons: testIcons(), Colors: colors,
	})
	assert.ErrorIs(t, err, ErrInvalidDirective)
}

func TestBuildDefaultTemplate(t *testing.T) {
	for _, b := range []theme.Builtin{theme.DarkVS, theme.LightVS, theme.DarkHighContrast} {
		t.Run(b.Symbol, func(t *testing.T) {
			d, err := theme.Load(b)
			require.NoError(t, err)
			res, err := theme.Resolve(registry.Default(), d, nil)
			require.NoError(t, err)

			dir := t.TempDir()
			out, err := Build(BuildOptions{Colors: res.Colors, Variant: res.Variant, OutputDir: dir})
			require.NoError(t, err)

			assert.NotContains(t, out, "$")
			assert.Contains(t, out, "QPushButton")
			assert.Contains(t, out, "url("+filepath.ToSlash(dir))

			files, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.NotEmpty(t, files)

			if b.Type == registry.HighContrast {
				assert.Contains(t, out, "QPushButton:focus")
			} else {
				assert.NotContains(t, out, "QPushButton:focus")
			}
		})
	}
}

func TestIconNames(t *testing.T) {
	names, err := IconNames(DefaultIcons())
	require.NoError(t, err)
	assert.Contains(t, names, "chevron-down.svg")
	assert.Contains(t, names, "check.svg")
}
