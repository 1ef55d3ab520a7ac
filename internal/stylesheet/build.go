// Package stylesheet renders the widget stylesheet template for a set of
// resolved role colors and writes the recolored icons it references.
package stylesheet

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/shaharia-lab/vstyle/internal/color"
	"github.com/shaharia-lab/vstyle/internal/logger"
	"github.com/shaharia-lab/vstyle/internal/registry"
)

// DefaultToolkitVersion is assumed when the toolkit version is unknown, so
// that every patch for the newest toolkit applies.
const DefaultToolkitVersion = "10.0.0"

// DesignerPrefix is the resource prefix of icons in designer mode
const DesignerPrefix = ":/vscode/"

var (
	// ErrInvalidQualifier is returned for an env_patch version without a known operator
	ErrInvalidQualifier = errors.New("invalid character in qualifier")
	// ErrInvalidDirective is returned for a directive whose body is not valid JSON
	ErrInvalidDirective = errors.New("invalid template directive")
	// ErrUnknownIcon is returned when a url directive names an icon that does not exist
	ErrUnknownIcon = errors.New("unknown icon")
	// ErrUnknownColor is returned when a url directive names a role without a color entry
	ErrUnknownColor = errors.New("unknown color role")
	// ErrPlaceholderCollision is returned when two role ids map to the same placeholder
	ErrPlaceholderCollision = errors.New("color roles share a placeholder")
)

//go:embed template.qss
var defaultTemplate string

//go:embed icons/*.svg
var iconFiles embed.FS

// DefaultTemplate returns the built-in stylesheet template
func DefaultTemplate() string {
	return defaultTemplate
}

// DefaultIcons returns the built-in icon set
func DefaultIcons() fs.FS {
	sub, err := fs.Sub(iconFiles, "icons")
	if err != nil {
		panic(err)
	}
	return sub
}

// IconNames lists the svg files of an icon set
func IconNames(icons fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(icons, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".svg") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// BuildOptions configures a stylesheet build
type BuildOptions struct {
	// Colors are the resolved roles keyed by role id
	Colors  map[string]*color.Color
	Variant registry.Variant
	// OutputDir receives the recolored icons
	OutputDir string
	// Designer emits url(:/vscode/<file>) instead of absolute paths
	Designer bool
	// ToolkitVersion is compared against env_patch qualifiers
	ToolkitVersion string
	// Template overrides the built-in template
	Template string
	// Icons overrides the built-in icon set
	Icons  fs.FS
	Logger logger.Logger
}

// Build renders the stylesheet. Patches are applied first, then the
// referenced icons are recolored into OutputDir, then role placeholders and
// url directives are substituted.
func Build(opts BuildOptions) (string, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	icons := opts.Icons
	if icons == nil {
		icons = DefaultIcons()
	}
	versionText := opts.ToolkitVersion
	if versionText == "" {
		versionText = DefaultToolkitVersion
	}
	toolkit, err := semver.NewVersion(versionText)
	if err != nil {
		return "", fmt.Errorf("invalid toolkit version %q: %w", versionText, err)
	}

	typeRepl, err := typePatches(tmpl, opts.Variant)
	if err != nil {
		return "", err
	}
	envRepl, err := envPatches(tmpl, toolkit)
	if err != nil {
		return "", err
	}
	patches := make(map[string]string, len(typeRepl)+len(envRepl))
	for k, v := range typeRepl {
		patches[k] = v
	}
	for k, v := range envRepl {
		patches[k] = v
	}
	tmpl = Replace(tmpl, patches)

	colors := make(map[string]*color.Color, len(opts.Colors))
	owners := make(map[string]string, len(opts.Colors))
	for id, c := range opts.Colors {
		key := PlaceholderKey(id)
		if prev, ok := owners[key]; ok {
			a, b := prev, id
			if b < a {
				a, b = b, a
			}
			return "", fmt.Errorf("%w: %s and %s both render as %s", ErrPlaceholderCollision, a, b, key)
		}
		owners[key] = id
		colors[key] = c
	}

	assets, directives, err := urls(tmpl)
	if err != nil {
		return "", err
	}
	if len(assets) > 0 {
		if err := writeAssets(icons, assets, colors, opts.OutputDir); err != nil {
			return "", err
		}
	}

	replacements := make(map[string]string, len(colors)+len(directives))
	for key, c := range colors {
		if c == nil {
			replacements[key] = ""
		} else {
			replacements[key] = c.String()
		}
	}
	for directive, asset := range directives {
		target, err := assetURL(opts.OutputDir, asset, opts.Designer)
		if err != nil {
			return "", err
		}
		replacements[directive] = "url(" + target + ")"
	}

	log.Debug("stylesheet built", map[string]interface{}{
		"variant":  string(opts.Variant),
		"toolkit":  toolkit.String(),
		"patches":  len(patches),
		"icons":    len(assets),
		"designer": opts.Designer,
	})
	return Replace(tmpl, replacements), nil
}

func assetURL(dir string, a Asset, designer bool) (string, error) {
	if designer {
		return DesignerPrefix + a.FileName(), nil
	}
	abs, err := filepath.Abs(filepath.Join(dir, a.FileName()))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// writeAssets writes every asset once, with its role color and rotation
func writeAssets(icons fs.FS, assets []Asset, colors map[string]*color.Color, dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is required for %d icons", len(assets))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create icon directory: %w", err)
	}

	sources := map[string]string{}
	for _, a := range assets {
		name := a.Icon
		if !strings.HasSuffix(name, ".svg") {
			name += ".svg"
		}

		src, ok := sources[name]
		if !ok {
			data, err := fs.ReadFile(icons, path.Clean(name))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%w: %s", ErrUnknownIcon, a.Icon)
				}
				return fmt.Errorf("failed to read icon %s: %w", a.Icon, err)
			}
			src = string(data)
			sources[name] = src
		}

		c, ok := colors[a.ColorKey()]
		if !ok {
			return fmt.Errorf("%w: %q in url for %s", ErrUnknownColor, a.ID, a.Icon)
		}

		fill := color.SVGFill(c) + ` transform="rotate(` + a.Rotate + `, 8, 8)"`
		svg := strings.ReplaceAll(src, `fill="currentColor"`, fill)
		if err := os.WriteFile(filepath.Join(dir, a.FileName()), []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write icon %s: %w", a.FileName(), err)
		}
	}
	return nil
}
