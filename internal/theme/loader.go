// Package theme loads VSCode color themes and resolves them against the
// color role registry.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shaharia-lab/vstyle/internal/color"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidThemeType is returned by Load for an unsupported source type
	ErrInvalidThemeType = errors.New("invalid type input to theme argument")
	// ErrMissingType is returned when a theme does not declare its type
	ErrMissingType = errors.New("theme has no type")
	// ErrUnknownBuiltin is returned for an unknown built-in theme symbol
	ErrUnknownBuiltin = errors.New("unknown built-in theme")
)

// Path is a theme file on disk
type Path string

// Descriptor is a parsed theme: its variant and the role overrides it declares
type Descriptor struct {
	Name   string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type   registry.Variant  `json:"type" yaml:"type"`
	Colors map[string]string `json:"colors" yaml:"colors"`
	// Source is the builtin symbol or file path the theme came from
	Source string `json:"-" yaml:"-"`
}

// ParseJSONC decodes JSON that may contain comments and trailing commas
func ParseJSONC(data []byte) (map[string]any, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	var out map[string]any
	if err := json.Unmarshal(std, &out); err != nil {
		return nil, fmt.Errorf("failed to decode theme JSON: %w", err)
	}
	return out, nil
}

// Parse decodes a JSONC theme document. The document must declare its type.
func Parse(data []byte) (*Descriptor, error) {
	props, err := ParseJSONC(data)
	if err != nil {
		return nil, err
	}
	return fromMap(props)
}

// Load reads a theme from a Builtin, a file path (string or Path), a decoded
// map or a Descriptor.
func Load(src any) (*Descriptor, error) {
	switch s := src.(type) {
	case Builtin:
		return loadBuiltin(s)
	case *Builtin:
		if s == nil {
			return nil, ErrInvalidThemeType
		}
		return loadBuiltin(*s)
	case string:
		return loadFile(s)
	case Path:
		return loadFile(string(s))
	case map[string]any:
		return fromMap(s)
	case Descriptor:
		return validate(&s)
	case *Descriptor:
		if s == nil {
			return nil, ErrInvalidThemeType
		}
		d := *s
		return validate(&d)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidThemeType, src)
	}
}

func loadBuiltin(b Builtin) (*Descriptor, error) {
	data, err := b.Source()
	if err != nil {
		return nil, err
	}
	props, err := ParseJSONC(data)
	if err != nil {
		return nil, fmt.Errorf("built-in theme %s: %w", b.Symbol, err)
	}
	props["type"] = string(b.Type)
	if _, ok := props["name"]; !ok {
		props["name"] = b.Name
	}

	d, err := fromMap(props)
	if err != nil {
		return nil, err
	}
	d.Source = b.Symbol
	return d, nil
}

func loadFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

func fromMap(props map[string]any) (*Descriptor, error) {
	d := &Descriptor{Colors: map[string]string{}}

	if name, ok := props["name"].(string); ok {
		d.Name = name
	}

	rawType, ok := props["type"]
	if !ok || rawType == nil {
		return nil, ErrMissingType
	}
	typeName, ok := rawType.(string)
	if !ok {
		return nil, fmt.Errorf("theme type must be a string, got %T", rawType)
	}
	d.Type = registry.Variant(typeName)

	if rawColors, ok := props["colors"]; ok && rawColors != nil {
		colors, ok := rawColors.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("theme colors must be an object, got %T", rawColors)
		}
		for id, v := range colors {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("color %q must be a string, got %T", id, v)
			}
			d.Colors[id] = s
		}
	}

	return validate(d)
}

func validate(d *Descriptor) (*Descriptor, error) {
	if d.Type == "" {
		return nil, ErrMissingType
	}
	v, err := registry.ParseVariant(string(d.Type))
	if err != nil {
		return nil, err
	}
	d.Type = v
	if d.Colors == nil {
		d.Colors = map[string]string{}
	}
	return d, nil
}

// LoadCustomColors reads role overrides from a YAML or JSON(C) file. The file
// is a flat object of role id to color value.
func LoadCustomColors(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read custom colors: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var colors map[string]string
		if err := yaml.Unmarshal(data, &colors); err != nil {
			return nil, fmt.Errorf("failed to parse custom colors %s: %w", path, err)
		}
		if colors == nil {
			colors = map[string]string{}
		}
		return colors, nil
	default:
		raw, err := ParseJSONC(data)
		if err != nil {
			return nil, fmt.Errorf("custom colors %s: %w", path, err)
		}
		colors := make(map[string]string, len(raw))
		for id, v := range raw {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("custom color %q must be a string, got %T", id, v)
			}
			colors[id] = s
		}
		return colors, nil
	}
}

// Merge returns the theme colors overlaid by custom, which wins on conflicts
func (d *Descriptor) Merge(custom map[string]string) map[string]string {
	merged := make(map[string]string, len(d.Colors)+len(custom))
	for id, v := range d.Colors {
		merged[id] = v
	}
	for id, v := range custom {
		merged[id] = v
	}
	return merged
}

// Resolved is a theme evaluated against a registry base
type Resolved struct {
	Variant registry.Variant
	Colors  map[string]*color.Color
	// Dropped lists the theme colors that did not override any role
	Dropped []registry.DroppedOverride
}

// Resolve applies the theme and custom colors to a fresh overlay of base and
// evaluates every role for the theme's variant.
func Resolve(base *registry.Base, d *Descriptor, custom map[string]string) (*Resolved, error) {
	reg := base.NewRegistry()

	merged := d.Merge(custom)
	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		reg.Override(id, registry.ParseValue(merged[id]), d.Type)
	}

	colors, err := reg.Resolve(d.Type)
	if err != nil {
		return nil, err
	}
	return &Resolved{Variant: d.Type, Colors: colors, Dropped: reg.Dropped()}, nil
}
