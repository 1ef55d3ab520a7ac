// Package engine ties the registry, theme loader and stylesheet builder
// together and owns the scratch directories the recolored icons live in.
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/shaharia-lab/vstyle/internal/color"
	"github.com/shaharia-lab/vstyle/internal/filesystem"
	"github.com/shaharia-lab/vstyle/internal/logger"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/shaharia-lab/vstyle/internal/stylesheet"
	"github.com/shaharia-lab/vstyle/internal/theme"
)

// ErrClosed is returned by loads on a closed engine
var ErrClosed = errors.New("engine is closed")

// Options configures an Engine
type Options struct {
	// ResourcesDir is the root the ephemeral icon directories are created in.
	// It is emptied by New.
	ResourcesDir string
	// Base defaults to registry.Default()
	Base           *registry.Base
	ToolkitVersion string
	Logger         logger.Logger
	// Palette receives the colors of every load. A new one is created when nil.
	Palette *theme.Palette
	// Template and Icons override the built-in stylesheet template and icon set
	Template string
	Icons    fs.FS
}

// Engine renders stylesheets. It is safe for concurrent use; loads are
// serialized.
type Engine struct {
	// publishMu orders loads with their palette notifications. mu guards the
	// state below and is never held while subscribers run.
	publishMu sync.Mutex
	mu        sync.Mutex

	base     *registry.Base
	root     string
	toolkit  string
	log      logger.Logger
	palette  *theme.Palette
	template string
	icons    fs.FS

	current string
	colors  map[string]*color.Color
	variant registry.Variant
	closed  bool
}

// New prepares the resources root and returns an engine
func New(opts Options) (*Engine, error) {
	if opts.ResourcesDir == "" {
		return nil, fmt.Errorf("resources directory is required")
	}
	if opts.Base == nil {
		opts.Base = registry.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard
	}
	if opts.Palette == nil {
		opts.Palette = theme.NewPalette()
	}

	if err := filesystem.CleanResources(opts.ResourcesDir); err != nil {
		return nil, fmt.Errorf("failed to prepare resources directory: %w", err)
	}

	return &Engine{
		base:     opts.Base,
		root:     opts.ResourcesDir,
		toolkit:  opts.ToolkitVersion,
		log:      opts.Logger,
		palette:  opts.Palette,
		template: opts.Template,
		icons:    opts.Icons,
	}, nil
}

// LoadStylesheet renders the stylesheet for src, anything theme.Load
// accepts, with custom overriding the theme's colors. Icons are written to a
// fresh directory that replaces the one of the previous load.
func (e *Engine) LoadStylesheet(src any, custom map[string]string) (string, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	out, colors, err := e.loadEphemeral(src, custom)
	if err != nil {
		return "", err
	}
	e.palette.Publish(colors)
	return out, nil
}

func (e *Engine) loadEphemeral(src any, custom map[string]string) (string, map[string]*color.Color, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", nil, ErrClosed
	}

	dir, err := filesystem.NewEphemeralDir(e.root)
	if err != nil {
		return "", nil, err
	}

	out, colors, err := e.load(src, custom, dir, false)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			e.log.Warn("failed to remove icon directory", map[string]interface{}{"dir": dir, "error": rmErr.Error()})
		}
		return "", nil, err
	}

	if e.current != "" {
		if err := os.RemoveAll(e.current); err != nil {
			e.log.Warn("failed to remove previous icon directory", map[string]interface{}{"dir": e.current, "error": err.Error()})
		}
	}
	e.current = dir
	return out, colors, nil
}

// LoadsStylesheet is LoadStylesheet for theme JSON text, which may contain
// comments and trailing commas. The text must declare the theme type.
func (e *Engine) LoadsStylesheet(text string, custom map[string]string) (string, error) {
	d, err := theme.Parse([]byte(text))
	if err != nil {
		return "", err
	}
	return e.LoadStylesheet(d, custom)
}

// LoadStylesheetForDesigner renders a stylesheet whose icon urls use the
// designer resource prefix, writing the icons to dir.
func (e *Engine) LoadStylesheetForDesigner(src any, custom map[string]string, dir string) (string, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return "", ErrClosed
	}
	out, colors, err := e.load(src, custom, dir, true)
	e.mu.Unlock()
	if err != nil {
		return "", err
	}

	e.palette.Publish(colors)
	return out, nil
}

// load renders under e.mu. Subscribers are notified by the caller after the
// lock is released, so they may call back into the engine.
func (e *Engine) load(src any, custom map[string]string, dir string, designer bool) (string, map[string]*color.Color, error) {
	d, err := theme.Load(src)
	if err != nil {
		return "", nil, err
	}

	res, err := theme.Resolve(e.base, d, custom)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve theme %s: %w", d.Source, err)
	}
	for _, drop := range res.Dropped {
		e.log.Warn("color override ignored", map[string]interface{}{
			"theme":   d.Source,
			"id":      drop.ID,
			"variant": string(drop.Variant),
		})
	}

	out, err := stylesheet.Build(stylesheet.BuildOptions{
		Colors:         res.Colors,
		Variant:        res.Variant,
		OutputDir:      dir,
		Designer:       designer,
		ToolkitVersion: e.toolkit,
		Template:       e.template,
		Icons:          e.icons,
		Logger:         e.log,
	})
	if err != nil {
		return "", nil, err
	}

	e.colors = res.Colors
	e.variant = res.Variant

	e.log.Info("stylesheet loaded", map[string]interface{}{
		"theme":    d.Source,
		"variant":  string(res.Variant),
		"custom":   len(custom),
		"dropped":  len(res.Dropped),
		"designer": designer,
	})
	return out, res.Colors, nil
}

// CurrentColors returns a copy of the colors of the last successful load
func (e *Engine) CurrentColors() map[string]*color.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]*color.Color, len(e.colors))
	for id, c := range e.colors {
		out[id] = c
	}
	return out
}

// Variant returns the variant of the last successful load
func (e *Engine) Variant() registry.Variant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.variant
}

// Palette returns the palette icons subscribe to
func (e *Engine) Palette() *theme.Palette {
	return e.palette
}

// IconDir returns the icon directory of the last LoadStylesheet
func (e *Engine) IconDir() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Close removes the current icon directory. Stylesheets loaded before Close
// reference files that no longer exist.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	if e.current == "" {
		return nil
	}
	err := os.RemoveAll(e.current)
	e.current = ""
	return err
}
