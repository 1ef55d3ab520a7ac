// Package registry resolves the declarative color role graph of a theme.
//
// A Base holds the default expression of every role for each variant. It is
// built once, frozen, and shared read-only. Each theme load creates a
// Registry overlay from the base, applies the theme's overrides and resolves
// every role to a concrete color.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Variant is a theme mode
type Variant string

const (
	// Dark is the dark theme variant
	Dark Variant = "dark"
	// Light is the light theme variant
	Light Variant = "light"
	// HighContrast is the high-contrast theme variant
	HighContrast Variant = "hc"
)

// Variants lists every variant in registration order
var Variants = []Variant{Dark, Light, HighContrast}

var (
	// ErrUnknownVariant is returned for a variant other than dark, light or hc
	ErrUnknownVariant = errors.New("unknown theme variant")
	// ErrFrozen is returned when registering into a frozen base
	ErrFrozen = errors.New("registry base is frozen")
	// ErrDuplicateRole is returned when a role id is registered twice
	ErrDuplicateRole = errors.New("color role already registered")
	// ErrUnknownRole is returned when resolving or referencing an unregistered role
	ErrUnknownRole = errors.New("unknown color role")
	// ErrCycle is returned when role references form a cycle
	ErrCycle = errors.New("color role reference cycle")
)

// ParseVariant parses dark, light or hc
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case Dark, Light, HighContrast:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Defaults holds the default expression of one role per variant
type Defaults struct {
	Dark  Expr
	Light Expr
	HC    Expr
}

// Same uses one expression for every variant
func Same(e Expr) Defaults {
	return Defaults{Dark: e, Light: e, HC: e}
}

func (d Defaults) forVariant(v Variant) Expr {
	switch v {
	case Dark:
		return d.Dark
	case Light:
		return d.Light
	case HighContrast:
		return d.HC
	}
	return nil
}

// Base is the table of default role expressions
type Base struct {
	ids      []string
	defaults map[string]Defaults
	frozen   bool
}

// NewBase creates an empty, writable base
func NewBase() *Base {
	return &Base{defaults: make(map[string]Defaults)}
}

// Register installs the defaults of a role and returns a reference to it
func (b *Base) Register(id string, d Defaults) (Ref, error) {
	if b.frozen {
		return "", fmt.Errorf("%w: cannot register %q", ErrFrozen, id)
	}
	if id == "" {
		return "", fmt.Errorf("color role id is required")
	}
	if _, exists := b.defaults[id]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateRole, id)
	}
	b.ids = append(b.ids, id)
	b.defaults[id] = d
	return Ref(id), nil
}

// MustRegister is like Register but panics on error
func (b *Base) MustRegister(id string, d Defaults) Ref {
	ref, err := b.Register(id, d)
	if err != nil {
		panic(err)
	}
	return ref
}

// Freeze makes the base read-only and returns it
func (b *Base) Freeze() *Base {
	b.frozen = true
	return b
}

// Frozen reports whether the base is read-only
func (b *Base) Frozen() bool {
	return b.frozen
}

// IDs returns the role ids in registration order
func (b *Base) IDs() []string {
	ids := make([]string, len(b.ids))
	copy(ids, b.ids)
	return ids
}

// Has reports whether the role is registered
func (b *Base) Has(id string) bool {
	_, ok := b.defaults[id]
	return ok
}

// Default returns the default expression of a role for a variant
func (b *Base) Default(id string, v Variant) (Expr, bool) {
	d, ok := b.defaults[id]
	if !ok {
		return nil, false
	}
	return d.forVariant(v), true
}

// NewRegistry creates a per-load overlay on top of the base
func (b *Base) NewRegistry() *Registry {
	return &Registry{
		base:      b,
		overrides: make(map[Variant]map[string]Expr, len(Variants)),
	}
}

var (
	defaultBase *Base
	defaultOnce sync.Once
)

// Default returns the frozen VSCode default role table, built on first use
func Default() *Base {
	defaultOnce.Do(func() {
		b := NewBase()
		registerVSCodeDefaults(b)
		defaultBase = b.Freeze()
	})
	return defaultBase
}
