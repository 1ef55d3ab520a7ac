package console

import (
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Theme defines the interface for theming in the application
type Theme interface {
	Primary() StylePrinter
	Secondary() StylePrinter
	Success() StylePrinter
	Error() StylePrinter
	Warning() StylePrinter
	Info() StylePrinter
	Subtle() StylePrinter

	// Custom returns a custom style by name
	Custom(name string) StylePrinter

	// IsEnabled reports if colors are enabled
	IsEnabled() bool
}

// Name identifies a console theme
type Name string

const (
	Default      Name = "default"
	Professional Name = "professional"
	ModernDark   Name = "modern-dark"
)

// DefaultTheme represents the default theme implementation
type DefaultTheme struct {
	primary   *Style
	secondary *Style
	success   *Style
	error     *Style
	warning   *Style
	info      *Style
	subtle    *Style
	custom    map[string]*Style
	mu        sync.RWMutex
}

// NewDefaultTheme creates a new default theme
func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgHiCyan, 0, color.Bold),
		secondary: NewStyle(color.FgBlue, 0),
		success:   NewStyle(color.FgGreen, 0, color.Bold),
		error:     NewStyle(color.FgRed, 0, color.Bold),
		warning:   NewStyle(color.FgYellow, 0),
		info:      NewStyle(color.FgWhite, 0),
		subtle:    NewStyle(color.FgHiBlack, 0),
		custom:    make(map[string]*Style),
	}
}

// NewProfessionalTheme creates a new professional theme
func NewProfessionalTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgBlue, 0, color.Bold),
		secondary: NewStyle(color.FgHiBlue, 0),
		success:   NewStyle(color.FgGreen, 0),
		error:     NewStyle(color.FgRed, 0),
		warning:   NewStyle(color.FgYellow, 0),
		info:      NewStyle(color.FgWhite, 0),
		subtle:    NewStyle(color.FgHiBlack, 0),
		custom:    make(map[string]*Style),
	}
}

// NewModernDarkTheme creates a new modern dark theme
func NewModernDarkTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgHiBlue, 0),
		secondary: NewStyle(color.FgBlue, 0),
		success:   NewStyle(color.FgHiGreen, 0),
		error:     NewStyle(color.FgHiRed, 0),
		warning:   NewStyle(color.FgHiYellow, 0),
		info:      NewStyle(color.FgHiWhite, 0),
		subtle:    NewStyle(color.FgWhite, 0),
		custom:    make(map[string]*Style),
	}
}

// ThemeByName returns the named theme, falling back to the professional one
func ThemeByName(name string) *DefaultTheme {
	switch Name(strings.ToLower(name)) {
	case Default:
		return NewDefaultTheme()
	case ModernDark:
		return NewModernDarkTheme()
	default:
		return NewProfessionalTheme()
	}
}

func (t *DefaultTheme) Primary() StylePrinter   { return t.primary }
func (t *DefaultTheme) Secondary() StylePrinter { return t.secondary }
func (t *DefaultTheme) Success() StylePrinter   { return t.success }
func (t *DefaultTheme) Error() StylePrinter     { return t.error }
func (t *DefaultTheme) Warning() StylePrinter   { return t.warning }
func (t *DefaultTheme) Info() StylePrinter      { return t.info }
func (t *DefaultTheme) Subtle() StylePrinter    { return t.subtle }

// Custom returns a custom style by name
func (t *DefaultTheme) Custom(name string) StylePrinter {
	t.mu.RLock()
	defer t.mu.RUnlock()

	style, ok := t.custom[name]
	if !ok {
		return t.info // Fallback to info style if custom not found
	}
	return style
}

// RegisterCustomStyle registers a new custom style
func (t *DefaultTheme) RegisterCustomStyle(name string, style *Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.custom[name] = style
}

// IsEnabled reports if colors are enabled
func (t *DefaultTheme) IsEnabled() bool {
	return !color.NoColor
}
