package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/shaharia-lab/vstyle/internal/registry"
)

//go:embed themes/*.json
var themeFiles embed.FS

// Builtin is a theme shipped with vstyle. VSCode's default theme files do
// not carry a type, so it is declared here.
type Builtin struct {
	Symbol   string
	Name     string
	FileName string
	Type     registry.Variant
}

var (
	LightVS           = Builtin{Symbol: "LIGHT_VS", Name: "Light (Visual Studio)", FileName: "light_vs.json", Type: registry.Light}
	QuietLight        = Builtin{Symbol: "QUIET_LIGHT", Name: "Quiet Light", FileName: "quietlight-color-theme.json", Type: registry.Light}
	SolarizedLight    = Builtin{Symbol: "SOLARIZED_LIGHT", Name: "Solarized Light", FileName: "solarized-light-color-theme.json", Type: registry.Light}
	Abyss             = Builtin{Symbol: "ABYSS", Name: "Abyss", FileName: "abyss_color_theme.json", Type: registry.Dark}
	DarkVS            = Builtin{Symbol: "DARK_VS", Name: "Dark (Visual Studio)", FileName: "dark_vs.json", Type: registry.Dark}
	KimbieDark        = Builtin{Symbol: "KIMBIE_DARK", Name: "Kimbie Dark", FileName: "kimbie-dark-color-theme.json", Type: registry.Dark}
	Monokai           = Builtin{Symbol: "MONOKAI", Name: "Monokai", FileName: "monokai-color-theme.json", Type: registry.Dark}
	MonokaiDimmed     = Builtin{Symbol: "MONOKAI_DIMMED", Name: "Monokai Dimmed", FileName: "dimmed-monokai-color-theme.json", Type: registry.Dark}
	Red               = Builtin{Symbol: "RED", Name: "Red", FileName: "Red-color-theme.json", Type: registry.Dark}
	SolarizedDark     = Builtin{Symbol: "SOLARIZED_DARK", Name: "Solarized Dark", FileName: "solarized_dark_color_theme.json", Type: registry.Dark}
	TomorrowNightBlue = Builtin{Symbol: "TOMORROW_NIGHT_BLUE", Name: "Tomorrow Night Blue", FileName: "tomorrow-night-blue-color-theme.json", Type: registry.Dark}
	DarkHighContrast  = Builtin{Symbol: "DARK_HIGH_CONTRAST", Name: "Dark High Contrast", FileName: "hc_black.json", Type: registry.HighContrast}
)

// DefaultBuiltin is used when no theme is configured
var DefaultBuiltin = DarkVS

var builtins = []Builtin{
	LightVS,
	QuietLight,
	SolarizedLight,
	Abyss,
	DarkVS,
	KimbieDark,
	Monokai,
	MonokaiDimmed,
	Red,
	SolarizedDark,
	TomorrowNightBlue,
	DarkHighContrast,
}

// Builtins returns every built-in theme
func Builtins() []Builtin {
	out := make([]Builtin, len(builtins))
	copy(out, builtins)
	return out
}

// LookupBuiltin finds a built-in theme by symbol. Matching ignores case and
// treats "-" like "_", so "dark-vs" finds DARK_VS.
func LookupBuiltin(symbol string) (Builtin, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(symbol), "-", "_"))
	for _, b := range builtins {
		if b.Symbol == key {
			return b, nil
		}
	}
	return Builtin{}, fmt.Errorf("%w: %q", ErrUnknownBuiltin, symbol)
}

// Source returns the raw theme file contents
func (b Builtin) Source() ([]byte, error) {
	data, err := themeFiles.ReadFile("themes/" + b.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in theme %s: %w", b.Symbol, err)
	}
	return data, nil
}

func (b Builtin) String() string {
	return b.Name
}
