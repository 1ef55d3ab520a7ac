package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shaharia-lab/vstyle/internal/config"
)

// Manager prints styled output for the CLI
type Manager struct {
	theme  Theme
	appCfg *config.AppConfig
	out    io.Writer
}

// NewManager creates a new console manager. Tables go to out, which
// defaults to color.Output.
func NewManager(t Theme, appCfg *config.AppConfig, out io.Writer) *Manager {
	if out == nil {
		out = color.Output
	}
	return &Manager{
		theme:  t,
		appCfg: appCfg,
		out:    out,
	}
}

// GetCurrentTheme returns the currently active theme
func (m *Manager) GetCurrentTheme() Theme {
	return m.theme
}

// Welcome prints the application banner
func (m *Manager) Welcome() {
	m.DisplayBanner(fmt.Sprintf("Welcome to %s", m.appCfg.Name), 40, "VSCode themes for Qt widgets", m.appCfg.Version.VersionText())
}

// DisplayBanner prints a styled banner with the given title and optional subtitle
func (m *Manager) DisplayBanner(title string, width int, subtitle ...string) {
	primary := m.theme.Primary()
	secondary := m.theme.Secondary()

	if width < len(title)+4 {
		width = len(title) + 4
	}
	for _, sub := range subtitle {
		if len(sub)+4 > width {
			width = len(sub) + 4
		}
	}

	primary.Println("╔" + strings.Repeat("═", width-2) + "╗")
	primary.Println(centered(title, width))

	if len(subtitle) > 0 {
		primary.Println("║" + strings.Repeat("─", width-2) + "║")
		for _, sub := range subtitle {
			secondary.Println(centered(sub, width))
		}
	}

	primary.Println("╚" + strings.Repeat("═", width-2) + "╝")
}

// centered pads text between the side borders, the extra space going right
func centered(text string, width int) string {
	left := (width - len(text) - 2) / 2
	right := left
	if (width-len(text)-2)%2 != 0 {
		right++
	}
	return "║" + strings.Repeat(" ", left) + text + strings.Repeat(" ", right) + "║"
}

// Table renders rows under a bold header
func (m *Manager) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(m.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if m.theme.IsEnabled() {
		colors := make([]tablewriter.Colors, len(header))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
		}
		table.SetHeaderColor(colors...)
	}

	table.AppendBulk(rows)
	table.Render()
}

// Success prints a success message
func (m *Manager) Success(format string, a ...interface{}) {
	m.theme.Success().Println(fmt.Sprintf(format, a...))
}

// Info prints an informational message
func (m *Manager) Info(format string, a ...interface{}) {
	m.theme.Info().Println(fmt.Sprintf(format, a...))
}

// Warning prints a warning message
func (m *Manager) Warning(format string, a ...interface{}) {
	m.theme.Warning().Println(fmt.Sprintf(format, a...))
}

// Hint prints a subtle message
func (m *Manager) Hint(format string, a ...interface{}) {
	m.theme.Subtle().Println(fmt.Sprintf(format, a...))
}
