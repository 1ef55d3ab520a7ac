package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shaharia-lab/vstyle/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestManager_DisplayBanner(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		width      int
		subtitle   []string
		setupMocks func(primaryMock *MockStylePrinter, secondaryMock *MockStylePrinter)
	}{
		{
			name:     "Basic title without subtitle",
			title:    "My App",
			width:    20,
			subtitle: []string{},
			setupMocks: func(primaryMock *MockStylePrinter, secondaryMock *MockStylePrinter) {
				primaryMock.On("Println", "╔══════════════════╗").Once()
				primaryMock.On("Println", "║      My App      ║").Once()
				primaryMock.On("Println", "╚══════════════════╝").Once()
			},
		},
		{
			name:     "Title with subtitle",
			title:    "My App",
			width:    20,
			subtitle: []string{"Version 1.0"},
			setupMocks: func(primaryMock *MockStylePrinter, secondaryMock *MockStylePrinter) {
				primaryMock.On("Println", "╔══════════════════╗").Once()
				primaryMock.On("Println", "║      My App      ║").Once()
				primaryMock.On("Println", "║──────────────────║").Once()
				secondaryMock.On("Println", "║   Version 1.0    ║").Once()
				primaryMock.On("Println", "╚══════════════════╝").Once()
			},
		},
		{
			name:     "Subtitle wider than width",
			title:    "My App",
			width:    10,
			subtitle: []string{"By Developer"},
			setupMocks: func(primaryMock *MockStylePrinter, secondaryMock *MockStylePrinter) {
				primaryMock.On("Println", "╔══════════════╗").Once()
				primaryMock.On("Println", "║    My App    ║").Once()
				primaryMock.On("Println", "║──────────────║").Once()
				secondaryMock.On("Println", "║ By Developer ║").Once()
				primaryMock.On("Println", "╚══════════════╝").Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTheme := new(MockTheme)
			primaryMock := new(MockStylePrinter)
			secondaryMock := new(MockStylePrinter)

			mockTheme.On("Primary").Return(primaryMock)
			mockTheme.On("Secondary").Return(secondaryMock)
			tt.setupMocks(primaryMock, secondaryMock)

			manager := NewManager(mockTheme, &config.AppConfig{}, nil)
			manager.DisplayBanner(tt.title, tt.width, tt.subtitle...)

			mockTheme.AssertExpectations(t)
			primaryMock.AssertExpectations(t)
			secondaryMock.AssertExpectations(t)
		})
	}
}

func TestManager_Welcome(t *testing.T) {
	var buf bytes.Buffer
	original := color.Output
	color.Output = &buf
	defer func() { color.Output = original }()

	appCfg := config.NewDefaultConfig(config.WithVersion(config.Version{Version: "1.0.0", Commit: "abc", Date: "today"}))
	NewManager(NewProfessionalTheme(), appCfg, nil).Welcome()

	output := buf.String()
	assert.Contains(t, output, "Welcome to vstyle")
	assert.Contains(t, output, "v1.0.0 : abc (today)")
	assert.Contains(t, output, "╔═")
	assert.Contains(t, output, "╚═")
}

func TestManager_Table(t *testing.T) {
	mockTheme := new(MockTheme)
	mockTheme.On("IsEnabled").Return(false)

	var buf bytes.Buffer
	NewManager(mockTheme, &config.AppConfig{}, &buf).Table(
		[]string{"Theme", "Symbol"},
		[][]string{{"Dark (Visual Studio)", "DARK_VS"}, {"Monokai", "MONOKAI"}},
	)

	output := buf.String()
	assert.Contains(t, output, "Theme")
	assert.Contains(t, output, "DARK_VS")
	assert.Contains(t, output, "MONOKAI")
	assert.Equal(t, 1, strings.Count(output, "Monokai"))
	mockTheme.AssertExpectations(t)
}

func TestManager_Messages(t *testing.T) {
	mockTheme := new(MockTheme)
	success := new(MockStylePrinter)
	subtle := new(MockStylePrinter)
	mockTheme.On("Success").Return(success)
	mockTheme.On("Subtle").Return(subtle)
	success.On("Println", "built 3 files").Once()
	subtle.On("Println", mock.AnythingOfType("string")).Once()

	m := NewManager(mockTheme, &config.AppConfig{}, nil)
	m.Success("built %d files", 3)
	m.Hint("run %s", "vstyle list themes")

	success.AssertExpectations(t)
	subtle.AssertExpectations(t)
}

func TestThemeByName(t *testing.T) {
	assert.NotNil(t, ThemeByName("default"))
	assert.NotNil(t, ThemeByName("MODERN-DARK"))

	th := ThemeByName("unknown")
	th.RegisterCustomStyle("accent", NewStyle(color.FgMagenta, 0))
	assert.NotNil(t, th.Custom("accent"))
	assert.Equal(t, th.Info(), th.Custom("missing"))
}

func TestStyleWithWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyle(color.FgRed, 0).WithWriter(&buf)
	s.Printf("%s-%d", "a", 1)
	s.Println("b")
	assert.Contains(t, buf.String(), "a-1")
	assert.Contains(t, buf.String(), "b")
}
