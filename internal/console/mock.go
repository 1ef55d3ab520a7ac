package console

import "github.com/stretchr/testify/mock"

// MockTheme implements Theme on top of testify/mock
type MockTheme struct {
	mock.Mock
}

var _ Theme = (*MockTheme)(nil)

func (m *MockTheme) style(name string) StylePrinter {
	args := m.MethodCalled(name)
	if s, ok := args.Get(0).(StylePrinter); ok {
		return s
	}
	return nil
}

func (m *MockTheme) Primary() StylePrinter   { return m.style("Primary") }
func (m *MockTheme) Secondary() StylePrinter { return m.style("Secondary") }
func (m *MockTheme) Success() StylePrinter   { return m.style("Success") }
func (m *MockTheme) Error() StylePrinter     { return m.style("Error") }
func (m *MockTheme) Warning() StylePrinter   { return m.style("Warning") }
func (m *MockTheme) Info() StylePrinter      { return m.style("Info") }
func (m *MockTheme) Subtle() StylePrinter    { return m.style("Subtle") }

// Custom mocks the Custom method
func (m *MockTheme) Custom(name string) StylePrinter {
	args := m.Called(name)
	if s, ok := args.Get(0).(StylePrinter); ok {
		return s
	}
	return nil
}

// IsEnabled mocks the IsEnabled method
func (m *MockTheme) IsEnabled() bool {
	return m.Called().Bool(0)
}

// MockStylePrinter implements StylePrinter on top of testify/mock
type MockStylePrinter struct {
	mock.Mock
}

var _ StylePrinter = (*MockStylePrinter)(nil)

// Print mocks the Print method
func (m *MockStylePrinter) Print(a ...interface{}) {
	m.Called(a...)
}

// Printf mocks the Printf method
func (m *MockStylePrinter) Printf(format string, a ...interface{}) {
	m.Called(append([]interface{}{format}, a...)...)
}

// Println mocks the Println method
func (m *MockStylePrinter) Println(a ...interface{}) {
	m.Called(a...)
}

// Sprint mocks the Sprint method
func (m *MockStylePrinter) Sprint(a ...interface{}) string {
	return m.Called(a...).String(0)
}
