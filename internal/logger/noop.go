package logger

// NoOpLogger discards every entry
type NoOpLogger struct{}

// Discard is the shared NoOpLogger
var Discard Logger = NoOpLogger{}

var _ Logger = NoOpLogger{}

// NewNoOpLogger returns Discard
func NewNoOpLogger() Logger {
	return Discard
}

func (NoOpLogger) Debug(string, map[string]interface{}) {}
func (NoOpLogger) Info(string, map[string]interface{}) {}
func (NoOpLogger) Warn(string, map[string]interface{}) {}
func (NoOpLogger) Error(string, map[string]interface{}) {}

// Fatal does not exit
func (NoOpLogger) Fatal(string, map[string]interface{}) {}

func (NoOpLogger) Debugf(string, ...interface{}) {}
func (NoOpLogger) Infof(string, ...interface{}) {}
func (NoOpLogger) Warnf(string, ...interface{}) {}
func (NoOpLogger) Errorf(string, ...interface{}) {}

// Fatalf does not exit
func (NoOpLogger) Fatalf(string, ...interface{}) {}

func (l NoOpLogger) WithField(string, interface{}) Logger { return l }
func (l NoOpLogger) WithFields(map[string]interface{}) Logger { return l }
func (NoOpLogger) Sync() error { return nil }
