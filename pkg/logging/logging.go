package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the verbosity of loggers built by New. It starts at Warn
// so that only recoverable problems reach stderr.
var Level = zap.NewAtomicLevelAt(zap.WarnLevel)

// New builds a console logger writing to stderr with the application's
// name and version attached to every entry.
func New(appName, appVersion string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = Level
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}
	return logger, nil
}

// SetVerbose switches every logger built by New between Debug and Warn.
func SetVerbose(verbose bool) {
	if verbose {
		Level.SetLevel(zap.DebugLevel)
		return
	}
	Level.SetLevel(zap.WarnLevel)
}
