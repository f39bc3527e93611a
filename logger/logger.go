// Package logger builds the zap logger shared by the server and its jobs.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger in release mode and a console
// development logger otherwise.
func New(ginMode string) (*zap.Logger, error) {
	var cfg zap.Config
	if ginMode == "release" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Named("laptop-service-center"), nil
}

var global = zap.NewNop()

// L returns the process logger set by SetGlobal, or a no-op logger.
func L() *zap.Logger {
	return global
}

// SetGlobal replaces the process logger and redirects zap's globals to it.
func SetGlobal(l *zap.Logger) {
	global = l
	zap.ReplaceGlobals(l)
}
