package main

import "go.uber.org/zap"

// newLogger builds a development-mode logger (colorized, human-readable)
// unless jsonLogs is set, in which case it builds a production-mode JSON
// encoder suitable for piping into a log aggregator.
func newLogger(jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		return cfg.Build()
	}
	return zap.NewDevelopment()
}
