// Package logger provides structured logging for streamkit built on zerolog.
//
// A default logger is available through the package-level functions:
//
//	logger.Info("pipeline drained", logger.Fields("elements", 42))
//
// Instances with their own configuration are created explicitly:
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "ingest")
//	log.WithComponent("stream").Debug("pull", logger.Fields("op", "filter"))
package logger
