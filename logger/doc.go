// Package logger provides structured logging for idkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
//	log := logger.NewDefault("idkit").WithComponent("registry")
//	log.Info("provider registered", logger.Fields("provider", "keyp"))
package logger
