// Package logger provides structured logging for seqkit tools using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. The inspect package writes pipeline dumps
// through it and the demo CLI configures it from config.ServiceConfig.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("inspect")
//	log.Debug("element", logger.Fields(logger.FieldIndex, 0, logger.FieldValue, 42))
package logger
