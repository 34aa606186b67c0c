// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so keys stay consistent across packages.
//
//	log := logger.New(
//	    logger.WithDevelopment("docs-site"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("message mirrored", logger.Component("console"), logger.Kind("warn"))
//
// Settings can also come from the environment through Config and
// FromConfig (LOG_LEVEL, LOG_FORMAT, APP_ENV, APP_NAME).
//
// Helpers such as Error return an empty slog.Attr for nil input, which slog
// drops from the record, so callers do not need a nil check.
package logger
