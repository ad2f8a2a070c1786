// Package logger builds the *slog.Logger instances used across formrules.
//
// New returns a logger configured through functional options: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that copy request-scoped values (for example the request id set by
// the HTTP host) into every record.
//
// Library packages never log to the default logger on their own; they take a
// WithLogger option and fall back to Nop. Only the binary decides where logs go.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "formd"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.DebugContext(ctx, "field revalidated", logger.FieldKey("email"), logger.Valid(false))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed without a
// nil check.
package logger
