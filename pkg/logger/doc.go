// Package logger provides a thin factory around Go's slog package plus helper
// attribute constructors that keep attribute naming consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level.
//   - WithOutput sets the destination writer.
//   - WithAttr attaches static attributes to every record.
//
// The attribute helpers (Error, Kind, Message, Field, Type, ...) are used by the
// error types of the validate and reflectutil packages to implement
// slog.LogValuer, so those errors render as structured groups:
//
//	log := logger.New(logger.WithTextFormatter())
//	if err := validate.NotEmpty(items); err != nil {
//	    log.Warn("rejected input", "cause", err)
//	}
//
// Helpers return an empty slog.Attr for nil inputs, which slog drops, so calls
// such as log.Info("done", logger.Error(err)) need no nil check.
package logger
