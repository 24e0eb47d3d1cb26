// log.go — structured logging support via slog.LogValuer.
package stderror

import "log/slog"

var _ slog.LogValuer = (*Error)(nil)

// LogValue groups the instance's attributes for structured loggers. The trace
// is left out; log it explicitly with String() when needed.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("name", e.name),
		slog.Bool("safe", e.safe),
	}
	if e.hasMsg {
		attrs = append(attrs, slog.String("message", e.msg))
	}
	if e.code != "" {
		attrs = append(attrs, slog.String("code", string(e.code)))
	}
	if len(e.suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", e.Suggestions()))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
