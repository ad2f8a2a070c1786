package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups the non-nil errors under "errors". All nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting package under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the form name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// FieldKey records a field's registry key under "field".
func FieldKey(key string) slog.Attr {
	return slog.String("field", key)
}

// Valid records a validation outcome under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// State records a lifecycle state under "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Count records a quantity under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// RequestID records the request identifier under "request_id". Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
