package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Violations records validation messages under the key "violations".
// If there are none, it returns an empty Attr.
func Violations(messages []string) slog.Attr {
	if len(messages) == 0 {
		return slog.Attr{}
	}
	return slog.Any("violations", messages)
}

// Kind records the schema kind under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// File records an input path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Record records a zero-based record position under the key "record".
func Record(index int) slog.Attr {
	return slog.Int("record", index)
}
