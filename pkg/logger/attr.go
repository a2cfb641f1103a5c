package logger

import (
	"log/slog"
	"reflect"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
// The error text is used so that errors implementing slog.LogValuer
// do not recurse into themselves.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records an error kind under the key "kind".
// If kind is nil, it returns an empty Attr.
func Kind(kind error) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.Error())
}

// Message records a human-readable message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}

// Field records a struct field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Type records a Go type under the key "type".
// If t is nil, it returns an empty Attr.
func Type(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("type", t.String())
}
