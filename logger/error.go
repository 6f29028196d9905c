package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog
// key-value pairs). When the returned error is logged through a logger set up
// by ConfigureLoggingWithOptions, the attributes are added to the record.
//
// The error message and the error chain are unchanged, so errors.Is and
// errors.As keep working on the result.
//
// Example:
//
//	return AnnotateError(err, "param", "r", "callable", "Handler.Serve")
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// ErrorAttrs returns the attributes attached to err (or anything it wraps)
// by AnnotateError. Nested annotations are returned outermost first.
func ErrorAttrs(err error) []slog.Attr {
	var attrs []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		attrs = append(attrs, se.attrs...)
		err = se.err
	}

	return attrs
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that pulls the attributes of
// annotated errors into the record it hands to the inner handler.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle appends the annotation attributes of every error attribute in the
// record before delegating to the inner handler.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var errAttrs []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if v, ok := attr.Value.Any().(error); ok {
			errAttrs = append(errAttrs, ErrorAttrs(v)...)
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
