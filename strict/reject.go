package strict

import (
	"context"
	stderrors "errors"

	"github.com/amp-labs/strict-hint/conform"
	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/logger"
	"github.com/amp-labs/strict-hint/signature"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	positionArgument = "argument"
	positionReturn   = "return"

	rejectionEvent = "strict_hint.rejected"
)

// reject reports a failed check on ctx's span, in the log and in metrics,
// and returns err annotated with the same details.
func reject(ctx context.Context, sig signature.Signature, position string, err error) error {
	outcome := outcomeRejected
	if !stderrors.Is(err, errors.ErrTypeConformance) {
		outcome = outcomeInvalid
	}

	guardedCallsTotal.WithLabelValues(outcome).Inc()

	details := []any{"callable", sig.DisplayName(), "position", position}
	attrs := []attribute.KeyValue{
		attribute.String("strict_hint.callable", sig.DisplayName()),
		attribute.String("strict_hint.position", position),
	}

	var argErr *conform.ArgumentError
	if stderrors.As(err, &argErr) {
		details = append(details, "param", argErr.Param)
		attrs = append(attrs, attribute.String("strict_hint.param", argErr.Param))
	}

	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(attrs...))
	span.AddEvent(rejectionEvent, trace.WithAttributes(append(attrs, attribute.String("strict_hint.outcome", outcome))...))

	if logRejections.Load() {
		logger.Get(ctx).WarnContext(ctx, "call rejected by type guard", append(details, "error", err)...)
	}

	return logger.AnnotateError(err, details...)
}
