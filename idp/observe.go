package idp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/idkit/logger"
)

const tracerName = "github.com/kbukum/idkit/idp"

// Observe runs the descriptor's normalizer under an OpenTelemetry span
// and a structured log event. Each invocation is tagged with a fresh
// attempt id so concurrent login attempts can be told apart in logs and
// traces. The wrapped normalizer itself stays pure; all observability
// lives here.
func Observe(ctx context.Context, log *logger.Logger, d *Descriptor, claims Claims) (Identity, error) {
	if log == nil {
		log = logger.Nop()
	}
	attemptID := uuid.NewString()

	_, span := otel.Tracer(tracerName).Start(ctx, "idp.normalize",
		trace.WithAttributes(
			attribute.String("idp.provider", d.ID),
			attribute.String("idp.attempt_id", attemptID),
		))
	defer span.End()

	start := time.Now()
	identity, err := d.Normalize(claims)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldProvider:  d.ID,
		logger.FieldAttemptID: attemptID,
		logger.FieldDuration:  duration.Milliseconds(),
	}

	if err != nil {
		span.RecordError(err)
		fields[logger.FieldError] = err.Error()
		log.Error("claim normalization failed", fields)
		return Identity{}, err
	}

	log.Debug("claim normalization ok", fields)
	return identity, nil
}
