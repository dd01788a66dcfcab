package analytics

import (
	"context"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
)

// Sink emits workflow events to the structured log, where the platform's
// log pipeline picks them up. Emission is best-effort and never fails the
// caller.
type Sink struct {
	logger *zap.Logger
}

// NewSink creates a new analytics sink
func NewSink(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

// Track emits one event
func (s *Sink) Track(ctx context.Context, event string, props map[string]interface{}) {
	fields := make([]zap.Field, 0, len(props)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range props {
		fields = append(fields, zap.Any(k, v))
	}
	s.logger.Info("analytics", fields...)
}

// Verify interface compliance
var _ port.AnalyticsSink = (*Sink)(nil)
