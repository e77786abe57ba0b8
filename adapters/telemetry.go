package adapters

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arclight-labs/dsbeam/dserrors"
	"github.com/arclight-labs/dsbeam/ports"
)

// ZapTelemetry emits telemetry events as structured zap log lines.
type ZapTelemetry struct {
	Logger *zap.Logger
}

// Emit logs event at info level.
func (t ZapTelemetry) Emit(event ports.TelemetryEvent) {
	logger := t.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("telemetry", zap.String("name", event.Name), zap.Float64("value", event.Value))
}

// CollectingTelemetry buffers emitted events in memory for inspection,
// mirroring the reference runtime's drainable telemetry adapter.
type CollectingTelemetry struct {
	events []ports.TelemetryEvent
}

// Emit appends event to the buffer.
func (c *CollectingTelemetry) Emit(event ports.TelemetryEvent) {
	c.events = append(c.events, event)
}

// Take drains and returns the buffered events.
func (c *CollectingTelemetry) Take() []ports.TelemetryEvent {
	out := c.events
	c.events = nil
	return out
}

// HTTPSearch is an intentionally unwired search adapter: it always
// reports Unsupported, reserving the port for a future wiring without
// shipping an unauthenticated outbound HTTP call today.
type HTTPSearch struct{}

// Search always fails with ErrUnsupported.
func (HTTPSearch) Search(_ context.Context, _ string) ([]ports.SearchHit, error) {
	return nil, fmt.Errorf("%w: http search adapter is not wired yet", dserrors.ErrUnsupported)
}
