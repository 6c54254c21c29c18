package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
	"github.com/andrescamacho/spacerush-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// Every request is timed and counted under its bare type name, so
// "*commands.TravelCommand" is recorded as "TravelCommand". Commands the
// simulation refused count as declined rather than as errors.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		duration := time.Since(start).Seconds()

		collector.RecordCommandExecution(common.RequestName(request), duration, outcome(err))
		return response, err
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return StatusAccepted
	case errors.Is(err, commands.ErrDeclined):
		return StatusDeclined
	default:
		return StatusError
	}
}
