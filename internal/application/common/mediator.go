package common

import (
	"context"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/mediator"
)

// Mediator types re-exported so handlers only import common
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

var NewMediator = mediator.NewMediator

// LoggingMiddleware logs every failed request with its duration
func LoggingMiddleware(logger ContainerLogger) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		start := time.Now()
		response, err := next(WithLogger(ctx, logger), request)
		if err != nil {
			logger.Log(LevelWarn, "command failed", map[string]interface{}{
				"command":  RequestName(request),
				"error":    err.Error(),
				"duration": time.Since(start).String(),
			})
		}
		return response, err
	}
}
