package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/application/mediator"
)

type pingCommand struct{ Value string }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(*pingCommand)
	return "pong:" + cmd.Value, nil
}

func TestSend_DispatchesToRegisteredHandler(t *testing.T) {
	// Arrange
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](med, &pingHandler{}))

	// Act
	resp, err := med.Send(context.Background(), &pingCommand{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestSend_UnknownRequestType(t *testing.T) {
	med := mediator.NewMediator()

	_, err := med.Send(context.Background(), &pingCommand{})

	assert.Error(t, err)
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](med, &pingHandler{}))

	err := mediator.RegisterHandler[*pingCommand](med, &pingHandler{})

	assert.Error(t, err)
}

func TestSend_MiddlewareOrder(t *testing.T) {
	// Arrange
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](med, &pingHandler{}))
	var calls []string
	tag := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, request)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	med.RegisterMiddleware(tag("outer"))
	med.RegisterMiddleware(tag("inner"))

	// Act
	_, err := med.Send(context.Background(), &pingCommand{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestSend_MiddlewareCanShortCircuit(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](med, &pingHandler{}))
	denied := errors.New("denied")
	med.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		return nil, denied
	})

	_, err := med.Send(context.Background(), &pingCommand{})

	assert.ErrorIs(t, err, denied)
}
