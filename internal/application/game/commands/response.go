package commands

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
)

// ErrDeclined is returned when the simulation refused a command. The reason
// has already been logged by the simulation.
var ErrDeclined = errors.New("command declined")

// CommandResponse is the result of every state-changing command
type CommandResponse struct {
	Accepted bool
}

func result(command string, accepted bool) (common.Response, error) {
	if !accepted {
		return &CommandResponse{}, fmt.Errorf("%w: %s", ErrDeclined, command)
	}
	return &CommandResponse{Accepted: true}, nil
}

func invalidRequest(expected string) error {
	return fmt.Errorf("invalid request type: expected *%s", expected)
}
