package common

import (
	"fmt"
	"reflect"
	"strings"
)

// RewardProvider shows a rewarded placement (an ad in the shipped game) and
// invokes onGranted only when the player earned the reward. onGranted may run
// on any goroutine, before or after RequestReward returns.
type RewardProvider interface {
	RequestReward(placementID string, onGranted func())
}

// RequestName returns the bare type name of a request,
// e.g. "*commands.TravelCommand" becomes "TravelCommand"
func RequestName(request Request) string {
	if request == nil {
		return "UnknownCommand"
	}
	name := strings.TrimPrefix(fmt.Sprintf("%s", reflect.TypeOf(request)), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
