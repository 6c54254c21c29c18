package reward

import (
	"sync"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
)

// SimulatedProvider stands in for a rewarded-ad SDK. It grants or refuses
// every request and can delay the grant to mimic an ad being watched.
type SimulatedProvider struct {
	grant  bool
	delay  time.Duration
	logger common.ContainerLogger

	mu       sync.Mutex
	requests map[string]int
}

// NewSimulatedProvider creates a provider that grants when grant is true
func NewSimulatedProvider(grant bool, delay time.Duration, logger common.ContainerLogger) *SimulatedProvider {
	if logger == nil {
		logger = common.NoOpLogger()
	}
	return &SimulatedProvider{
		grant:    grant,
		delay:    delay,
		logger:   logger,
		requests: make(map[string]int),
	}
}

// RequestReward implements common.RewardProvider. onGranted runs on the
// caller's goroutine when there is no delay and on a timer goroutine otherwise.
func (p *SimulatedProvider) RequestReward(placementID string, onGranted func()) {
	p.mu.Lock()
	p.requests[placementID]++
	p.mu.Unlock()

	if !p.grant {
		p.logger.Log(common.LevelInfo, "reward not granted", map[string]interface{}{"placement": placementID})
		return
	}
	p.logger.Log(common.LevelInfo, "reward granted", map[string]interface{}{
		"placement": placementID,
		"delay":     p.delay.String(),
	})
	if p.delay <= 0 {
		onGranted()
		return
	}
	time.AfterFunc(p.delay, onGranted)
}

// Requests returns how many times placementID was requested
func (p *SimulatedProvider) Requests(placementID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[placementID]
}
