package game

import (
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// OfflineReport describes the gains credited for time spent away
type OfflineReport struct {
	Away     time.Duration
	Credited time.Duration
	Gains    map[shared.ResourceType]int
}

// Total is the number of units gained
func (r OfflineReport) Total() int {
	total := 0
	for _, n := range r.Gains {
		total += n
	}
	return total
}

// LastOffline returns the gains of the most recent load
func (g *Game) LastOffline() OfflineReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastOffline
}

// creditOffline mines at the current site for the time since savedAt:
// floor(fleet speed × min(away, max) × efficiency) units, split evenly over
// the site's resources with the remainder going to the first one.
func (g *Game) creditOffline(savedAt time.Time) OfflineReport {
	report := OfflineReport{Gains: make(map[shared.ResourceType]int)}
	if savedAt.IsZero() {
		return report
	}
	report.Away = g.now().Sub(savedAt)
	if report.Away <= 0 {
		report.Away = 0
		return report
	}
	report.Credited = report.Away
	if g.opts.MaxOffline > 0 && report.Credited > g.opts.MaxOffline {
		report.Credited = g.opts.MaxOffline
	}

	site := g.sites.Current()
	if site == nil || !g.fleet.IsOperational() {
		return report
	}
	resources := site.Definition().Resources
	if len(resources) == 0 {
		return report
	}

	total := utils.FloorToInt(g.fleet.MiningSpeed() * report.Credited.Seconds() * g.opts.OfflineEfficiency)
	if total <= 0 {
		return report
	}
	share, rest := total/len(resources), total%len(resources)
	for i, t := range resources {
		n := share
		if i == 0 {
			n += rest
		}
		if n > 0 && g.ledger.AddResource(t, n) == nil {
			report.Gains[t] += n
		}
	}
	return report
}

// DoubleOfflineGains asks the reward provider for a rewarded placement and,
// once granted, credits the last offline gains a second time. It reports
// whether a request was made; the bonus applies at most once per load and is
// dropped if another load happens first.
func (g *Game) DoubleOfflineGains() bool {
	g.mu.Lock()
	provider := g.rewards
	gains := make(map[shared.ResourceType]int, len(g.lastOffline.Gains))
	for t, n := range g.lastOffline.Gains {
		gains[t] = n
	}
	generation := g.offlineGeneration
	eligible := provider != nil && !g.offlineDoubled && len(gains) > 0
	g.mu.Unlock()

	if !eligible {
		g.logger.Log(common.LevelInfo, "DoubleOfflineGains declined", map[string]interface{}{
			"reason": "no unclaimed offline gains or no reward provider",
		})
		return false
	}

	provider.RequestReward(OfflineRewardPlacement, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.offlineDoubled || g.offlineGeneration != generation {
			return
		}
		g.offlineDoubled = true
		for _, t := range shared.SortedKeys(gains) {
			_ = g.ledger.AddResource(t, gains[t])
		}
	})
	return true
}
