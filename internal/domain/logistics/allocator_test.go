package logistics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

const (
	iron     = shared.ResourceIron
	gold     = shared.ResourceGold
	platinum = shared.ResourcePlatinum
)

func TestCalculateTransfer(t *testing.T) {
	tests := []struct {
		name      string
		stockpile map[shared.ResourceType]int
		capacity  int
		quotas    logistics.Quotas
		expected  logistics.Plan
	}{
		{
			name:      "quota split",
			stockpile: map[shared.ResourceType]int{iron: 100, gold: 100},
			capacity:  10,
			quotas:    logistics.Quotas{iron: 0.8, gold: 0.2},
			expected:  logistics.Plan{iron: 8, gold: 2},
		},
		{
			name:      "quota capped by stock is not redistributed",
			stockpile: map[shared.ResourceType]int{iron: 3, gold: 100},
			capacity:  10,
			quotas:    logistics.Quotas{iron: 0.5, gold: 0.5},
			expected:  logistics.Plan{iron: 3, gold: 5},
		},
		{
			name:      "quota sum below one leaves capacity unused",
			stockpile: map[shared.ResourceType]int{iron: 100, gold: 100},
			capacity:  10,
			quotas:    logistics.Quotas{iron: 0.3},
			expected:  logistics.Plan{iron: 3},
		},
		{
			name:      "quota sum above one is clamped to capacity",
			stockpile: map[shared.ResourceType]int{iron: 100, gold: 100},
			capacity:  10,
			quotas:    logistics.Quotas{iron: 0.8, gold: 0.8},
			expected:  logistics.Plan{iron: 8, gold: 2},
		},
		{
			name:      "balanced even split",
			stockpile: map[shared.ResourceType]int{iron: 100, gold: 100},
			capacity:  10,
			expected:  logistics.Plan{iron: 5, gold: 5},
		},
		{
			name:      "balanced partial availability",
			stockpile: map[shared.ResourceType]int{iron: 3, gold: 100},
			capacity:  10,
			expected:  logistics.Plan{iron: 3, gold: 7},
		},
		{
			name:      "balanced redistributes leftover",
			stockpile: map[shared.ResourceType]int{iron: 2, gold: 100},
			capacity:  10,
			expected:  logistics.Plan{iron: 2, gold: 8},
		},
		{
			name:      "balanced integer remainder",
			stockpile: map[shared.ResourceType]int{iron: 100, gold: 100, platinum: 100},
			capacity:  10,
			expected:  logistics.Plan{iron: 4, gold: 3, platinum: 3},
		},
		{
			name:      "balanced capacity below type count",
			stockpile: map[shared.ResourceType]int{iron: 1, gold: 1, platinum: 1},
			capacity:  2,
			expected:  logistics.Plan{iron: 1, gold: 1},
		},
		{
			name:      "balanced stock below capacity",
			stockpile: map[shared.ResourceType]int{iron: 2, gold: 3, platinum: 0},
			capacity:  50,
			expected:  logistics.Plan{iron: 2, gold: 3},
		},
		{
			name:      "zero capacity",
			stockpile: map[shared.ResourceType]int{iron: 10},
			capacity:  0,
			expected:  logistics.Plan{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			plan := logistics.CalculateTransfer(tt.stockpile, tt.capacity, tt.quotas)

			// Assert
			assert.Equal(t, tt.expected, plan)
		})
	}
}

func TestCalculateTransfer_BalancedConservation(t *testing.T) {
	stockpiles := []map[shared.ResourceType]int{
		{iron: 1, gold: 2, platinum: 3},
		{iron: 7, gold: 0, platinum: 50},
		{iron: 13, gold: 17, platinum: 19},
		{iron: 1000},
	}
	for _, stock := range stockpiles {
		for capacity := 1; capacity <= 60; capacity++ {
			available := 0
			for _, n := range stock {
				available += n
			}

			plan := logistics.CalculateTransfer(stock, capacity, nil)

			assert.Equal(t, min(capacity, available), plan.Total(), "capacity %d stock %v", capacity, stock)
			for r, n := range plan {
				assert.LessOrEqual(t, n, stock[r])
			}
		}
	}
}

func TestCalculateTransfer_DoesNotMutateInput(t *testing.T) {
	stock := map[shared.ResourceType]int{iron: 3, gold: 100}

	logistics.CalculateTransfer(stock, 10, nil)

	assert.Equal(t, map[shared.ResourceType]int{iron: 3, gold: 100}, stock)
}

func TestQuotas_Set(t *testing.T) {
	q := logistics.Quotas{}

	q.Set(iron, 1.7)
	q.Set(gold, 0.4)
	q.Set(gold, 0)

	assert.Equal(t, logistics.Quotas{iron: 1}, q)
}

func newSink() *ledger.Ledger {
	return ledger.NewLedger([]ledger.ResourceDefinition{{Type: iron}, {Type: gold}})
}

func readySite(t *testing.T, infra location.Infrastructure) *location.Site {
	t.Helper()
	site := location.NewSite(location.SiteDefinition{ID: "MARS", Biome: shared.BiomeBarren})
	require.NoError(t, site.AdvanceTo(location.PhaseReadyToMine))
	site.SetInfrastructure(infra)
	return site
}

func TestCollectLocalResources(t *testing.T) {
	// Arrange
	site := readySite(t, location.Infrastructure{Station: 1})
	site.AddStock(iron, 3)
	site.AddStock(gold, 100)
	sink := newSink()

	// Act
	plan, err := logistics.CollectLocalResources(site, 10, nil, sink)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10, plan.Total())
	assert.Equal(t, 3, sink.Quantity(iron))
	assert.Equal(t, 7, sink.Quantity(gold))
	assert.Equal(t, 0, site.Stock(iron))
	assert.Equal(t, 93, site.Stock(gold))
}

func TestCollectLocalResources_RejectedTypeStaysAtSite(t *testing.T) {
	site := readySite(t, location.Infrastructure{Station: 1})
	site.AddStock(platinum, 4)
	site.AddStock(iron, 4)

	plan, err := logistics.CollectLocalResources(site, 10, nil, newSink())

	assert.Error(t, err)
	assert.Equal(t, logistics.Plan{iron: 4}, plan)
	assert.Equal(t, 4, site.Stock(platinum))
}

func TestAutoLogisticsTick(t *testing.T) {
	// Arrange
	ready := readySite(t, location.Infrastructure{Logistics: 2, Station: 1})
	ready.AddStock(iron, 7)
	ready.AddStock(gold, 30)

	idle := location.NewSite(location.SiteDefinition{ID: "MOON", Biome: shared.BiomeBarren})
	idle.SetInfrastructure(location.Infrastructure{Logistics: 5})
	idle.AddStock(iron, 50)

	sink := newSink()

	// Act
	moved, err := logistics.AutoLogisticsTick([]*location.Site{ready, idle}, sink)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, logistics.Plan{iron: 7, gold: 10}, moved)
	assert.Equal(t, 20, ready.Stock(gold))
	assert.Equal(t, 50, idle.Stock(iron))
}
