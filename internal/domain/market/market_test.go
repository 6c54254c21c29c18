package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/market"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func newLedger() *ledger.Ledger {
	return ledger.NewLedger([]ledger.ResourceDefinition{
		{Type: shared.ResourceIron, BaseValue: 10},
		{Type: shared.ResourceGold, BaseValue: 50},
	})
}

func TestUpdatePrices_StaysInBand(t *testing.T) {
	// Arrange
	l := newLedger()
	m := market.NewMarket(l, &shared.FixedRandom{Floats: []float64{0, 0.5, 0.999}})

	// Act
	m.UpdatePrices()

	// Assert
	iron, _ := l.Record(shared.ResourceIron)
	gold, _ := l.Record(shared.ResourceGold)
	assert.InDelta(t, 9.0, iron.MarketValue, 1e-9)
	assert.InDelta(t, 50.0, gold.MarketValue, 1e-9)
}

func TestSell(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.AddResource(shared.ResourceIron, 20))
	m := market.NewMarket(l, &shared.FixedRandom{})

	earned, err := m.Sell(shared.ResourceIron, 10, 0.1)

	require.NoError(t, err)
	assert.InDelta(t, 110.0, earned, 1e-9)
	assert.InDelta(t, 110.0, l.Credits(), 1e-9)
	assert.Equal(t, 10, l.Quantity(shared.ResourceIron))
}

func TestSell_Declined(t *testing.T) {
	l := newLedger()
	m := market.NewMarket(l, &shared.FixedRandom{})

	_, err := m.Sell(shared.ResourceIron, 1, 0)
	var stock *shared.InsufficientStockError
	assert.ErrorAs(t, err, &stock)

	_, err = m.Sell(shared.ResourceIron, 0, 0)
	assert.Error(t, err)

	_, err = m.Sell(shared.ResourceDiamond, 1, 0)
	var unknown *shared.UnknownIDError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, 0.0, l.Credits())
}

func TestSell_NegativeProceedsKeepStock(t *testing.T) {
	// Arrange
	l := newLedger()
	require.NoError(t, l.AddResource(shared.ResourceIron, 20))
	m := market.NewMarket(l, &shared.FixedRandom{})

	// Act
	_, err := m.Sell(shared.ResourceIron, 10, -1.5)

	// Assert
	var invalid *shared.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 20, l.Quantity(shared.ResourceIron))
	assert.Equal(t, 0.0, l.Credits())
}

func TestBuy(t *testing.T) {
	l := newLedger()
	l.SetCredits(120)
	m := market.NewMarket(l, &shared.FixedRandom{})

	_, err := m.Buy(shared.ResourceGold, 3)
	var funds *shared.InsufficientFundsError
	require.ErrorAs(t, err, &funds)

	cost, err := m.Buy(shared.ResourceGold, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, cost)
	assert.Equal(t, 20.0, l.Credits())
	assert.Equal(t, 2, l.Quantity(shared.ResourceGold))
}
