package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func newTestLedger() *ledger.Ledger {
	return ledger.NewLedger([]ledger.ResourceDefinition{
		{Type: shared.ResourceIron, Name: "Iron", BaseValue: 10},
		{Type: shared.ResourceGold, Name: "Gold", BaseValue: 50},
	})
}

func TestLedger_SpendCredits(t *testing.T) {
	// Arrange
	l := newTestLedger()
	require.NoError(t, l.AddCredits(100))

	// Act
	err := l.SpendCredits(150)

	// Assert
	var insufficient *shared.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 150.0, insufficient.Required)
	assert.Equal(t, 100.0, l.Credits(), "declined spend must not mutate")

	require.NoError(t, l.SpendCredits(100))
	assert.Equal(t, 0.0, l.Credits())
}

func TestLedger_RemoveResource(t *testing.T) {
	// Arrange
	l := newTestLedger()
	require.NoError(t, l.AddResource(shared.ResourceIron, 5))

	// Act
	err := l.RemoveResource(shared.ResourceIron, 6)

	// Assert
	var insufficient *shared.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, l.Quantity(shared.ResourceIron))

	require.NoError(t, l.RemoveResource(shared.ResourceIron, 5))
	assert.Equal(t, 0, l.Quantity(shared.ResourceIron))
}

func TestLedger_UnknownResource(t *testing.T) {
	l := newTestLedger()

	err := l.AddResource(shared.ResourceDiamond, 1)

	var unknown *shared.UnknownIDError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "DIAMOND", unknown.ID)
	assert.Equal(t, 0, l.Quantity(shared.ResourceDiamond))
}

func TestLedger_RejectsNegativeAmounts(t *testing.T) {
	l := newTestLedger()

	assert.Error(t, l.AddCredits(-1))
	assert.Error(t, l.AddResource(shared.ResourceIron, -1))
	assert.Error(t, l.RemoveResource(shared.ResourceIron, -1))
	assert.Equal(t, 0.0, l.Credits())
}

func TestLedger_SetOverwritesAndClamps(t *testing.T) {
	l := newTestLedger()

	l.SetCredits(-10)
	require.NoError(t, l.SetResource(shared.ResourceGold, 42))

	assert.Equal(t, 0.0, l.Credits())
	assert.Equal(t, 42, l.Quantity(shared.ResourceGold))
}

func TestLedger_RecordsInCanonicalOrder(t *testing.T) {
	l := ledger.NewLedger([]ledger.ResourceDefinition{
		{Type: shared.ResourceGold, BaseValue: 50},
		{Type: shared.ResourceIron, BaseValue: 10},
	})

	records := l.Records()

	require.Len(t, records, 2)
	assert.Equal(t, shared.ResourceIron, records[0].Type)
	assert.Equal(t, 10.0, records[0].MarketValue)
}

func TestLedger_Reset(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddCredits(500))
	require.NoError(t, l.AddResource(shared.ResourceIron, 7))
	require.NoError(t, l.SetMarketValue(shared.ResourceIron, 11))

	l.Reset()

	rec, ok := l.Record(shared.ResourceIron)
	require.True(t, ok)
	assert.Equal(t, 0.0, l.Credits())
	assert.Equal(t, 0, rec.Quantity)
	assert.Equal(t, 10.0, rec.MarketValue)
	assert.Empty(t, l.Quantities())
}
