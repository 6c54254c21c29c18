package market

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

const (
	// Market values drift within [base × FluctuationMin, base × FluctuationMax)
	FluctuationMin = 0.9
	FluctuationMax = 1.1
)

// Market trades ledger resources for credits at the current market values
type Market struct {
	ledger *ledger.Ledger
	rng    shared.Random
}

// NewMarket creates a market over the ledger
func NewMarket(l *ledger.Ledger, rng shared.Random) *Market {
	return &Market{ledger: l, rng: rng}
}

// UpdatePrices rerolls every market value around its base value
func (m *Market) UpdatePrices() {
	for _, rec := range m.ledger.Records() {
		factor := FluctuationMin + (FluctuationMax-FluctuationMin)*m.rng.Float64()
		_ = m.ledger.SetMarketValue(rec.Type, rec.BaseValue*factor)
	}
}

// Sell removes quantity units and credits their value, boosted by priceBonus.
// It returns the credits earned.
func (m *Market) Sell(t shared.ResourceType, quantity int, priceBonus float64) (float64, error) {
	rec, err := m.quote(t, quantity)
	if err != nil {
		return 0, err
	}
	earned := float64(quantity) * rec.MarketValue * (1 + priceBonus)
	if earned < 0 {
		return 0, shared.NewValidationError("priceBonus", "sale would earn negative credits")
	}
	if err := m.ledger.RemoveResource(t, quantity); err != nil {
		return 0, err
	}
	if err := m.ledger.AddCredits(earned); err != nil {
		_ = m.ledger.AddResource(t, quantity)
		return 0, err
	}
	return earned, nil
}

// Buy spends credits for quantity units at the current market value.
// It returns the credits spent.
func (m *Market) Buy(t shared.ResourceType, quantity int) (float64, error) {
	rec, err := m.quote(t, quantity)
	if err != nil {
		return 0, err
	}
	cost := float64(quantity) * rec.MarketValue
	if err := m.ledger.SpendCredits(cost); err != nil {
		return 0, err
	}
	if err := m.ledger.AddResource(t, quantity); err != nil {
		_ = m.ledger.AddCredits(cost)
		return 0, err
	}
	return cost, nil
}

func (m *Market) quote(t shared.ResourceType, quantity int) (ledger.ResourceRecord, error) {
	if quantity <= 0 {
		return ledger.ResourceRecord{}, shared.NewValidationError("quantity", "must be positive")
	}
	rec, ok := m.ledger.Record(t)
	if !ok {
		return ledger.ResourceRecord{}, shared.NewUnknownIDError("resource", string(t))
	}
	return rec, nil
}
