package ledger

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// Ledger owns the player's credits and global resource quantities.
//
// Declined operations leave the ledger untouched and return a typed error
// (InsufficientFundsError, InsufficientStockError, UnknownIDError).
type Ledger struct {
	credits float64
	records map[shared.ResourceType]*ResourceRecord
}

// NewLedger creates an empty ledger with one record per definition,
// market values starting at the base value
func NewLedger(definitions []ResourceDefinition) *Ledger {
	l := &Ledger{records: make(map[shared.ResourceType]*ResourceRecord, len(definitions))}
	for _, def := range definitions {
		l.records[def.Type] = &ResourceRecord{
			Type:        def.Type,
			Name:        def.Name,
			BaseValue:   def.BaseValue,
			MarketValue: def.BaseValue,
		}
	}
	return l
}

// Credits returns the current credit balance
func (l *Ledger) Credits() float64 {
	return l.credits
}

// CanAfford reports whether the balance covers amount
func (l *Ledger) CanAfford(amount float64) bool {
	return l.credits >= amount
}

// AddCredits increases the balance; negative amounts are rejected
func (l *Ledger) AddCredits(amount float64) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "credits to add must be non-negative")
	}
	l.credits += amount
	return nil
}

// SpendCredits debits amount, or returns InsufficientFundsError without mutating
func (l *Ledger) SpendCredits(amount float64) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "credits to spend must be non-negative")
	}
	if l.credits < amount {
		return shared.NewInsufficientFundsError(amount, l.credits)
	}
	l.credits -= amount
	return nil
}

// SetCredits overwrites the balance (load path); negatives clamp to zero
func (l *Ledger) SetCredits(amount float64) {
	if amount < 0 {
		amount = 0
	}
	l.credits = amount
}

// Quantity returns how many units of a resource are held (0 for unknown types)
func (l *Ledger) Quantity(t shared.ResourceType) int {
	if rec, ok := l.records[t]; ok {
		return rec.Quantity
	}
	return 0
}

// Has reports whether at least amount units of t are held
func (l *Ledger) Has(t shared.ResourceType, amount int) bool {
	return l.Quantity(t) >= amount
}

// AddResource credits units of a resource
func (l *Ledger) AddResource(t shared.ResourceType, amount int) error {
	rec, err := l.record(t)
	if err != nil {
		return err
	}
	if amount < 0 {
		return shared.NewValidationError("amount", "quantity to add must be non-negative")
	}
	rec.Quantity += amount
	return nil
}

// RemoveResource debits units, or returns InsufficientStockError without mutating
func (l *Ledger) RemoveResource(t shared.ResourceType, amount int) error {
	rec, err := l.record(t)
	if err != nil {
		return err
	}
	if amount < 0 {
		return shared.NewValidationError("amount", "quantity to remove must be non-negative")
	}
	if rec.Quantity < amount {
		return shared.NewInsufficientStockError(t, amount, rec.Quantity)
	}
	rec.Quantity -= amount
	return nil
}

// SetResource overwrites a quantity (load path); negatives clamp to zero
func (l *Ledger) SetResource(t shared.ResourceType, amount int) error {
	rec, err := l.record(t)
	if err != nil {
		return err
	}
	if amount < 0 {
		amount = 0
	}
	rec.Quantity = amount
	return nil
}

// SetMarketValue overwrites the current market value of a resource
func (l *Ledger) SetMarketValue(t shared.ResourceType, value float64) error {
	rec, err := l.record(t)
	if err != nil {
		return err
	}
	if value < 0 {
		value = 0
	}
	rec.MarketValue = value
	return nil
}

// Record returns a copy of one entry
func (l *Ledger) Record(t shared.ResourceType) (ResourceRecord, bool) {
	rec, ok := l.records[t]
	if !ok {
		return ResourceRecord{}, false
	}
	return *rec, true
}

// Records returns copies of all entries in canonical resource order
func (l *Ledger) Records() []ResourceRecord {
	out := make([]ResourceRecord, 0, len(l.records))
	for _, t := range shared.SortedKeys(l.records) {
		out = append(out, *l.records[t])
	}
	return out
}

// Quantities returns every non-zero quantity
func (l *Ledger) Quantities() map[shared.ResourceType]int {
	out := make(map[shared.ResourceType]int)
	for t, rec := range l.records {
		if rec.Quantity > 0 {
			out[t] = rec.Quantity
		}
	}
	return out
}

// Reset zeroes credits and quantities and restores base market values
func (l *Ledger) Reset() {
	l.credits = 0
	for _, rec := range l.records {
		rec.Quantity = 0
		rec.MarketValue = rec.BaseValue
	}
}

func (l *Ledger) record(t shared.ResourceType) (*ResourceRecord, error) {
	rec, ok := l.records[t]
	if !ok {
		return nil, shared.NewUnknownIDError("resource", string(t))
	}
	return rec, nil
}
