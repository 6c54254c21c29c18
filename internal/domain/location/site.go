package location

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// Machine contributions to a site's effective levels
const (
	drillMiningBonus     = 1
	autoMinerMiningBonus = 2
	botLogisticsBonus    = 1
)

// Site is the runtime state of one SiteDefinition
type Site struct {
	def            SiteDefinition
	unlocked       bool
	phase          Phase
	infra          Infrastructure
	stockpile      map[shared.ResourceType]int
	machines       map[shared.ResourceType]int
	activeRecipeID string
}

// NewSite creates the starting state of a site
func NewSite(def SiteDefinition) *Site {
	phase := def.InitialPhase
	if phase == "" {
		phase = PhaseHidden
	}
	return &Site{
		def:       def,
		unlocked:  def.StartsUnlocked,
		phase:     phase,
		stockpile: make(map[shared.ResourceType]int),
		machines:  make(map[shared.ResourceType]int),
	}
}

// SiteState is the persisted form of a Site
type SiteState struct {
	Unlocked          bool
	Phase             Phase
	Infrastructure    Infrastructure
	Stockpile         map[shared.ResourceType]int
	InstalledMachines map[shared.ResourceType]int
	ActiveRecipeID    string
}

// Getters

func (s *Site) ID() string { return s.def.ID }
func (s *Site) Name() string { return s.def.Name }
func (s *Site) Definition() SiteDefinition { return s.def }
func (s *Site) Biome() shared.Biome { return s.def.Biome }
func (s *Site) IsUnlocked() bool { return s.unlocked }
func (s *Site) Phase() Phase { return s.phase }
func (s *Site) Infrastructure() Infrastructure { return s.infra }
func (s *Site) ActiveRecipeID() string { return s.activeRecipeID }
func (s *Site) IsReadyToMine() bool { return s.phase == PhaseReadyToMine }

// Snapshot returns a deep copy of the mutable state
func (s *Site) Snapshot() SiteState {
	return SiteState{
		Unlocked:          s.unlocked,
		Phase:             s.phase,
		Infrastructure:    s.infra,
		Stockpile:         s.Stockpile(),
		InstalledMachines: s.InstalledMachines(),
		ActiveRecipeID:    s.activeRecipeID,
	}
}

// Restore overwrites the mutable state from a saved copy (load path).
// Invalid phases fall back to the site's starting phase and negative counts are dropped.
func (s *Site) Restore(state SiteState) {
	fresh := NewSite(s.def)
	s.unlocked = state.Unlocked
	s.phase = fresh.phase
	if state.Phase.IsValid() {
		s.phase = state.Phase
	}
	s.infra = state.Infrastructure.clamped()
	s.stockpile = copyPositive(state.Stockpile)
	s.machines = copyPositive(state.InstalledMachines)
	s.activeRecipeID = state.ActiveRecipeID
}

// Unlock marks the site as visited
func (s *Site) Unlock() {
	s.unlocked = true
}

// AdvanceTo moves the discovery phase forward. Staying put or going back is refused.
func (s *Site) AdvanceTo(target Phase) error {
	if !target.IsValid() {
		return shared.NewValidationError("phase", "invalid discovery phase "+string(target))
	}
	if s.phase.AtLeast(target) {
		return shared.NewPreconditionError("site %s is already %s", s.def.ID, s.phase)
	}
	s.phase = target
	return nil
}

// UpgradeInfrastructure raises one track by a level
func (s *Site) UpgradeInfrastructure(kind InfrastructureKind) {
	s.infra.increment(kind)
}

// SetInfrastructure overwrites all tracks
func (s *Site) SetInfrastructure(infra Infrastructure) {
	s.infra = infra.clamped()
}

// EffectiveMining is the mining level plus installed drills and auto-miners
func (s *Site) EffectiveMining() int {
	return s.infra.Mining +
		s.machines[shared.ResourceMiningDrill]*drillMiningBonus +
		s.machines[shared.ResourceAutoMiner]*autoMinerMiningBonus
}

// EffectiveLogistics is the logistics level plus installed logistics bots
func (s *Site) EffectiveLogistics() int {
	return s.infra.Logistics + s.machines[shared.ResourceLogisticsBot]*botLogisticsBonus
}

// Capacity is the stockpile limit (0 = uncapped)
func (s *Site) Capacity() int {
	return s.infra.Capacity()
}

// Stock returns the quantity of one resource held at the site
func (s *Site) Stock(t shared.ResourceType) int {
	return s.stockpile[t]
}

// StockpileTotal sums every resource held at the site
func (s *Site) StockpileTotal() int {
	total := 0
	for _, q := range s.stockpile {
		total += q
	}
	return total
}

// Stockpile returns a copy of the site's stock
func (s *Site) Stockpile() map[shared.ResourceType]int {
	return copyPositive(s.stockpile)
}

// AddStock credits units to the stockpile
func (s *Site) AddStock(t shared.ResourceType, amount int) {
	if amount <= 0 {
		return
	}
	s.stockpile[t] += amount
}

// RemoveStock debits units, or returns InsufficientStockError without mutating
func (s *Site) RemoveStock(t shared.ResourceType, amount int) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "quantity to remove must be non-negative")
	}
	if s.stockpile[t] < amount {
		return shared.NewInsufficientStockError(t, amount, s.stockpile[t])
	}
	s.stockpile[t] -= amount
	if s.stockpile[t] == 0 {
		delete(s.stockpile, t)
	}
	return nil
}

// InstalledMachines returns a copy of the machines installed at the site
func (s *Site) InstalledMachines() map[shared.ResourceType]int {
	return copyPositive(s.machines)
}

// InstallMachine adds one machine unit to the site
func (s *Site) InstallMachine(t shared.ResourceType) error {
	if !t.IsMachine() {
		return shared.NewValidationError("machine", string(t)+" cannot be installed at a site")
	}
	s.machines[t]++
	return nil
}

// SetActiveRecipe selects the recipe run by the site's processing plant ("" clears it)
func (s *Site) SetActiveRecipe(recipeID string) {
	s.activeRecipeID = recipeID
}

func copyPositive(in map[shared.ResourceType]int) map[shared.ResourceType]int {
	out := make(map[shared.ResourceType]int, len(in))
	for k, v := range in {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}
