package research

import (
	"errors"
	"sort"

	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

const (
	// PointsPerResearcherSecond is each researcher's output
	PointsPerResearcherSecond = 1.0
	// CreditsPerResearchPoint is the exchange rate of InvestCredits
	CreditsPerResearchPoint = 10.0
)

// Engine tracks research points, unlocked technologies and the modifiers their
// effects produce. Effects reach the accumulators only through effect.Dispatch,
// once per unlock event.
type Engine struct {
	definitions map[string]TechDefinition
	order       []string

	unlocked       map[string]bool
	researchPoints float64
	researchers    int

	statModifiers    map[shared.Stat]float64
	unlockedFeatures map[string]bool
	biomeModifiers   map[shared.Biome]float64

	onStatChanged func(shared.Stat)
}

var _ effect.Handler = (*Engine)(nil)

// NewEngine creates an engine over the technology catalog
func NewEngine(definitions []TechDefinition) *Engine {
	e := &Engine{definitions: make(map[string]TechDefinition, len(definitions))}
	for _, def := range definitions {
		e.definitions[def.ID] = def
		e.order = append(e.order, def.ID)
	}
	e.Reset()
	return e
}

// OnStatChanged registers the recalculation hook for stats with dependents
func (e *Engine) OnStatChanged(fn func(shared.Stat)) {
	e.onStatChanged = fn
}

// Reset drops every unlock, point and modifier
func (e *Engine) Reset() {
	e.unlocked = make(map[string]bool)
	e.researchPoints = 0
	e.researchers = 0
	e.clearModifiers()
}

func (e *Engine) clearModifiers() {
	e.statModifiers = make(map[shared.Stat]float64)
	e.unlockedFeatures = make(map[string]bool)
	e.biomeModifiers = make(map[shared.Biome]float64)
}

// Definitions returns the catalog in declaration order
func (e *Engine) Definitions() []TechDefinition {
	out := make([]TechDefinition, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.definitions[id])
	}
	return out
}

// Definition looks up one technology
func (e *Engine) Definition(id string) (TechDefinition, error) {
	def, ok := e.definitions[id]
	if !ok {
		return TechDefinition{}, shared.NewUnknownIDError("technology", id)
	}
	return def, nil
}

// Unlock spends research points on a technology and applies its effects.
// It fails without mutation when the technology is unknown, already unlocked,
// or unaffordable.
func (e *Engine) Unlock(id string) error {
	def, err := e.Definition(id)
	if err != nil {
		return err
	}
	if e.unlocked[id] {
		return shared.NewPreconditionError("technology %s is already unlocked", id)
	}
	if e.researchPoints < def.ResearchPoints {
		return shared.NewInsufficientResearchPointsError(def.ResearchPoints, e.researchPoints)
	}

	e.researchPoints -= def.ResearchPoints
	e.unlocked[id] = true
	return e.apply(def)
}

// LoadData restores researchers, points and unlocks, rebuilding every modifier
// from scratch. Unknown ids are skipped and returned.
func (e *Engine) LoadData(researchers int, points float64, unlockedIDs []string) ([]string, error) {
	e.clearModifiers()
	e.unlocked = make(map[string]bool)
	e.researchers = max(researchers, 0)
	e.researchPoints = max(points, 0)

	var skipped []string
	var errs []error
	for _, id := range unlockedIDs {
		def, ok := e.definitions[id]
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		if e.unlocked[id] {
			continue
		}
		e.unlocked[id] = true
		if err := e.apply(def); err != nil {
			errs = append(errs, err)
		}
	}
	return skipped, errors.Join(errs...)
}

func (e *Engine) apply(def TechDefinition) error {
	var errs []error
	for _, eff := range def.Effects {
		if err := effect.Dispatch(eff, e); err != nil && !errors.Is(err, effect.ErrNotApplicable) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// effect.Handler

// AddStatBonus accumulates an additive stat bonus
func (e *Engine) AddStatBonus(stat shared.Stat, amount float64) error {
	e.statModifiers[stat] += amount
	if stat.HasFleetDependents() && e.onStatChanged != nil {
		e.onStatChanged(stat)
	}
	return nil
}

// UnlockFeature adds a feature flag
func (e *Engine) UnlockFeature(feature string) error {
	e.unlockedFeatures[feature] = true
	return nil
}

// AddBiomeBonus accumulates a per-biome production bonus
func (e *Engine) AddBiomeBonus(biome shared.Biome, amount float64) error {
	e.biomeModifiers[biome] += amount
	return nil
}

// AddStatMultiplier is a civilization effect
func (e *Engine) AddStatMultiplier(shared.Stat, float64) error {
	return effect.ErrNotApplicable
}

// RegisterRetention is a civilization effect
func (e *Engine) RegisterRetention(float64) error {
	return effect.ErrNotApplicable
}

// Queries

func (e *Engine) IsUnlocked(id string) bool { return e.unlocked[id] }
func (e *Engine) HasFeature(feature string) bool { return e.unlockedFeatures[feature] }
func (e *Engine) StatBonus(stat shared.Stat) float64 { return e.statModifiers[stat] }
func (e *Engine) BiomeBonus(biome shared.Biome) float64 { return e.biomeModifiers[biome] }
func (e *Engine) ResearchPoints() float64 { return e.researchPoints }
func (e *Engine) Researchers() int { return e.researchers }

// UnlockedIDs returns unlocked technology ids in catalog order
func (e *Engine) UnlockedIDs() []string {
	var ids []string
	for _, id := range e.order {
		if e.unlocked[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// States returns every technology with its unlock flag
func (e *Engine) States() []TechState {
	states := make([]TechState, 0, len(e.order))
	for _, id := range e.order {
		states = append(states, TechState{ID: id, Unlocked: e.unlocked[id]})
	}
	return states
}

// StatModifiers returns a copy of the stat accumulator
func (e *Engine) StatModifiers() map[shared.Stat]float64 {
	out := make(map[shared.Stat]float64, len(e.statModifiers))
	for k, v := range e.statModifiers {
		out[k] = v
	}
	return out
}

// BiomeModifiers returns a copy of the biome accumulator
func (e *Engine) BiomeModifiers() map[shared.Biome]float64 {
	out := make(map[shared.Biome]float64, len(e.biomeModifiers))
	for k, v := range e.biomeModifiers {
		out[k] = v
	}
	return out
}

// Features returns unlocked feature ids, sorted
func (e *Engine) Features() []string {
	out := make([]string, 0, len(e.unlockedFeatures))
	for f := range e.unlockedFeatures {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Research economy

// AddResearchPoints credits points; negatives are ignored
func (e *Engine) AddResearchPoints(points float64) {
	if points > 0 {
		e.researchPoints += points
	}
}

// HireResearcher adds one researcher
func (e *Engine) HireResearcher() {
	e.researchers++
}

// Accrue credits the researchers' output for the elapsed seconds, scaled by multiplier
func (e *Engine) Accrue(seconds, multiplier float64) float64 {
	gained := float64(e.researchers) * PointsPerResearcherSecond * seconds * multiplier
	e.AddResearchPoints(gained)
	return gained
}

// PointsForCredits converts an investment into research points
func PointsForCredits(credits float64) float64 {
	return credits / CreditsPerResearchPoint
}
