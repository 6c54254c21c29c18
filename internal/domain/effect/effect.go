package effect

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// Kind discriminates the closed set of effect variants
type Kind string

const (
	KindStatBonus      Kind = "STAT_BONUS"
	KindUnlockFeature  Kind = "UNLOCK_FEATURE"
	KindBiomeBonus     Kind = "BIOME_BONUS"
	KindStatMultiplier Kind = "STAT_MULTIPLIER"
	KindRetention      Kind = "RETENTION"
)

// Effect is one entry of a technology's or upgrade's effect list.
//
// Target holds the stat, feature id or biome depending on Kind; Amount holds the
// bonus, multiplier or retention fraction. UNLOCK_FEATURE ignores Amount and
// RETENTION ignores Target.
type Effect struct {
	Kind   Kind    `yaml:"kind" json:"kind"`
	Target string  `yaml:"target,omitempty" json:"target,omitempty"`
	Amount float64 `yaml:"amount,omitempty" json:"amount,omitempty"`
}

// ErrNotApplicable is returned by a Handler for variants it does not own
var ErrNotApplicable = errors.New("effect not applicable")

// Handler receives dispatched effects, one method per variant
type Handler interface {
	AddStatBonus(stat shared.Stat, amount float64) error
	UnlockFeature(feature string) error
	AddBiomeBonus(biome shared.Biome, amount float64) error
	AddStatMultiplier(stat shared.Stat, multiplier float64) error
	RegisterRetention(fraction float64) error
}

// StatBonus builds a STAT_BONUS effect
func StatBonus(stat shared.Stat, amount float64) Effect {
	return Effect{Kind: KindStatBonus, Target: string(stat), Amount: amount}
}

// UnlockFeature builds an UNLOCK_FEATURE effect
func UnlockFeature(feature string) Effect {
	return Effect{Kind: KindUnlockFeature, Target: feature}
}

// BiomeBonus builds a BIOME_BONUS effect
func BiomeBonus(biome shared.Biome, amount float64) Effect {
	return Effect{Kind: KindBiomeBonus, Target: string(biome), Amount: amount}
}

// StatMultiplier builds a STAT_MULTIPLIER effect
func StatMultiplier(stat shared.Stat, multiplier float64) Effect {
	return Effect{Kind: KindStatMultiplier, Target: string(stat), Amount: multiplier}
}

// Retention builds a RETENTION effect
func Retention(fraction float64) Effect {
	return Effect{Kind: KindRetention, Amount: fraction}
}

// Validate checks the variant tag and its payload
func (e Effect) Validate() error {
	switch e.Kind {
	case KindStatBonus, KindStatMultiplier:
		if e.Target == "" {
			return shared.NewValidationError("target", fmt.Sprintf("%s effect requires a stat", e.Kind))
		}
	case KindUnlockFeature:
		if e.Target == "" {
			return shared.NewValidationError("target", "UNLOCK_FEATURE effect requires a feature id")
		}
	case KindBiomeBonus:
		if !shared.Biome(e.Target).IsValid() {
			return shared.NewValidationError("target", fmt.Sprintf("invalid biome: %s", e.Target))
		}
	case KindRetention:
		if e.Amount < 0 {
			return shared.NewValidationError("amount", "retention fraction must be non-negative")
		}
	default:
		return shared.NewValidationError("kind", fmt.Sprintf("unknown effect kind: %s", e.Kind))
	}
	return nil
}

// Dispatch routes an effect to the matching handler method.
// It is the only place effects are applied.
func Dispatch(e Effect, h Handler) error {
	switch e.Kind {
	case KindStatBonus:
		return h.AddStatBonus(shared.Stat(e.Target), e.Amount)
	case KindUnlockFeature:
		return h.UnlockFeature(e.Target)
	case KindBiomeBonus:
		return h.AddBiomeBonus(shared.Biome(e.Target), e.Amount)
	case KindStatMultiplier:
		return h.AddStatMultiplier(shared.Stat(e.Target), e.Amount)
	case KindRetention:
		return h.RegisterRetention(e.Amount)
	default:
		return fmt.Errorf("unknown effect kind: %s", e.Kind)
	}
}

// String renders the effect for listings, e.g. "MINING_SPEED +0.2"
func (e Effect) String() string {
	switch e.Kind {
	case KindStatBonus, KindBiomeBonus:
		return fmt.Sprintf("%s %+g", e.Target, e.Amount)
	case KindStatMultiplier:
		return fmt.Sprintf("%s ×%g", e.Target, e.Amount)
	case KindUnlockFeature:
		return "unlocks " + e.Target
	case KindRetention:
		return fmt.Sprintf("retain %g%%", e.Amount*100)
	default:
		return string(e.Kind)
	}
}
