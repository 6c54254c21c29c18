package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) AddStatBonus(stat shared.Stat, amount float64) error {
	h.calls = append(h.calls, "stat:"+string(stat))
	return nil
}

func (h *recordingHandler) UnlockFeature(feature string) error {
	h.calls = append(h.calls, "feature:"+feature)
	return nil
}

func (h *recordingHandler) AddBiomeBonus(biome shared.Biome, amount float64) error {
	h.calls = append(h.calls, "biome:"+string(biome))
	return nil
}

func (h *recordingHandler) AddStatMultiplier(stat shared.Stat, multiplier float64) error {
	h.calls = append(h.calls, "multiplier:"+string(stat))
	return nil
}

func (h *recordingHandler) RegisterRetention(fraction float64) error {
	h.calls = append(h.calls, "retention")
	return effect.ErrNotApplicable
}

func TestDispatch_RoutesEveryVariant(t *testing.T) {
	// Arrange
	h := &recordingHandler{}
	effects := []effect.Effect{
		effect.StatBonus(shared.StatMiningSpeed, 0.1),
		effect.UnlockFeature(shared.FeatureRepairDroid),
		effect.BiomeBonus(shared.BiomeBarren, 0.2),
		effect.StatMultiplier(shared.StatGlobalMiningSpeed, 0.5),
	}

	// Act
	for _, e := range effects {
		require.NoError(t, effect.Dispatch(e, h))
	}
	err := effect.Dispatch(effect.Retention(0.1), h)

	// Assert
	assert.ErrorIs(t, err, effect.ErrNotApplicable)
	assert.Equal(t, []string{
		"stat:MINING_SPEED",
		"feature:REPAIR_DROID",
		"biome:BARREN",
		"multiplier:GLOBAL_MINING_SPEED",
		"retention",
	}, h.calls)
}

func TestDispatch_UnknownKind(t *testing.T) {
	err := effect.Dispatch(effect.Effect{Kind: "TELEPORT"}, &recordingHandler{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, effect.BiomeBonus(shared.BiomeIce, 0.2).Validate())
	assert.Error(t, effect.Effect{Kind: effect.KindBiomeBonus, Target: "SWAMP"}.Validate())
	assert.Error(t, effect.Effect{Kind: effect.KindUnlockFeature}.Validate())
	assert.Error(t, effect.Retention(-1).Validate())
	assert.Error(t, effect.Effect{Kind: "NOPE"}.Validate())
}

func TestString(t *testing.T) {
	assert.Equal(t, "MINING_SPEED +0.2", effect.StatBonus(shared.StatMiningSpeed, 0.2).String())
	assert.Equal(t, "GLOBAL_MINING_SPEED ×1.5", effect.StatMultiplier(shared.StatGlobalMiningSpeed, 1.5).String())
	assert.Equal(t, "unlocks REPAIR_DROID", effect.UnlockFeature("REPAIR_DROID").String())
	assert.Equal(t, "retain 10%", effect.Retention(0.1).String())
}
