package shared

import "fmt"

// Biome tags a site's environment; technologies grant per-biome production bonuses
type Biome string

const (
	BiomeTerrestrial   Biome = "TERRESTRIAL"
	BiomeBarren        Biome = "BARREN"
	BiomeVolcanic      Biome = "VOLCANIC"
	BiomeIce           Biome = "ICE"
	BiomeGasGiant      Biome = "GAS_GIANT"
	BiomeAsteroidField Biome = "ASTEROID_FIELD"
)

// IsValid checks if the biome is known
func (b Biome) IsValid() bool {
	switch b {
	case BiomeTerrestrial, BiomeBarren, BiomeVolcanic, BiomeIce, BiomeGasGiant, BiomeAsteroidField:
		return true
	default:
		return false
	}
}

// ParseBiome parses a string into a Biome
func ParseBiome(s string) (Biome, error) {
	b := Biome(s)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid biome: %s", s)
	}
	return b, nil
}
