package workshop

import (
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// MachineType is the machine installed in a workshop slot
type MachineType string

const (
	MachineNone         MachineType = "NONE"
	MachineBasicSmelter MachineType = "BASIC_SMELTER"
	MachineAssembler    MachineType = "ASSEMBLER"
)

// IsValid checks if the machine type is known
func (m MachineType) IsValid() bool {
	switch m {
	case MachineNone, MachineBasicSmelter, MachineAssembler:
		return true
	default:
		return false
	}
}

// ParseMachineType parses a string into a buildable MachineType
func ParseMachineType(s string) (MachineType, error) {
	m := MachineType(s)
	if !m.IsValid() || m == MachineNone {
		return "", fmt.Errorf("invalid machine type: %s", s)
	}
	return m, nil
}

// RecipeDefinition is the immutable catalog entry of a crafting recipe.
// Duration is in seconds, one tick per second.
type RecipeDefinition struct {
	ID           string              `yaml:"id"`
	Name         string              `yaml:"name"`
	Input        shared.ResourceType `yaml:"input"`
	InputAmount  int                 `yaml:"input_amount"`
	Output       shared.ResourceType `yaml:"output"`
	OutputAmount int                 `yaml:"output_amount"`
	Duration     float64             `yaml:"duration"`
	Machine      MachineType         `yaml:"machine"`
	RequiredTech string              `yaml:"required_tech"`
}

// ProgressPerTick is the share of the job completed by one tick
func (r RecipeDefinition) ProgressPerTick() float64 {
	if r.Duration <= 0 {
		return 1
	}
	return 1 / r.Duration
}

// Validate checks a catalog entry
func (r RecipeDefinition) Validate() error {
	if r.ID == "" {
		return shared.NewValidationError("id", "recipe id is required")
	}
	if !r.Input.IsValid() || !r.Output.IsValid() {
		return shared.NewValidationError("input", "recipe "+r.ID+" references an unknown resource")
	}
	if r.InputAmount <= 0 || r.OutputAmount <= 0 {
		return shared.NewValidationError("input_amount", "recipe "+r.ID+" needs positive amounts")
	}
	if !r.Machine.IsValid() || r.Machine == MachineNone {
		return shared.NewValidationError("machine", "recipe "+r.ID+" needs a machine")
	}
	return nil
}

// Slot is one workshop position
type Slot struct {
	Index          int
	Machine        MachineType
	ActiveRecipeID string
	Progress       float64
	Working        bool
	Automated      bool
}
