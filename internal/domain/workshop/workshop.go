package workshop

import (
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

const (
	// MaxMachinesPerType caps smelters and assemblers independently
	MaxMachinesPerType = 5
	// AutomationCost is the credit price of installing an AI controller in a slot
	AutomationCost = 2000.0
)

// MachinePrice is the credit price of one additional machine
var MachinePrice = map[MachineType]float64{
	MachineBasicSmelter: 1500,
	MachineAssembler:    3000,
}

// Inventory is the global stock jobs draw inputs from and deliver outputs to
type Inventory interface {
	Has(t shared.ResourceType, amount int) bool
	Quantity(t shared.ResourceType) int
	RemoveResource(t shared.ResourceType, amount int) error
	AddResource(t shared.ResourceType, amount int) error
}

// TechChecker reports unlocked technologies
type TechChecker interface {
	IsUnlocked(id string) bool
}

// Completion describes a finished job
type Completion struct {
	SlotIndex int
	RecipeID  string
	Output    shared.ResourceType
	Amount    int
}

// TickReport is the outcome of one workshop tick
type TickReport struct {
	Completed []Completion
	Started   []int
	// Declined holds automated restarts that could not start (usually missing inputs)
	Declined []error
}

// Workshop runs per-slot crafting jobs
type Workshop struct {
	recipes    map[string]RecipeDefinition
	order      []string
	slots      []*Slot
	smelters   int
	assemblers int
}

// NewWorkshop creates the starting workshop: one smelter and one assembler
func NewWorkshop(recipes []RecipeDefinition) *Workshop {
	w := &Workshop{recipes: make(map[string]RecipeDefinition, len(recipes))}
	for _, r := range recipes {
		w.recipes[r.ID] = r
		w.order = append(w.order, r.ID)
	}
	w.Reset()
	return w
}

// Reset restores the starting machines and empties every slot
func (w *Workshop) Reset() {
	w.smelters = 1
	w.assemblers = 1
	w.slots = defaultLayout(w.smelters, w.assemblers)
}

func defaultLayout(smelters, assemblers int) []*Slot {
	slots := make([]*Slot, 0, smelters+assemblers)
	for i := 0; i < smelters; i++ {
		slots = append(slots, &Slot{Index: len(slots), Machine: MachineBasicSmelter})
	}
	for i := 0; i < assemblers; i++ {
		slots = append(slots, &Slot{Index: len(slots), Machine: MachineAssembler})
	}
	return slots
}

func (w *Workshop) SmelterCount() int   { return w.smelters }
func (w *Workshop) AssemblerCount() int { return w.assemblers }

// MachineCount returns how many machines of a type are owned
func (w *Workshop) MachineCount(m MachineType) int {
	switch m {
	case MachineBasicSmelter:
		return w.smelters
	case MachineAssembler:
		return w.assemblers
	default:
		return 0
	}
}

// Recipes returns the recipe catalog in declaration order
func (w *Workshop) Recipes() []RecipeDefinition {
	out := make([]RecipeDefinition, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.recipes[id])
	}
	return out
}

// Recipe looks up a recipe
func (w *Workshop) Recipe(id string) (RecipeDefinition, error) {
	r, ok := w.recipes[id]
	if !ok {
		return RecipeDefinition{}, shared.NewUnknownIDError("recipe", id)
	}
	return r, nil
}

// Slots returns copies of every slot
func (w *Workshop) Slots() []Slot {
	out := make([]Slot, 0, len(w.slots))
	for _, s := range w.slots {
		out = append(out, *s)
	}
	return out
}

// Slot returns a copy of one slot
func (w *Workshop) Slot(index int) (Slot, error) {
	s, err := w.slot(index)
	if err != nil {
		return Slot{}, err
	}
	return *s, nil
}

func (w *Workshop) slot(index int) (*Slot, error) {
	if index < 0 || index >= len(w.slots) {
		return nil, shared.NewUnknownIDError("workshop slot", fmt.Sprint(index))
	}
	return w.slots[index], nil
}

// StartJob debits a recipe's inputs and starts it in a slot.
// automated marks retries issued by the slot's AI so callers can log them quietly.
func (w *Workshop) StartJob(index int, recipeID string, inv Inventory, tech TechChecker, automated bool) error {
	slot, err := w.slot(index)
	if err != nil {
		return err
	}
	if slot.Working {
		return shared.NewPreconditionError("slot %d is already working on %s", index, slot.ActiveRecipeID)
	}
	recipe, err := w.Recipe(recipeID)
	if err != nil {
		return err
	}
	if slot.Machine != recipe.Machine {
		return shared.NewInvalidMachineMatchError(index, recipe.ID, string(slot.Machine), string(recipe.Machine), automated)
	}
	if recipe.RequiredTech != "" && !tech.IsUnlocked(recipe.RequiredTech) {
		return shared.NewPreconditionError("recipe %s requires technology %s", recipe.ID, recipe.RequiredTech)
	}
	if !inv.Has(recipe.Input, recipe.InputAmount) {
		return shared.NewInsufficientStockError(recipe.Input, recipe.InputAmount, inv.Quantity(recipe.Input))
	}
	if err := inv.RemoveResource(recipe.Input, recipe.InputAmount); err != nil {
		return err
	}

	slot.ActiveRecipeID = recipe.ID
	slot.Progress = 0
	slot.Working = true
	return nil
}

// Tick advances every working slot by one second. A slot that completes goes
// idle; an idle automated slot with an active recipe tries to restart it.
func (w *Workshop) Tick(inv Inventory, tech TechChecker) TickReport {
	var report TickReport
	for _, slot := range w.slots {
		if !slot.Working {
			if slot.Automated && slot.ActiveRecipeID != "" {
				if err := w.StartJob(slot.Index, slot.ActiveRecipeID, inv, tech, true); err != nil {
					report.Declined = append(report.Declined, err)
				} else {
					report.Started = append(report.Started, slot.Index)
				}
			}
			continue
		}

		recipe, err := w.Recipe(slot.ActiveRecipeID)
		if err != nil {
			slot.Working = false
			slot.Progress = 0
			continue
		}
		slot.Progress += recipe.ProgressPerTick()
		if !utils.AtLeast(slot.Progress, 1) {
			continue
		}
		if err := inv.AddResource(recipe.Output, recipe.OutputAmount); err != nil {
			report.Declined = append(report.Declined, err)
		}
		slot.Progress = 0
		slot.Working = false
		report.Completed = append(report.Completed, Completion{
			SlotIndex: slot.Index,
			RecipeID:  recipe.ID,
			Output:    recipe.Output,
			Amount:    recipe.OutputAmount,
		})
	}
	return report
}

// InstallAutomation marks a slot as AI-controlled
func (w *Workshop) InstallAutomation(index int) error {
	slot, err := w.slot(index)
	if err != nil {
		return err
	}
	if slot.Automated {
		return shared.NewPreconditionError("slot %d is already automated", index)
	}
	slot.Automated = true
	return nil
}

// AddMachine adds a machine and a slot holding it. At the per-type cap the call
// is refused with a PreconditionError.
func (w *Workshop) AddMachine(m MachineType) error {
	switch m {
	case MachineBasicSmelter, MachineAssembler:
	default:
		return shared.NewValidationError("machine", "cannot build machine "+string(m))
	}
	if w.MachineCount(m) >= MaxMachinesPerType {
		return shared.NewPreconditionError("already at the maximum of %d %s machines", MaxMachinesPerType, m)
	}
	if m == MachineBasicSmelter {
		w.smelters++
	} else {
		w.assemblers++
	}
	w.slots = append(w.slots, &Slot{Index: len(w.slots), Machine: m})
	return nil
}

// Restore overwrites the workshop from saved data. Without saved slots the
// layout is rebuilt from the machine counts. With saved slots the counts are
// taken from the slots themselves, and slot data is normalised so the
// invariants hold (index = position, progress in [0,1), known recipes only).
func (w *Workshop) Restore(smelters, assemblers int, slots []Slot) {
	if len(slots) == 0 {
		w.smelters = clampCount(smelters)
		w.assemblers = clampCount(assemblers)
		w.slots = defaultLayout(w.smelters, w.assemblers)
		return
	}

	smelters, assemblers = 0, 0
	w.slots = make([]*Slot, 0, len(slots))
	for i, saved := range slots {
		s := saved
		s.Index = i
		if !s.Machine.IsValid() {
			s.Machine = MachineNone
		}
		if _, ok := w.recipes[s.ActiveRecipeID]; !ok {
			s.ActiveRecipeID = ""
			s.Working = false
		}
		if !s.Working || s.Progress < 0 || s.Progress >= 1 {
			s.Progress = 0
		}
		switch s.Machine {
		case MachineBasicSmelter:
			smelters++
		case MachineAssembler:
			assemblers++
		}
		w.slots = append(w.slots, &s)
	}
	w.smelters = clampCount(smelters)
	w.assemblers = clampCount(assemblers)
}

func clampCount(n int) int {
	return utils.Max(0, utils.Min(n, MaxMachinesPerType))
}
