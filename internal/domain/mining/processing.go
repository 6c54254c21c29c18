package mining

import (
	"math"

	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// RecipeBook looks up recipes
type RecipeBook interface {
	Recipe(id string) (workshop.RecipeDefinition, error)
}

// Processing is the outcome of one processing tick at a site
type Processing struct {
	SiteID     string
	RecipeID   string
	Operations int
	Output     shared.ResourceType
	Produced   int
}

// Processor runs a site's on-site refinery against its own stockpile
type Processor struct {
	recipes RecipeBook
	tech    workshop.TechChecker
	rng     shared.Random
}

// NewProcessor creates a site processor
func NewProcessor(recipes RecipeBook, tech workshop.TechChecker, rng shared.Random) *Processor {
	return &Processor{recipes: recipes, tech: tech, rng: rng}
}

// ProcessTick runs processingLevel / duration recipe operations on the site's
// stockpile. The fractional part of the rate is resolved as a probability and
// the count is limited by the stocked input.
func (p *Processor) ProcessTick(site *location.Site) (Processing, error) {
	level := site.Infrastructure().Processing
	recipeID := site.ActiveRecipeID()
	if level <= 0 || recipeID == "" {
		return Processing{}, nil
	}

	recipe, err := p.recipes.Recipe(recipeID)
	if err != nil {
		return Processing{}, err
	}
	if recipe.RequiredTech != "" && !p.tech.IsUnlocked(recipe.RequiredTech) {
		return Processing{}, shared.NewPreconditionError("recipe %s requires technology %s", recipe.ID, recipe.RequiredTech)
	}

	rate := float64(level) * recipe.ProgressPerTick()
	ops := int(math.Floor(rate))
	if fraction := rate - float64(ops); fraction > 0 && p.rng.Float64() < fraction {
		ops++
	}
	ops = utils.Min(ops, site.Stock(recipe.Input)/recipe.InputAmount)
	if ops <= 0 {
		return Processing{}, nil
	}

	if err := site.RemoveStock(recipe.Input, ops*recipe.InputAmount); err != nil {
		return Processing{}, err
	}
	site.AddStock(recipe.Output, ops*recipe.OutputAmount)

	return Processing{
		SiteID:     site.ID(),
		RecipeID:   recipe.ID,
		Operations: ops,
		Output:     recipe.Output,
		Produced:   ops * recipe.OutputAmount,
	}, nil
}
