package shared

import (
	"fmt"
	"sort"
)

// ResourceType identifies a tradable or craftable good
type ResourceType string

const (
	// Raw ores
	ResourceIron       ResourceType = "IRON"
	ResourceGold       ResourceType = "GOLD"
	ResourcePlatinum   ResourceType = "PLATINUM"
	ResourceDiamond    ResourceType = "DIAMOND"
	ResourceAntimatter ResourceType = "ANTIMATTER"
	ResourceTitanium   ResourceType = "TITANIUM"
	ResourceHydrogen   ResourceType = "HYDROGEN"
	ResourceHelium3    ResourceType = "HELIUM3"
	ResourceIce        ResourceType = "ICE"

	// Refined goods
	ResourceIronIngot ResourceType = "IRON_INGOT"
	ResourceGoldIngot ResourceType = "GOLD_INGOT"
	ResourceSteel     ResourceType = "STEEL"
	ResourcePlating   ResourceType = "PLATING"
	ResourceCircuit   ResourceType = "CIRCUIT"
	ResourceCryoFluid ResourceType = "CRYO_FLUID"

	// Installable machines
	ResourceMiningDrill  ResourceType = "MINING_DRILL"
	ResourceAutoMiner    ResourceType = "AUTO_MINER"
	ResourceLogisticsBot ResourceType = "LOGISTICS_BOT"
)

// AllResourceTypes returns every resource type in canonical order.
// Any iteration over a resource map that affects the outcome uses this order.
func AllResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceIron,
		ResourceGold,
		ResourcePlatinum,
		ResourceDiamond,
		ResourceAntimatter,
		ResourceTitanium,
		ResourceHydrogen,
		ResourceHelium3,
		ResourceIce,
		ResourceIronIngot,
		ResourceGoldIngot,
		ResourceSteel,
		ResourcePlating,
		ResourceCircuit,
		ResourceCryoFluid,
		ResourceMiningDrill,
		ResourceAutoMiner,
		ResourceLogisticsBot,
	}
}

var resourceOrder = func() map[ResourceType]int {
	order := make(map[ResourceType]int)
	for i, r := range AllResourceTypes() {
		order[r] = i
	}
	return order
}()

// String returns the string representation of the ResourceType
func (r ResourceType) String() string {
	return string(r)
}

// IsValid checks if the resource type is known
func (r ResourceType) IsValid() bool {
	_, ok := resourceOrder[r]
	return ok
}

// IsMachine reports whether the resource can be installed at a site
func (r ResourceType) IsMachine() bool {
	switch r {
	case ResourceMiningDrill, ResourceAutoMiner, ResourceLogisticsBot:
		return true
	default:
		return false
	}
}

// ParseResourceType parses a string into a ResourceType
func ParseResourceType(s string) (ResourceType, error) {
	r := ResourceType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid resource type: %s", s)
	}
	return r, nil
}

// SortResourceTypes sorts types in canonical order; unknown types go last, by name
func SortResourceTypes(types []ResourceType) {
	sort.SliceStable(types, func(i, j int) bool {
		oi, iok := resourceOrder[types[i]]
		oj, jok := resourceOrder[types[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return types[i] < types[j]
		}
	})
}

// SortedKeys returns the keys of a resource-keyed map in canonical order
func SortedKeys[V any](m map[ResourceType]V) []ResourceType {
	keys := make([]ResourceType, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortResourceTypes(keys)
	return keys
}
