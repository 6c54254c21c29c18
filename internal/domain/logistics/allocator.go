package logistics

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// Plan maps each resource type to the units to move
type Plan map[shared.ResourceType]int

// Total sums the plan
func (p Plan) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Quotas are player-set shares of ship capacity per resource type
type Quotas map[shared.ResourceType]float64

// Set stores a quota clamped to [0, 1]; zero removes the entry
func (q Quotas) Set(t shared.ResourceType, pct float64) {
	pct = utils.Clamp01(pct)
	if pct == 0 {
		delete(q, t)
		return
	}
	q[t] = pct
}

// Clone copies the quotas
func (q Quotas) Clone() Quotas {
	out := make(Quotas, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

// CalculateTransfer decides how many units of each stocked resource fit in a
// ship of the given capacity. It never mutates its inputs.
//
// With quotas, each quota'd type gets floor(capacity × pct) capped by stock;
// unused capacity is not redistributed and the running total never exceeds
// capacity. Without quotas, capacity is split evenly and leftovers are
// redistributed in rounds until capacity or stock runs out.
func CalculateTransfer(stockpile map[shared.ResourceType]int, capacity int, quotas Quotas) Plan {
	plan := make(Plan)
	if capacity <= 0 {
		return plan
	}
	if len(quotas) > 0 {
		allocateByQuota(plan, stockpile, capacity, quotas)
		return plan
	}
	allocateBalanced(plan, stockpile, capacity)
	return plan
}

func allocateByQuota(plan Plan, stockpile map[shared.ResourceType]int, capacity int, quotas Quotas) {
	remaining := capacity
	for _, t := range shared.SortedKeys(quotas) {
		available := stockpile[t]
		if available <= 0 || remaining <= 0 {
			continue
		}
		target := utils.FloorToInt(float64(capacity) * quotas[t])
		take := utils.Min3(target, available, remaining)
		if take <= 0 {
			continue
		}
		plan[t] = take
		remaining -= take
	}
}

func allocateBalanced(plan Plan, stockpile map[shared.ResourceType]int, capacity int) {
	available := make(map[shared.ResourceType]int)
	for t, n := range stockpile {
		if n > 0 {
			available[t] = n
		}
	}
	types := shared.SortedKeys(available)
	if len(types) == 0 {
		return
	}

	remaining := capacity
	take := func(t shared.ResourceType, share int) int {
		n := utils.Min3(share, available[t], remaining)
		if n <= 0 {
			return 0
		}
		plan[t] += n
		available[t] -= n
		remaining -= n
		return n
	}

	share := capacity / len(types)
	for _, t := range types {
		take(t, share)
	}

	for remaining > 0 {
		var active []shared.ResourceType
		for _, t := range types {
			if available[t] > 0 {
				active = append(active, t)
			}
		}
		if len(active) == 0 {
			return
		}
		share = utils.Max(1, remaining/len(active))
		moved := 0
		for _, t := range active {
			moved += take(t, share)
		}
		if moved == 0 {
			return
		}
	}
}
