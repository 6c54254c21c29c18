package logistics

import (
	"errors"

	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// UnitsPerLogisticsLevel is what each effective logistics level moves per type per tick
const UnitsPerLogisticsLevel = 5

// Sink receives collected resources
type Sink interface {
	AddResource(t shared.ResourceType, amount int) error
}

// CollectLocalResources loads a ship of the given capacity from a site's
// stockpile according to CalculateTransfer and unloads it into sink. It returns
// what actually moved; types the sink rejects stay at the site.
func CollectLocalResources(site *location.Site, capacity int, quotas Quotas, sink Sink) (Plan, error) {
	plan := CalculateTransfer(site.Stockpile(), capacity, quotas)
	return apply(site, plan, sink)
}

// AutoLogisticsTick moves effectiveLogistics × 5 units of every stocked type from
// each ready site straight into sink, independent of ship capacity and quotas.
func AutoLogisticsTick(sites []*location.Site, sink Sink) (Plan, error) {
	moved := make(Plan)
	var errs []error
	for _, site := range sites {
		if !site.IsReadyToMine() {
			continue
		}
		rate := site.EffectiveLogistics() * UnitsPerLogisticsLevel
		if rate <= 0 {
			continue
		}
		plan := make(Plan)
		for t, stock := range site.Stockpile() {
			plan[t] = min(rate, stock)
		}
		applied, err := apply(site, plan, sink)
		if err != nil {
			errs = append(errs, err)
		}
		for t, n := range applied {
			moved[t] += n
		}
	}
	return moved, errors.Join(errs...)
}

func apply(site *location.Site, plan Plan, sink Sink) (Plan, error) {
	applied := make(Plan)
	var errs []error
	for _, t := range shared.SortedKeys(plan) {
		n := plan[t]
		if n <= 0 {
			continue
		}
		if err := site.RemoveStock(t, n); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := sink.AddResource(t, n); err != nil {
			site.AddStock(t, n)
			errs = append(errs, err)
			continue
		}
		applied[t] = n
	}
	return applied, errors.Join(errs...)
}
