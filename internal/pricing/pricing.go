package pricing

import (
	"sort"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
)

// EffectivePrice computes the price charged for a check: the per-check
// override when present, otherwise the catalog base price, times the
// per-check quantity multiplier (minimum 1). An unknown check name resolves
// to a base price of 0 so stale names left in old journeys never fail.
func EffectivePrice(name string, overrides, multipliers map[string]int64, cat *catalog.Catalog) int64 {
	price, _ := ResolveEffectivePrice(name, overrides, multipliers, cat)
	return price
}

// ResolveEffectivePrice is EffectivePrice with a distinguishable not-found
// signal: found is false when the name has no override and no catalog entry.
func ResolveEffectivePrice(name string, overrides, multipliers map[string]int64, cat *catalog.Catalog) (price int64, found bool) {
	base, ok := overrides[name]
	if !ok {
		var ch catalog.Check
		ch, ok = cat.Lookup(name)
		base = ch.Price
	}

	mult, has := multipliers[name]
	if !has || mult < 1 {
		mult = 1
	}
	return base * mult, ok
}

// JourneyTotal sums the effective price of every true-flagged check in the
// journey, using the current overrides and multipliers.
func JourneyTotal(j *model.Journey, overrides, multipliers map[string]int64, cat *catalog.Catalog) int64 {
	var total int64
	for name, selected := range j.SelectedChecks {
		if !selected {
			continue
		}
		total += EffectivePrice(name, overrides, multipliers, cat)
	}
	return total
}

// SelectedCheckNames flattens all journeys' true-flagged checks into a
// deduplicated list in first-seen order (journey order, then the catalog's
// category/check order within a journey).
func SelectedCheckNames(journeys []model.Journey, cat *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var names []string
	for i := range journeys {
		for _, name := range OrderedSelected(&journeys[i], cat) {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// GrandTotal is the aggregate price across all journeys, deduplicated by
// check name and always computed live from the current overrides and
// multipliers. It is invariant to journey creation order and tolerates
// overrides applied after a journey was saved.
func GrandTotal(journeys []model.Journey, overrides, multipliers map[string]int64, cat *catalog.Catalog) int64 {
	var total int64
	for _, name := range SelectedCheckNames(journeys, cat) {
		total += EffectivePrice(name, overrides, multipliers, cat)
	}
	return total
}

// OrderedSelected returns a journey's true-flagged check names in catalog
// order, appending any stale names missing from the catalog at the end.
// Map iteration order must not leak into rendered documents.
func OrderedSelected(j *model.Journey, cat *catalog.Catalog) []string {
	var names []string
	matched := make(map[string]bool)
	for _, category := range cat.Categories() {
		for _, ch := range category.Checks {
			if j.SelectedChecks[ch.Name] {
				names = append(names, ch.Name)
				matched[ch.Name] = true
			}
		}
	}
	var stale []string
	for name, selected := range j.SelectedChecks {
		if selected && !matched[name] {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	return append(names, stale...)
}
