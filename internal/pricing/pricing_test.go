package pricing

import (
	"testing"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
)

func TestEffectivePriceDefaultsToBasePrice(t *testing.T) {
	cat := catalog.Default()
	for _, category := range cat.Categories() {
		for _, ch := range category.Checks {
			got := EffectivePrice(ch.Name, map[string]int64{}, map[string]int64{}, cat)
			if got != ch.Price {
				t.Fatalf("%s: expected base price %d, got %d", ch.Name, ch.Price, got)
			}
		}
	}
}

func TestEffectivePriceOverrideAndMultiplier(t *testing.T) {
	cat := catalog.Default()

	cases := []struct {
		override   int64
		multiplier int64
		want       int64
	}{
		{20, 3, 60},
		{20, 1, 20},
		{0, 5, 0},
		{100, 0, 100},  // multiplier below 1 counts as 1
		{100, -2, 100}, // same for negatives
	}

	for _, tc := range cases {
		got := EffectivePrice("Aadhaar",
			map[string]int64{"Aadhaar": tc.override},
			map[string]int64{"Aadhaar": tc.multiplier},
			cat)
		if got != tc.want {
			t.Fatalf("override %d multiplier %d: expected %d, got %d",
				tc.override, tc.multiplier, tc.want, got)
		}
	}
}

func TestEffectivePriceMultiplierWithoutOverride(t *testing.T) {
	cat := catalog.Default()
	got := EffectivePrice("Aadhaar", map[string]int64{}, map[string]int64{"Aadhaar": 4}, cat)
	if got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}
}

func TestResolveEffectivePriceUnknownName(t *testing.T) {
	cat := catalog.Default()

	price, found := ResolveEffectivePrice("Retired Check", map[string]int64{}, map[string]int64{}, cat)
	if found {
		t.Fatal("expected unknown check to be reported as not found")
	}
	if price != 0 {
		t.Fatalf("expected lenient price 0, got %d", price)
	}

	// An override makes the name resolvable even without a catalog entry
	price, found = ResolveEffectivePrice("Retired Check", map[string]int64{"Retired Check": 99}, map[string]int64{}, cat)
	if !found {
		t.Fatal("expected overridden check to resolve")
	}
	if price != 99 {
		t.Fatalf("expected 99, got %d", price)
	}
}

func TestJourneyTotalIgnoresFalseFlags(t *testing.T) {
	cat := catalog.Default()
	j := model.Journey{
		ID:   "j-1",
		Name: "J1",
		SelectedChecks: map[string]bool{
			"Aadhaar":   true,
			"PAN Basic": false,
			"Voter ID":  true,
		},
	}

	got := JourneyTotal(&j, map[string]int64{}, map[string]int64{}, cat)
	if got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestGrandTotalDeduplicatesAcrossJourneys(t *testing.T) {
	cat := catalog.Default()

	// Exclusivity is enforced at the action layer; the aggregator must
	// still count a doubly-flagged check once.
	journeys := []model.Journey{
		{ID: "j-1", Name: "J1", SelectedChecks: map[string]bool{"PAN Basic": true}},
		{ID: "j-2", Name: "J2", SelectedChecks: map[string]bool{"PAN Basic": true, "Aadhaar": true}},
	}

	got := GrandTotal(journeys, map[string]int64{}, map[string]int64{}, cat)
	if got != 60 {
		t.Fatalf("expected 60 (PAN Basic once + Aadhaar), got %d", got)
	}

	names := SelectedCheckNames(journeys, cat)
	if len(names) != 2 {
		t.Fatalf("expected 2 deduplicated names, got %v", names)
	}
}

func TestGrandTotalUsesLiveOverrides(t *testing.T) {
	cat := catalog.Default()
	journeys := []model.Journey{
		{ID: "j-1", Name: "J1", SelectedChecks: map[string]bool{"Aadhaar": true}, TotalPrice: 30},
	}

	got := GrandTotal(journeys, map[string]int64{"Aadhaar": 20}, map[string]int64{}, cat)
	if got != 20 {
		t.Fatalf("expected live grand total 20, got %d", got)
	}
}

func TestOrderedSelectedFollowsCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	j := model.Journey{
		ID:   "j-1",
		Name: "J1",
		SelectedChecks: map[string]bool{
			"Voter ID":  true,
			"Aadhaar":   true,
			"PAN Basic": true,
		},
	}

	names := OrderedSelected(&j, cat)
	want := []string{"Aadhaar", "PAN Basic", "Voter ID"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}
