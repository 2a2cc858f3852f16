package bank

import (
	"strings"
	"testing"
)

func TestSeedCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestItemByID(t *testing.T) {
	it, err := ItemByID("C2-01")
	if err != nil {
		t.Fatalf("ItemByID(C2-01) error: %v", err)
	}
	if it.Family != "C2.reasons" {
		t.Errorf("Family = %q, want C2.reasons", it.Family)
	}
	if it.Disc <= 0 {
		t.Errorf("Disc = %v, want > 0", it.Disc)
	}
}

func TestItemByID_NotFound(t *testing.T) {
	_, err := ItemByID("nope")
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestItemsPreservesCatalogOrder(t *testing.T) {
	items := Items()
	if len(items) == 0 {
		t.Fatal("empty catalog")
	}
	if items[0].ID != FirstItem().ID {
		t.Errorf("FirstItem = %q, want %q", FirstItem().ID, items[0].ID)
	}
	// Mutating the returned slice must not affect the catalog.
	items[0].ID = "mutated"
	if FirstItem().ID == "mutated" {
		t.Error("Items() leaked internal storage")
	}
}

func TestFeaturesFor(t *testing.T) {
	f := FeaturesFor("reasons-two")
	if f.ExpectedListCount != 2 {
		t.Errorf("ExpectedListCount = %d, want 2", f.ExpectedListCount)
	}

	// Unknown schema grades on labels alone.
	zero := FeaturesFor("boundary-probe")
	if len(zero.RequiredMoves) != 0 || zero.ExpectedListCount != 0 || zero.ExpectDirectionWord {
		t.Errorf("expected zero features for schema without a template, got %+v", zero)
	}
}

func TestValidateCatchesBadItems(t *testing.T) {
	bad := []Item{
		{ID: "X-01", Family: "X", SchemaID: "s", Text: "q?", CoverageTag: "nonsense", Disc: 0},
		{ID: "X-01", Family: "X", SchemaID: "s", Text: "q?", CoverageTag: TagConfounding, Disc: 1},
	}
	err := validateItems(bad, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate item ID", "unknown coverage tag", "non-positive discrimination"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestEveryCoverageTargetRepresented(t *testing.T) {
	seen := make(map[CoverageTag]bool)
	for _, it := range Items() {
		seen[it.CoverageTag] = true
	}
	for _, tag := range CoverageTargets() {
		if !seen[tag] {
			t.Errorf("no item carries coverage tag %q", tag)
		}
	}
}
