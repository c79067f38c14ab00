package models

import "testing"

func TestCategories(t *testing.T) {
	categories := Categories()

	if len(categories) != 72 {
		t.Errorf("expected 72 categories, got %d", len(categories))
	}
	if categories[0] != "Appetizer" {
		t.Errorf("expected the list to start with Appetizer, got %s", categories[0])
	}
	if categories[len(categories)-1] != "Daily Special" {
		t.Errorf("expected the list to end with Daily Special, got %s", categories[len(categories)-1])
	}

	// Every listed category must pass validation, exactly once.
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if !IsValidCategory(c) {
			t.Errorf("category %q not accepted by IsValidCategory", c)
		}
		if seen[c] {
			t.Errorf("category %q listed twice", c)
		}
		seen[c] = true
	}
}

func TestCategoriesReturnsACopy(t *testing.T) {
	first := Categories()
	first[0] = "Mutated"
	if Categories()[0] != "Appetizer" {
		t.Error("mutating the returned slice must not affect the registry")
	}
}

func TestIsValidCategory(t *testing.T) {
	cases := []struct {
		category string
		want     bool
	}{
		{"Thai", true},
		{"Salad", true},
		{"Bread & Rolls", true},
		{"Sushi", false},
		{"thai", false}, // matching is case-sensitive
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidCategory(tc.category); got != tc.want {
			t.Errorf("IsValidCategory(%q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}
