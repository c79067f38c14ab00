package models

import (
	"errors"
	"testing"
)

func validDraft() MenuItemDraft {
	return MenuItemDraft{
		Name:        "Pad Thai",
		Category:    "Thai",
		Price:       15.99,
		Description: "Stir-fried rice noodles",
	}
}

func TestMenuItemDraft_Validate(t *testing.T) {
	t.Run("ValidDraft", func(t *testing.T) {
		draft := validDraft()
		if err := draft.Validate(); err != nil {
			t.Errorf("expected valid draft, got %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*MenuItemDraft)
		field  string
	}{
		{"MissingName", func(d *MenuItemDraft) { d.Name = "" }, "name"},
		{"BlankName", func(d *MenuItemDraft) { d.Name = "   " }, "name"},
		{"MissingDescription", func(d *MenuItemDraft) { d.Description = "" }, "description"},
		{"MissingCategory", func(d *MenuItemDraft) { d.Category = "" }, "category"},
		{"UnknownCategory", func(d *MenuItemDraft) { d.Category = "Sushi" }, "category"},
		{"NegativePrice", func(d *MenuItemDraft) { d.Price = -1 }, "price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			err := draft.Validate()
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected a ValidationError, got %v", err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, validationErr.Field)
			}
		})
	}

	t.Run("ZeroPriceIsAllowed", func(t *testing.T) {
		draft := validDraft()
		draft.Price = 0
		if err := draft.Validate(); err != nil {
			t.Errorf("zero price must pass validation, got %v", err)
		}
	})
}

func TestMenuItemDraft_Available(t *testing.T) {
	draft := validDraft()
	if !draft.Available() {
		t.Error("availability must default to true when omitted")
	}

	no := false
	draft.IsAvailable = &no
	if draft.Available() {
		t.Error("explicit false must be respected")
	}
}
