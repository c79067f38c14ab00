package utils

import (
	"strings"
	"testing"

	"github.com/kathirfood/menu_backend/models"
)

func TestMenuItemsCSV(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Pad Thai", Category: "Thai", Price: 15.99, Description: "Rice noodles,\nwith peanuts", IsVegetarian: false, IsAvailable: true},
		{Name: "Caesar Salad", Category: "Salad", Price: 12.99, Description: `Romaine "classic"`, IsVegetarian: true, IsAvailable: false},
	}

	payload, err := MenuItemsCSV(items)
	if err != nil {
		t.Fatalf("MenuItemsCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(payload), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "Name,Category,Price,Description,Vegetarian,Available" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "15.99") || !strings.Contains(lines[1], "No,Yes") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// Newlines in descriptions are flattened so each item stays on one row.
	if !strings.Contains(lines[1], "Rice noodles, with peanuts") {
		t.Errorf("description newline not flattened: %s", lines[1])
	}
	// Embedded quotes survive CSV escaping.
	if !strings.Contains(lines[2], `"Romaine ""classic"""`) {
		t.Errorf("quotes not escaped: %s", lines[2])
	}
}

func TestMenuItemsCSV_Empty(t *testing.T) {
	payload, err := MenuItemsCSV(nil)
	if err != nil {
		t.Fatalf("MenuItemsCSV failed: %v", err)
	}
	if strings.TrimRight(string(payload), "\n") != "Name,Category,Price,Description,Vegetarian,Available" {
		t.Errorf("expected header only, got %q", string(payload))
	}
}
