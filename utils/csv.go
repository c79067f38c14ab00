package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/kathirfood/menu_backend/models"
)

// MenuItemsCSV renders a sequence of menu items as a CSV document with a
// header row. Newlines inside descriptions are flattened to spaces so a
// row always stays on one line.
func MenuItemsCSV(items []models.MenuItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Category", "Price", "Description", "Vegetarian", "Available"}); err != nil {
		return nil, err
	}

	for _, item := range items {
		record := []string{
			item.Name,
			item.Category,
			strconv.FormatFloat(item.Price, 'f', -1, 64),
			strings.ReplaceAll(item.Description, "\n", " "),
			yesNo(item.IsVegetarian),
			yesNo(item.IsAvailable),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
