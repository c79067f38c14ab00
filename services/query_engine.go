// services/query_engine.go
//
// The catalog query engine. Everything in this file is a pure function
// of its arguments: no I/O, no shared state, safe for unsynchronized
// concurrent use. The input item order is the store's newest-first
// contract and is what SortNone (and every tie under a stable sort)
// preserves.
package services

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kathirfood/menu_backend/models"
)

// SortKey selects the ordering applied after filtering. The values are
// the wire names accepted on the search endpoint.
type SortKey string

const (
	SortNone      SortKey = "None"
	SortPriceAsc  SortKey = "PriceLow"
	SortPriceDesc SortKey = "PriceHigh"
	SortNameAsc   SortKey = "NameAZ"
	SortNameDesc  SortKey = "NameZA"
)

// ParseSortKey normalizes a raw sort parameter. Anything unrecognized
// collapses to SortNone rather than failing.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortKey(raw)
	default:
		return SortNone
	}
}

// DefaultPageSize is used whenever a request carries no usable page size.
const DefaultPageSize = 8

// QuerySpec describes one read view over the catalog. Nil price bounds
// mean "no bound"; an empty or "All" category filter means no category
// restriction; blank search text is a no-op.
type QuerySpec struct {
	CategoryFilter  string
	SearchText      string
	MinPrice        *float64
	MaxPrice        *float64
	VegetarianOnly  bool
	AvailableOnly   bool
	SortKey         SortKey
	GroupByCategory bool
	Page            int
	PageSize        int
}

// CategoryGroup is one bucket of a grouped result. Groups keep the
// first-seen category order of the filtered+sorted sequence.
type CategoryGroup struct {
	Category string            `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

// QueryResult is the engine's output: either a flat page of items or,
// when grouping was requested, the full set of category groups in one
// page. TotalCount counts the filtered set before pagination.
type QueryResult struct {
	Items      []models.MenuItem
	Groups     []CategoryGroup
	TotalCount int
	TotalPages int
}

// ApplyQuery runs the fixed filter, sort, group, paginate pipeline.
// All predicates are conjunctive. The function never fails: invalid
// spec values have already been normalized away (absent bounds, SortNone,
// defaulted page size).
func ApplyQuery(items []models.MenuItem, spec QuerySpec) QueryResult {
	filtered := FilterSort(items, spec)

	if spec.GroupByCategory {
		// Grouped mode returns everything in a single page.
		return QueryResult{
			Groups:     groupByCategory(filtered),
			TotalCount: len(filtered),
			TotalPages: 1,
		}
	}

	pageSize := spec.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := int(math.Max(1, math.Ceil(float64(len(filtered))/float64(pageSize))))

	start := (spec.Page - 1) * pageSize
	end := start + pageSize
	page := []models.MenuItem{}
	if start >= 0 && start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		page = filtered[start:end]
	}

	return QueryResult{
		Items:      page,
		TotalCount: len(filtered),
		TotalPages: totalPages,
	}
}

// FilterSort runs the filter and sort stages only, returning the full
// filtered+sorted sequence. The CSV export uses this directly since it
// never paginates.
func FilterSort(items []models.MenuItem, spec QuerySpec) []models.MenuItem {
	filtered := make([]models.MenuItem, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(spec.SearchText))

	for _, item := range items {
		if spec.CategoryFilter != "" && spec.CategoryFilter != "All" && item.Category != spec.CategoryFilter {
			continue
		}
		if spec.VegetarianOnly && !item.IsVegetarian {
			continue
		}
		if spec.AvailableOnly && !item.IsAvailable {
			continue
		}
		if spec.MinPrice != nil && item.Price < *spec.MinPrice {
			continue
		}
		if spec.MaxPrice != nil && item.Price > *spec.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		filtered = append(filtered, item)
	}

	sortItems(filtered, spec.SortKey)
	return filtered
}

// sortItems orders items in place. The sort is stable so that ties keep
// the store's newest-first order; SortNone leaves the slice untouched.
func sortItems(items []models.MenuItem, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortNameAsc:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool { return cl.CompareString(items[i].Name, items[j].Name) < 0 })
	case SortNameDesc:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool { return cl.CompareString(items[i].Name, items[j].Name) > 0 })
	}
}

// groupByCategory partitions an ordered sequence into category buckets,
// preserving both the first-seen order of categories and the item order
// within each bucket.
func groupByCategory(items []models.MenuItem) []CategoryGroup {
	index := make(map[string]int, len(items))
	groups := []CategoryGroup{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
