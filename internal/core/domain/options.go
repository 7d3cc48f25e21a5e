package domain

import "fmt"

// ViewType selects which side of the ownership relation to query.
type ViewType string

const (
	ViewOwned   ViewType = "owned"
	ViewCreated ViewType = "created"
)

// ParseViewType validates a user-supplied view type string.
func ParseViewType(s string) (ViewType, error) {
	switch ViewType(s) {
	case ViewOwned, ViewCreated:
		return ViewType(s), nil
	}
	return "", fmt.Errorf("unknown view type %q (want owned or created)", s)
}

// Category is one of the classifier's asset buckets. Categories are
// independent predicates, not a partition; the pipeline filters on one
// category at a time.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryDrip         Category = "drip"
	CategoryLegit        Category = "legit"
	CategorySpam         Category = "spam"
	CategoryUnclassified Category = "???"
)

// Categories lists every filter category in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryDrip, CategoryLegit, CategorySpam, CategoryUnclassified}
}

// ParseCategory validates a user-supplied category string. "unclassified" is
// accepted as a spelling of "???" since shells make the literal awkward.
func ParseCategory(s string) (Category, error) {
	if s == "unclassified" {
		return CategoryUnclassified, nil
	}
	switch Category(s) {
	case CategoryAll, CategoryDrip, CategoryLegit, CategorySpam, CategoryUnclassified:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (want all, drip, legit, spam or ???)", s)
}

// SortKey selects the ordering of artist groups.
type SortKey string

const (
	SortQuantityDesc SortKey = "quantityDesc"
	SortQuantityAsc  SortKey = "quantityAsc"
	SortNameAsc      SortKey = "nameAsc"
	SortNameDesc     SortKey = "nameDesc"
)

// ParseSortKey validates a user-supplied sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortQuantityDesc, SortQuantityAsc, SortNameAsc, SortNameDesc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want quantityDesc, quantityAsc, nameAsc or nameDesc)", s)
}

// QuantityFilter prunes groups by size after grouping.
type QuantityFilter string

const (
	QuantityAll       QuantityFilter = "all"
	QuantityOverThree QuantityFilter = ">3"
	QuantitySingle    QuantityFilter = "1"
)

// ParseQuantityFilter validates a user-supplied quantity filter string.
func ParseQuantityFilter(s string) (QuantityFilter, error) {
	switch QuantityFilter(s) {
	case QuantityAll, QuantityOverThree, QuantitySingle:
		return QuantityFilter(s), nil
	}
	return "", fmt.Errorf("unknown quantity filter %q (want all, >3 or 1)", s)
}

// Keep reports whether a group of the given size survives the filter.
func (q QuantityFilter) Keep(size int) bool {
	switch q {
	case QuantityOverThree:
		return size > 3
	case QuantitySingle:
		return size == 1
	default:
		return true
	}
}
