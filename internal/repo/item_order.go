package repo

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// SortField names an item attribute usable for ordering.
type SortField string

const (
	FieldName      SortField = "name"
	FieldQuantity  SortField = "quantity"
	FieldCreatedOn SortField = "createdOn"
)

// Direction is the ordering direction for extremal queries.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseSortField maps a route attribute onto a SortField.
// Matching is exact, so "Quantity" is not a recognised attribute.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(s); f {
	case FieldName, FieldQuantity, FieldCreatedOn:
		return f, true
	}
	return "", false
}

// compareBy returns the comparison for field, or nil when the field is unknown.
// createdOn is compared as a plain string.
func compareBy(field SortField) func(a, b models.Item) int {
	switch field {
	case FieldName:
		return func(a, b models.Item) int { return strings.Compare(a.Name, b.Name) }
	case FieldQuantity:
		return func(a, b models.Item) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case FieldCreatedOn:
		return func(a, b models.Item) int { return strings.Compare(a.CreatedOn, b.CreatedOn) }
	}
	return nil
}

// ordered returns a stably sorted copy of items. Equal elements keep their
// insertion order in both directions.
func ordered(items []models.Item, field SortField, dir Direction) []models.Item {
	out := slices.Clone(items)
	compare := compareBy(field)
	if compare == nil {
		return out
	}
	if dir == Descending {
		slices.SortStableFunc(out, func(a, b models.Item) int { return compare(b, a) })
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}
