// Package sorting implements the tri-state, multi-column table ordering
// shared by every dashboard table.
package sorting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the tri-state sort direction.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// Spec names the active sort column and direction. The zero value means
// insertion order.
type Spec struct {
	Column    string
	Direction Direction
}

// Toggle advances the spec for a click on a column header: repeated clicks
// on the active column cycle ascending, descending, then clear the sort
// entirely; a click on a different column starts over ascending.
func (s Spec) Toggle(column string) Spec {
	if s.Column == column {
		switch s.Direction {
		case Ascending:
			return Spec{Column: column, Direction: Descending}
		case Descending:
			return Spec{}
		}
	}
	return Spec{Column: column, Direction: Ascending}
}

// Comparator orders two records for one column. Negative means a sorts
// before b ascending.
type Comparator[T any] func(a, b T) int

// Apply returns a new slice ordered per the spec. The sort is stable, so
// equal keys keep their original relative order. An empty spec, or a column
// with no comparator, returns the input order unchanged.
func Apply[T any](items []T, spec Spec, columns map[string]Comparator[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	if spec.Direction == None || spec.Column == "" {
		return out
	}
	cmp, ok := columns[spec.Column]
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if spec.Direction == Descending {
			return c > 0
		}
		return c < 0
	})

	return out
}

// CompareStrings orders case-insensitively.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func CompareDecimals(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
