package analysis

import (
	"cmp"
	"slices"

	"github.com/oxygene76/exoscope/internal/types"
)

// SortByDistance returns a copy of rows ordered by ascending system
// distance. Equal distances keep their catalog order.
func SortByDistance(rows []types.DerivedRow) []types.DerivedRow {
	out := slices.Clone(rows)
	if out == nil {
		out = []types.DerivedRow{}
	}
	slices.SortStableFunc(out, func(a, b types.DerivedRow) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return out
}

// Closest returns the first k rows of an already sorted set, or all of
// them when fewer than k remain.
func Closest(sorted []types.DerivedRow, k int) []types.DerivedRow {
	if k <= 0 {
		return []types.DerivedRow{}
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// Paginate returns sorted[start : start+count], clipped to the set.
// Out-of-range offsets yield an empty slice.
func Paginate(sorted []types.DerivedRow, start, count int) []types.DerivedRow {
	rs := types.ResultSet{Rows: sorted}
	return rs.Slice(start, count)
}
