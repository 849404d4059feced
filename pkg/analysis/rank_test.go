package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/exoscope/internal/types"
)

func names(rows []types.DerivedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSortByDistance(t *testing.T) {
	derived := DeriveAll(threeSystems(), 6)
	sorted := SortByDistance(derived)

	assert.Equal(t, []string{"Near b", "Twin b", "Far c"}, names(sorted))
	assert.Equal(t, []string{"Far c", "Near b", "Twin b"}, names(derived), "input untouched")
}

func TestSortByDistanceIsStable(t *testing.T) {
	rows := withSNR(1, 2, 3, 4)
	rows[0].Distance, rows[1].Distance, rows[2].Distance, rows[3].Distance = 8, 3, 8, 3

	sorted := SortByDistance(rows)
	if diff := cmp.Diff([]string{"p1", "p3", "p0", "p2"}, names(sorted)); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByDistanceEmpty(t *testing.T) {
	sorted := SortByDistance(nil)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestClosest(t *testing.T) {
	sorted := SortByDistance(DeriveAll(threeSystems(), 6))

	assert.Equal(t, []string{"Near b", "Twin b"}, names(Closest(sorted, 2)))
	assert.Len(t, Closest(sorted, 10), 3)
	assert.Empty(t, Closest(sorted, 0))
	assert.Empty(t, Closest(nil, 6))

	for k := 0; k <= 4; k++ {
		got := Closest(sorted, k)
		require.LessOrEqual(t, len(got), len(sorted))
		assert.Equal(t, names(sorted[:len(got)]), names(got), "closest must be a prefix (k=%d)", k)
	}
}

func TestPaginate(t *testing.T) {
	sorted := SortByDistance(withSNR(1, 2, 3, 4, 5, 6, 7))

	assert.Equal(t, []string{"p0", "p1", "p2"}, names(Paginate(sorted, 0, 3)))
	assert.Equal(t, []string{"p3", "p4", "p5"}, names(Paginate(sorted, 3, 3)))
	assert.Equal(t, []string{"p6"}, names(Paginate(sorted, 6, 3)))
	assert.Empty(t, Paginate(sorted, 7, 3))
	assert.Empty(t, Paginate(sorted, -1, 3))
	assert.Empty(t, Paginate(sorted, 0, 0))
}
