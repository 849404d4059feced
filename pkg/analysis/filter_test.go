package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/exoscope/internal/types"
)

func withSNR(values ...float64) []types.DerivedRow {
	rows := make([]types.DerivedRow, len(values))
	for i, v := range values {
		rows[i] = types.DerivedRow{
			CatalogRow: types.CatalogRow{Index: i, Name: fmt.Sprintf("p%d", i), Distance: float64(i + 1)},
			SNR:        v,
		}
	}
	return rows
}

func TestFilterKeepsAllWithoutHabitableOnly(t *testing.T) {
	derived := DeriveAll(threeSystems(), 6)
	out, trace := Filter(derived, types.FilterParameters{TelescopeDiameter: 6, MinSNR: 10, MaxDistance: 1000})

	assert.Len(t, out, 3)
	assert.Equal(t, types.FilterTrace{Input: 3, SNR: 3, Distance: 3, Habitable: 3, Trim: 3}, trace)
}

func TestFilterSNRIsStrict(t *testing.T) {
	out, trace := Filter(withSNR(5, 5.0001, 50), types.FilterParameters{MinSNR: 5, MaxDistance: 1000})
	assert.Equal(t, 2, trace.SNR)
	for _, r := range out {
		assert.Greater(t, r.SNR, 5.0)
	}
}

func TestFilterDistanceIsInclusive(t *testing.T) {
	rows := withSNR(10, 10, 10)
	_, trace := Filter(rows, types.FilterParameters{MinSNR: 0, MaxDistance: 2})
	assert.Equal(t, 2, trace.Distance)
}

func TestFilterHabitableOnly(t *testing.T) {
	derived := DeriveAll(threeSystems(), 6)
	out, trace := Filter(derived, types.FilterParameters{MinSNR: 10, MaxDistance: 1000, HabitableOnly: true})

	require.Len(t, out, 1)
	assert.Equal(t, "Twin b", out[0].Name)
	assert.Equal(t, 1, trace.Habitable)
	assert.Equal(t, 1, trace.Trim)
}

func TestFilterHabitableOnlyRejectsHotPlanet(t *testing.T) {
	rows := threeSystems()
	rows[2].EquilibriumTemp = ptr(350)
	out, trace := Filter(DeriveAll(rows, 6), types.FilterParameters{MinSNR: 10, MaxDistance: 1000, HabitableOnly: true})

	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Equal(t, 0, trace.Habitable)
	assert.Equal(t, 0, trace.Trim)
}

func TestHabitable(t *testing.T) {
	twin := Derive(threeSystems()[2], 6)
	assert.True(t, Habitable(twin))

	noTemp := twin
	noTemp.EquilibriumTemp = nil
	assert.False(t, Habitable(noTemp))

	dense := twin
	dense.MagneticProxy = 70
	assert.False(t, Habitable(dense))

	edge := twin
	edge.EquilibriumTemp = ptr(300)
	edge.MagneticProxy = 25
	assert.True(t, Habitable(edge))

	outside := twin
	outside.InHabitableZone = false
	assert.False(t, Habitable(outside))
}

func TestFilterTraceIsMonotonic(t *testing.T) {
	rows := withSNR(1, 3, 7, 12, 20, 35, 60, 90, 150, 400, 9000)
	for i := range rows {
		rows[i].Distance = float64(10 * i)
	}
	_, trace := Filter(rows, types.FilterParameters{MinSNR: 2, MaxDistance: 80})

	counts := trace.Counts()
	for i := 1; i < len(counts); i++ {
		assert.LessOrEqual(t, counts[i], counts[i-1], "step %d", i)
	}
}

func TestTrimSNRDropsTails(t *testing.T) {
	rows := withSNR(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	lo, hi := SNRBounds(rows, TrimLowerPercentile, TrimUpperPercentile)
	assert.InDelta(t, 1.225, lo, 1e-9)
	assert.InDelta(t, 9.775, hi, 1e-9)

	out := TrimSNR(rows, TrimLowerPercentile, TrimUpperPercentile)
	require.Len(t, out, 8)
	for _, r := range out {
		assert.GreaterOrEqual(t, r.SNR, lo)
		assert.LessOrEqual(t, r.SNR, hi)
	}
	assert.Equal(t, 2.0, out[0].SNR)
	assert.Equal(t, 9.0, out[7].SNR)
}

func TestTrimSNRSmallSets(t *testing.T) {
	assert.Empty(t, TrimSNR(nil, TrimLowerPercentile, TrimUpperPercentile))
	assert.Len(t, TrimSNR(withSNR(42), TrimLowerPercentile, TrimUpperPercentile), 1)
	assert.Len(t, TrimSNR(withSNR(7, 7, 7), TrimLowerPercentile, TrimUpperPercentile), 3)
	// two distinct values: both lie strictly outside the interpolated cutoffs
	assert.Empty(t, TrimSNR(withSNR(1, 2), TrimLowerPercentile, TrimUpperPercentile))
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	rows := withSNR(1, 50, 100)
	before := append([]types.DerivedRow(nil), rows...)
	Filter(rows, types.FilterParameters{MinSNR: 10, MaxDistance: 1000})
	assert.Equal(t, before, rows)
}
