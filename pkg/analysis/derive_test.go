package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/exoscope/internal/types"
)

func TestDeriveAll(t *testing.T) {
	rows := threeSystems()
	derived := DeriveAll(rows, 6)
	require.Len(t, derived, 3)

	for i, d := range derived {
		assert.Equal(t, rows[i].Name, d.Name, "order preserved")
		assert.InDelta(t, 100.0, d.SNR, 1e-9)
	}

	assert.Equal(t, types.StarTypeM, derived[0].StarType)
	assert.Equal(t, types.StarTypeK, derived[1].StarType)
	assert.False(t, derived[1].InHabitableZone)

	twin := derived[2]
	assert.Equal(t, types.StarTypeG, twin.StarType)
	require.NotNil(t, twin.HZInner)
	assert.Equal(t, 0.95, *twin.HZInner)
	assert.Equal(t, 1.37, *twin.HZOuter)
	assert.True(t, twin.InHabitableZone)
	assert.InDelta(t, 40.0, twin.MagneticProxy, 1e-9)
}

func TestDeriveScalesWithAperture(t *testing.T) {
	row := threeSystems()[2]
	assert.InDelta(t, 400.0, Derive(row, 12).SNR, 1e-9)
	assert.InDelta(t, 25.0, Derive(row, 3).SNR, 1e-9)
}

func TestDeriveOtherStarHasNoZone(t *testing.T) {
	row := threeSystems()[2]
	row.StellarTemp = 7200
	d := Derive(row, 6)
	assert.Equal(t, types.StarTypeOther, d.StarType)
	assert.Nil(t, d.HZInner)
	assert.Nil(t, d.HZOuter)
	assert.False(t, d.InHabitableZone)
}

func TestCountStarTypes(t *testing.T) {
	counts := CountStarTypes(DeriveAll(threeSystems(), 6))
	assert.Equal(t, map[types.StarType]int{
		types.StarTypeG:     1,
		types.StarTypeK:     1,
		types.StarTypeM:     1,
		types.StarTypeOther: 0,
	}, counts)
}
