package detectability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSNREarthTwinAtReference(t *testing.T) {
	assert.InDelta(t, ReferenceSNR, SNR(1, 1, ReferenceDiameter, ReferenceDistance, 1), 1e-9)
}

func TestSNRScaling(t *testing.T) {
	base := SNR(1, 1, 6, 10, 1)

	// quadratic in aperture and planet radius
	assert.InDelta(t, 4*base, SNR(1, 1, 12, 10, 1), 1e-9)
	assert.InDelta(t, 4*base, SNR(1, 2, 6, 10, 1), 1e-9)
	// inverse square in distance and orbit
	assert.InDelta(t, base/4, SNR(1, 1, 6, 20, 1), 1e-9)
	assert.InDelta(t, base/4, SNR(1, 1, 6, 10, 2), 1e-9)
}

func TestSNRNeverNegative(t *testing.T) {
	for _, d := range []float64{0.5, 1, 6, 39} {
		assert.GreaterOrEqual(t, SNR(0.3, 0.8, d, 123.4, 0.07), 0.0)
	}
}

func TestLookupTelescope(t *testing.T) {
	tel, err := LookupTelescope(" ELT ")
	require.NoError(t, err)
	assert.Equal(t, 39.0, tel.Diameter)

	_, err = LookupTelescope("hubble-2")
	assert.Error(t, err)
}

func TestSortedPresets(t *testing.T) {
	presets := SortedPresets()
	require.Len(t, presets, len(Presets))
	for i := 1; i < len(presets); i++ {
		assert.LessOrEqual(t, presets[i-1].Diameter, presets[i].Diameter)
	}
	assert.Equal(t, "habex", presets[0].Name)
}
