package analysis

import (
	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/astronomy/detectability"
	"github.com/oxygene76/exoscope/pkg/astronomy/habitability"
)

// Derive computes the detectability and habitability metrics for one row.
func Derive(row types.CatalogRow, telescopeDiameter float64) types.DerivedRow {
	starType, inner, outer := habitability.Classify(row.StellarTemp)
	return types.DerivedRow{
		CatalogRow: row,
		SNR: detectability.SNR(
			row.StellarRadius,
			row.PlanetRadius,
			telescopeDiameter,
			row.Distance,
			row.SemiMajorAxis,
		),
		MagneticProxy:   habitability.MagneticProxy(row.PlanetMass, row.PlanetRadius),
		StarType:        starType,
		HZInner:         inner,
		HZOuter:         outer,
		InHabitableZone: habitability.InZone(row.SemiMajorAxis, inner, outer),
	}
}

// DeriveAll maps Derive over rows, preserving order. rows is not modified.
func DeriveAll(rows []types.CatalogRow, telescopeDiameter float64) []types.DerivedRow {
	out := make([]types.DerivedRow, len(rows))
	for i, row := range rows {
		out[i] = Derive(row, telescopeDiameter)
	}
	return out
}

// CountStarTypes tallies rows per star type.
func CountStarTypes(rows []types.DerivedRow) map[types.StarType]int {
	counts := map[types.StarType]int{
		types.StarTypeG:     0,
		types.StarTypeK:     0,
		types.StarTypeM:     0,
		types.StarTypeOther: 0,
	}
	for _, r := range rows {
		counts[r.StarType]++
	}
	return counts
}
