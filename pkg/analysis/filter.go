package analysis

import (
	"slices"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/astronomy/habitability"
	astromath "github.com/oxygene76/exoscope/pkg/astronomy/math"
)

// Percentile cutoffs of the SNR outlier trim.
const (
	TrimLowerPercentile = 2.5
	TrimUpperPercentile = 97.5
)

// Filter applies the filter chain in its fixed order:
//
//  1. SNR strictly above MinSNR
//  2. distance at most MaxDistance
//  3. if HabitableOnly: in the habitable zone, equilibrium temperature and
//     magnetic proxy inside their windows
//  4. SNR percentile trim over whatever is left
//
// Each step sees only the survivors of the previous one. The input slice is
// not modified.
func Filter(rows []types.DerivedRow, params types.FilterParameters) ([]types.DerivedRow, types.FilterTrace) {
	trace := types.FilterTrace{Input: len(rows)}

	out := keep(rows, func(r types.DerivedRow) bool { return r.SNR > params.MinSNR })
	trace.SNR = len(out)

	out = keep(out, func(r types.DerivedRow) bool { return r.Distance <= params.MaxDistance })
	trace.Distance = len(out)

	if params.HabitableOnly {
		out = keep(out, Habitable)
	}
	trace.Habitable = len(out)

	out = TrimSNR(out, TrimLowerPercentile, TrimUpperPercentile)
	trace.Trim = len(out)

	return out, trace
}

// Habitable reports whether a row passes the habitable-only conjunction.
// A missing equilibrium temperature fails it.
func Habitable(r types.DerivedRow) bool {
	if !r.InHabitableZone || r.EquilibriumTemp == nil {
		return false
	}
	return astromath.Between(*r.EquilibriumTemp, habitability.MinEquilibriumTemp, habitability.MaxEquilibriumTemp) &&
		astromath.Between(r.MagneticProxy, habitability.MinMagneticProxy, habitability.MaxMagneticProxy)
}

// TrimSNR keeps rows whose SNR lies within the [lower, upper] percentiles
// of the set's own SNR distribution. On small sets this can drop genuine
// extremes.
func TrimSNR(rows []types.DerivedRow, lower, upper float64) []types.DerivedRow {
	if len(rows) == 0 {
		return []types.DerivedRow{}
	}
	lo, hi := SNRBounds(rows, lower, upper)
	return keep(rows, func(r types.DerivedRow) bool { return astromath.Between(r.SNR, lo, hi) })
}

// SNRBounds returns the lower and upper SNR percentiles of rows.
func SNRBounds(rows []types.DerivedRow, lower, upper float64) (float64, float64) {
	snr := snrValues(rows)
	slices.Sort(snr)
	return astromath.PercentileSorted(snr, lower), astromath.PercentileSorted(snr, upper)
}

func keep(rows []types.DerivedRow, pred func(types.DerivedRow) bool) []types.DerivedRow {
	out := make([]types.DerivedRow, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func snrValues(rows []types.DerivedRow) []float64 {
	v := make([]float64, len(rows))
	for i, r := range rows {
		v[i] = r.SNR
	}
	return v
}
