package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/oxygene76/exoscope/internal/types"
	astromath "github.com/oxygene76/exoscope/pkg/astronomy/math"
)

// Summarize computes SNR statistics over rows. It returns nil for an empty
// set: the statistics are undefined, not zero. The standard deviation is
// the sample one (n-1 denominator) and is left nil for a single row.
func Summarize(rows []types.DerivedRow) *types.Summary {
	if len(rows) == 0 {
		return nil
	}
	snr := snrValues(rows)

	s := &types.Summary{
		Count:  len(snr),
		Mean:   stat.Mean(snr, nil),
		Median: astromath.Median(snr),
		Min:    floats.Min(snr),
		Max:    floats.Max(snr),
	}
	if len(snr) > 1 {
		sd := stat.StdDev(snr, nil)
		s.StdDev = &sd
	}
	return s
}
