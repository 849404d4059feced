package main

import (
	"github.com/spf13/cobra"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/analysis"
	"github.com/oxygene76/exoscope/pkg/astronomy/detectability"
)

// queryFlags are the pipeline parameters shared by rank and summary.
// Unset flags fall back to the configured defaults.
type queryFlags struct {
	telescope     string
	diameter      float64
	minSNR        float64
	maxDistance   float64
	habitableOnly bool
	k             int
	start         int
	count         int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	d := types.DefaultQuery()
	fs := cmd.Flags()
	fs.StringVar(&f.telescope, "telescope", "", "telescope preset name (see 'exoscope telescopes')")
	fs.Float64Var(&f.diameter, "telescope-diameter", d.TelescopeDiameter, "telescope diameter in meters")
	fs.Float64Var(&f.minSNR, "min-snr", d.MinSNR, "keep planets with SNR strictly above this")
	fs.Float64Var(&f.maxDistance, "max-distance", d.MaxDistance, "keep systems at most this far (parsecs)")
	fs.BoolVar(&f.habitableOnly, "habitable-only", d.HabitableOnly, "keep only habitable-zone planets with Earth-like temperature and magnetic proxy")
	fs.IntVar(&f.k, "k", d.K, "number of closest systems to report")
	fs.IntVar(&f.start, "start", d.Start, "first ranked row to list")
	fs.IntVar(&f.count, "count", d.Count, "number of ranked rows to list")
}

// query overlays the flags the user actually set on base.
func (f *queryFlags) query(cmd *cobra.Command, base types.Query) (types.Query, error) {
	q := base
	fs := cmd.Flags()

	if f.telescope != "" {
		t, err := detectability.LookupTelescope(f.telescope)
		if err != nil {
			return q, err
		}
		q.TelescopeDiameter = t.Diameter
	}
	if fs.Changed("telescope-diameter") {
		q.TelescopeDiameter = f.diameter
	}
	if fs.Changed("min-snr") {
		q.MinSNR = f.minSNR
	}
	if fs.Changed("max-distance") {
		q.MaxDistance = f.maxDistance
	}
	if fs.Changed("habitable-only") {
		q.HabitableOnly = f.habitableOnly
	}
	if fs.Changed("k") {
		q.K = f.k
	}
	if fs.Changed("start") {
		q.Start = f.start
	}
	if fs.Changed("count") {
		q.Count = f.count
	}

	return q, analysis.ValidateQuery(q)
}
