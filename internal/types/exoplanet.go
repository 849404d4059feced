package types

import "time"

// StarType is the coarse stellar class used to pick habitable-zone bounds.
type StarType string

const (
	StarTypeG     StarType = "G"
	StarTypeK     StarType = "K"
	StarTypeM     StarType = "M"
	StarTypeOther StarType = "Other"
)

// CatalogRow represents one planet/host-star observation from the catalog.
// Optional columns are pointers; nil means the value was missing.
type CatalogRow struct {
	Index           int      `json:"-"`
	Name            string   `json:"pl_name"`
	Host            string   `json:"hostname"`
	OrbitalPeriod   *float64 `json:"pl_orbper"`   // days
	SemiMajorAxis   float64  `json:"pl_orbsmax"`  // AU
	PlanetRadius    float64  `json:"pl_rade"`     // Earth radii
	PlanetMass      float64  `json:"pl_bmasse"`   // Earth masses
	EquilibriumTemp *float64 `json:"pl_eqt"`      // K
	StellarTemp     float64  `json:"st_teff"`     // K
	StellarRadius   float64  `json:"st_rad"`      // solar radii
	StellarMass     *float64 `json:"st_mass"`     // solar masses
	SpectralType    string   `json:"st_spectype"` // free text, may be empty
	Distance        float64  `json:"sy_dist"`     // parsecs
}

// DerivedRow is a CatalogRow with the computed detectability and habitability metrics.
type DerivedRow struct {
	CatalogRow
	SNR             float64  `json:"snr"`
	MagneticProxy   float64  `json:"B"`
	StarType        StarType `json:"star_type"`
	HZInner         *float64 `json:"hz_inner"` // AU, nil for StarTypeOther
	HZOuter         *float64 `json:"hz_outer"` // AU, nil for StarTypeOther
	InHabitableZone bool     `json:"in_habitable_zone"`
}

// FilterParameters holds the user-controlled filter settings for one request.
type FilterParameters struct {
	TelescopeDiameter float64 `json:"telescope_diameter" mapstructure:"telescope_diameter" yaml:"telescope_diameter"` // meters
	MinSNR            float64 `json:"min_snr" mapstructure:"min_snr" yaml:"min_snr"`
	MaxDistance       float64 `json:"max_distance" mapstructure:"max_distance" yaml:"max_distance"` // parsecs
	HabitableOnly     bool    `json:"habitable_only" mapstructure:"habitable_only" yaml:"habitable_only"`
}

// Query is a full pipeline request: filters plus ranking and pagination.
type Query struct {
	FilterParameters `mapstructure:",squash" yaml:",inline"`
	K                int `json:"k" mapstructure:"k" yaml:"k"`
	Start            int `json:"start" mapstructure:"start" yaml:"start"`
	Count            int `json:"count" mapstructure:"count" yaml:"count"`
}

// DefaultQuery returns the documented request defaults.
func DefaultQuery() Query {
	return Query{
		FilterParameters: FilterParameters{
			TelescopeDiameter: 6,
			MinSNR:            5,
			MaxDistance:       1000,
			HabitableOnly:     false,
		},
		K:     6,
		Start: 0,
		Count: 6,
	}
}

// FilterTrace records the number of rows left after each filter step.
type FilterTrace struct {
	Input     int `json:"input"`
	SNR       int `json:"after_snr"`
	Distance  int `json:"after_distance"`
	Habitable int `json:"after_habitable"`
	Trim      int `json:"after_trim"`
}

// Counts returns the step counts in pipeline order, input first.
func (t FilterTrace) Counts() []int {
	return []int{t.Input, t.SNR, t.Distance, t.Habitable, t.Trim}
}

// Summary holds aggregate SNR statistics over a filtered set.
// StdDev is the sample standard deviation and is nil for fewer than two rows.
type Summary struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	StdDev *float64 `json:"std"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
}

// ResultSet is the ranked, summarized output of one pipeline run.
// A nil Summary means the statistics are undefined (empty set).
type ResultSet struct {
	Query     Query        `json:"query"`
	Rows      []DerivedRow `json:"rows"`
	Closest   []DerivedRow `json:"closest"`
	Page      []DerivedRow `json:"page"`
	Summary   *Summary     `json:"summary"`
	Total     int          `json:"total"`
	Trace     FilterTrace  `json:"trace"`
	Source    string       `json:"source"`
	Generated time.Time    `json:"generated"`
}

// Slice returns rows [start, start+count) of the sorted set.
// Out-of-range requests yield an empty slice.
func (r *ResultSet) Slice(start, count int) []DerivedRow {
	n := len(r.Rows)
	if start < 0 || count <= 0 || start >= n {
		return []DerivedRow{}
	}
	end := start + count
	if end > n || end < start {
		end = n
	}
	return r.Rows[start:end]
}
