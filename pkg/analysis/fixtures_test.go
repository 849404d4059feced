package analysis

import (
	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/catalog"
)

func ptr(v float64) *float64 { return &v }

// threeSystems are three planets that all score SNR 100 with the default
// 6 m aperture. Only the 10 pc one orbits a G star inside its habitable zone.
func threeSystems() []types.CatalogRow {
	return []types.CatalogRow{
		{Index: 0, Name: "Far c", Host: "Far", SemiMajorAxis: 2, PlanetRadius: 3, PlanetMass: 5,
			EquilibriumTemp: ptr(150), StellarTemp: 3000, StellarRadius: 1, Distance: 15},
		{Index: 1, Name: "Near b", Host: "Near", SemiMajorAxis: 2, PlanetRadius: 1, PlanetMass: 1,
			EquilibriumTemp: ptr(180), StellarTemp: 4000, StellarRadius: 1, Distance: 5},
		{Index: 2, Name: "Twin b", Host: "Twin", SemiMajorAxis: 1.1, PlanetRadius: 1.1, PlanetMass: 53.24,
			EquilibriumTemp: ptr(250), StellarTemp: 5800, StellarRadius: 1, Distance: 10},
	}
}

type staticSource struct {
	cat *catalog.Catalog
	err error
}

func (s staticSource) Snapshot() (*catalog.Catalog, error) {
	return s.cat, s.err
}
