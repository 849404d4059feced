// Package habitability classifies host stars and places planets relative
// to the habitable zone of their star type.
package habitability

import (
	"math"

	"github.com/oxygene76/exoscope/internal/types"
)

// Band is one stellar temperature band with its habitable-zone bounds in AU.
// A star matches when MinTemp < T <= MaxTemp.
type Band struct {
	Type    types.StarType
	MinTemp float64
	MaxTemp float64
	Inner   float64
	Outer   float64
}

// Bands are evaluated in order; the first match wins.
var Bands = []Band{
	{Type: types.StarTypeG, MinTemp: 5200, MaxTemp: 6000, Inner: 0.95, Outer: 1.37},
	{Type: types.StarTypeK, MinTemp: 3700, MaxTemp: 5200, Inner: 0.50, Outer: 1.00},
	{Type: types.StarTypeM, MinTemp: math.Inf(-1), MaxTemp: 3700, Inner: 0.03, Outer: 0.50},
}

// Classify maps an effective temperature (K) to a star type and its
// habitable-zone bounds. Temperatures above 6000 K or NaN give
// StarTypeOther with nil bounds.
func Classify(effectiveTemp float64) (types.StarType, *float64, *float64) {
	for _, b := range Bands {
		if effectiveTemp > b.MinTemp && effectiveTemp <= b.MaxTemp {
			inner, outer := b.Inner, b.Outer
			return b.Type, &inner, &outer
		}
	}
	return types.StarTypeOther, nil, nil
}

// InZone reports whether semiMajorAxis lies within [inner, outer].
// Missing bounds never contain anything.
func InZone(semiMajorAxis float64, inner, outer *float64) bool {
	if inner == nil || outer == nil {
		return false
	}
	return semiMajorAxis >= *inner && semiMajorAxis <= *outer
}

// MagneticProxy returns the magnetic-field heuristic mass / radius^3
// (Earth units).
func MagneticProxy(planetMass, planetRadius float64) float64 {
	return planetMass / (planetRadius * planetRadius * planetRadius)
}

// Windows a planet must also fall in to pass the habitable-only filter.
const (
	MinEquilibriumTemp = 200.0 // K
	MaxEquilibriumTemp = 300.0 // K
	MinMagneticProxy   = 25.0
	MaxMagneticProxy   = 65.0
)
