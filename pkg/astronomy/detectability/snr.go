// Package detectability scores how easily a planet could be directly imaged.
package detectability

const (
	// ReferenceSNR is the SNR of an Earth twin at 10 pc seen with the reference aperture.
	ReferenceSNR = 100.0

	// ReferenceDiameter is the aperture (meters) the SNR scale is normalized to.
	ReferenceDiameter = 6.0

	// ReferenceDistance is the system distance (parsecs) the SNR scale is normalized to.
	ReferenceDistance = 10.0
)

// SNR returns the direct-imaging signal-to-noise proxy
//
//	100 * ((R* * Rp * D/6) / ((d/10) * a))^2
//
// with stellar radius R* (solar radii), planet radius Rp (Earth radii),
// telescope diameter D (m), distance d (pc) and semi-major axis a (AU).
// Callers must reject zero distance or semi-major axis beforehand.
func SNR(stellarRadius, planetRadius, diameter, distance, semiMajorAxis float64) float64 {
	ratio := (stellarRadius * planetRadius * (diameter / ReferenceDiameter)) /
		((distance / ReferenceDistance) * semiMajorAxis)
	return ReferenceSNR * ratio * ratio
}
