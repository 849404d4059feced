package analysis

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/oxygene76/exoscope/internal/types"
)

// Query parameter names accepted by ParseQuery.
const (
	ParamTelescopeDiameter = "telescope_diameter"
	ParamMinSNR            = "min_snr"
	ParamMaxDistance       = "max_distance"
	ParamHabitableOnly     = "habitable_only"
	ParamK                 = "k"
	ParamStart             = "start"
	ParamCount             = "count"
)

// ParseQuery reads request parameters on top of defaults. Absent or empty
// parameters keep their default. Malformed numbers fail with
// types.ErrInvalidParameter; whether to fall back to defaults instead is
// the caller's decision.
func ParseQuery(values url.Values, defaults types.Query) (types.Query, error) {
	q := defaults
	var err error

	if q.TelescopeDiameter, err = floatParam(values, ParamTelescopeDiameter, q.TelescopeDiameter); err != nil {
		return defaults, err
	}
	if q.MinSNR, err = floatParam(values, ParamMinSNR, q.MinSNR); err != nil {
		return defaults, err
	}
	if q.MaxDistance, err = floatParam(values, ParamMaxDistance, q.MaxDistance); err != nil {
		return defaults, err
	}
	if raw, ok := lookup(values, ParamHabitableOnly); ok {
		q.HabitableOnly = ParseToggle(raw)
	}
	if q.K, err = intParam(values, ParamK, q.K); err != nil {
		return defaults, err
	}
	if q.Start, err = intParam(values, ParamStart, q.Start); err != nil {
		return defaults, err
	}
	if q.Count, err = intParam(values, ParamCount, q.Count); err != nil {
		return defaults, err
	}

	if err := ValidateQuery(q); err != nil {
		return defaults, err
	}
	return q, nil
}

// ValidateQuery checks the values a pipeline run cannot work with.
func ValidateQuery(q types.Query) error {
	if !(q.TelescopeDiameter > 0) || math.IsInf(q.TelescopeDiameter, 0) {
		return errorsmod.Wrapf(types.ErrInvalidParameter, "%s must be a positive number, got %v", ParamTelescopeDiameter, q.TelescopeDiameter)
	}
	if math.IsNaN(q.MinSNR) {
		return errorsmod.Wrapf(types.ErrInvalidParameter, "%s is NaN", ParamMinSNR)
	}
	if math.IsNaN(q.MaxDistance) {
		return errorsmod.Wrapf(types.ErrInvalidParameter, "%s is NaN", ParamMaxDistance)
	}
	return nil
}

// ParseToggle interprets an HTML checkbox style flag: "on" (also "true",
// "1", "yes") is set, anything else is not.
func ParseToggle(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func lookup(values url.Values, key string) (string, bool) {
	if values == nil {
		return "", false
	}
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return "", false
	}
	v := strings.TrimSpace(raw[0])
	return v, v != ""
}

func floatParam(values url.Values, key string, def float64) (float64, error) {
	raw, ok := lookup(values, key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, errorsmod.Wrapf(types.ErrInvalidParameter, "%s: %q is not a finite number", key, raw)
	}
	return v, nil
}

func intParam(values url.Values, key string, def int) (int, error) {
	raw, ok := lookup(values, key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, errorsmod.Wrapf(types.ErrInvalidParameter, "%s: %q is not an integer", key, raw)
	}
	return v, nil
}
