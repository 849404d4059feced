package detectability

import (
	"fmt"
	"sort"
	"strings"
)

// Telescope is a named aperture preset.
type Telescope struct {
	Name        string
	Diameter    float64 // meters
	Description string
}

// Presets lists the apertures that can be selected by name instead of a raw diameter.
var Presets = map[string]Telescope{
	"hwo":      {Name: "hwo", Diameter: 6.0, Description: "Habitable Worlds Observatory baseline"},
	"jwst":     {Name: "jwst", Diameter: 6.5, Description: "James Webb Space Telescope"},
	"habex":    {Name: "habex", Diameter: 4.0, Description: "HabEx concept, 4 m off-axis"},
	"luvoir-a": {Name: "luvoir-a", Diameter: 15.0, Description: "LUVOIR-A concept"},
	"gmt":      {Name: "gmt", Diameter: 25.4, Description: "Giant Magellan Telescope"},
	"tmt":      {Name: "tmt", Diameter: 30.0, Description: "Thirty Meter Telescope"},
	"elt":      {Name: "elt", Diameter: 39.0, Description: "Extremely Large Telescope"},
}

// LookupTelescope resolves a preset by case-insensitive name.
func LookupTelescope(name string) (Telescope, error) {
	t, ok := Presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Telescope{}, fmt.Errorf("unknown telescope preset: %s", name)
	}
	return t, nil
}

// SortedPresets returns the presets ordered by aperture, smallest first.
func SortedPresets() []Telescope {
	out := make([]Telescope, 0, len(Presets))
	for _, t := range Presets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Diameter == out[j].Diameter {
			return out[i].Name < out[j].Name
		}
		return out[i].Diameter < out[j].Diameter
	})
	return out
}
