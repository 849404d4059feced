package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/oxygene76/exoscope/pkg/astronomy/detectability"
	"github.com/oxygene76/exoscope/pkg/astronomy/habitability"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Show the star-type temperature bands and habitable-zone bounds",
	Args:  cobra.NoArgs,
	RunE:  showZones,
}

var telescopesCmd = &cobra.Command{
	Use:   "telescopes",
	Short: "List telescope presets usable with --telescope",
	Args:  cobra.NoArgs,
	RunE:  showTelescopes,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(telescopesCmd)
}

func showZones(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("HABITABLE ZONES BY STAR TYPE"))

	t := newTable("TYPE", "T_EFF (K)", "HZ INNER (AU)", "HZ OUTER (AU)")
	for _, b := range habitability.Bands {
		temp := fmt.Sprintf("%.0f < T <= %.0f", b.MinTemp, b.MaxTemp)
		if math.IsInf(b.MinTemp, -1) {
			temp = fmt.Sprintf("T <= %.0f", b.MaxTemp)
		}
		t.Row(string(b.Type), temp, fmt.Sprintf("%.2f", b.Inner), fmt.Sprintf("%.2f", b.Outer))
	}
	t.Row("Other", "T > 6000", "-", "-")
	fmt.Fprintln(out, t.String())

	fmt.Fprintf(out, "\nHabitable-only filter also requires %.0f-%.0f K equilibrium temperature\n",
		habitability.MinEquilibriumTemp, habitability.MaxEquilibriumTemp)
	fmt.Fprintf(out, "and a magnetic proxy (mass / radius^3) of %.0f-%.0f.\n",
		habitability.MinMagneticProxy, habitability.MaxMagneticProxy)
	return nil
}

func showTelescopes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("TELESCOPE PRESETS"))

	t := newTable("NAME", "DIAMETER (m)", "SNR SCALE", "DESCRIPTION")
	for _, p := range detectability.SortedPresets() {
		scale := p.Diameter / detectability.ReferenceDiameter
		t.Row(p.Name, fmt.Sprintf("%.1f", p.Diameter), fmt.Sprintf("x%.2f", scale*scale), p.Description)
	}
	fmt.Fprintln(out, t.String())
	return nil
}
