package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/export"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Filter the catalog and rank planets by distance",
	Long: `
Derive SNR, magnetic proxy and habitable-zone placement for every catalog
row, then apply the filter chain in order:

  1. SNR strictly above --min-snr
  2. distance at most --max-distance
  3. with --habitable-only: inside the habitable zone, 200-300 K equilibrium
     temperature and magnetic proxy 25-65
  4. trim SNR outliers outside the 2.5th-97.5th percentile of what is left

Survivors are sorted by distance. The listing shows rows [--start,
--start+--count); the closest --k and the SNR statistics cover the whole
filtered set.

Examples:
  # Default 6 m aperture
  exoscope rank

  # ELT aperture, nearby habitable candidates
  exoscope rank --telescope elt --max-distance 20 --habitable-only

  # Export every ranked row as JSON lines
  exoscope rank --output ranked.jsonl --format jsonl
`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show SNR statistics and star-type counts",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var (
	rankQuery    queryFlags
	summaryQuery queryFlags

	rankOutputFile   string
	rankOutputFormat string
)

func init() {
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(summaryCmd)

	rankQuery.register(rankCmd)
	rankCmd.Flags().StringVar(&rankOutputFile, "output", "", "write the result set to this file")
	rankCmd.Flags().StringVar(&rankOutputFormat, "format", "json", "output file format (json, jsonl, msgpack)")

	summaryQuery.register(summaryCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	q, err := rankQuery.query(cmd, config.Defaults)
	if err != nil {
		return err
	}

	_, manager := newPipeline()
	result, err := manager.Run(q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("EXOPLANET RANKING"))
	fmt.Fprintf(out, "Telescope %.1f m | SNR > %.1f | distance <= %.1f pc | habitable only: %t\n",
		q.TelescopeDiameter, q.MinSNR, q.MaxDistance, q.HabitableOnly)
	fmt.Fprintf(out, "Filter trace: %s\n\n", formatTrace(result.Trace))

	fmt.Fprintf(out, "Rows %d-%d of %d\n", q.Start, q.Start+len(result.Page), result.Total)
	fmt.Fprintln(out, renderRows(result.Page, q.Start))

	fmt.Fprintf(out, "\nClosest %d\n", len(result.Closest))
	fmt.Fprintln(out, renderRows(result.Closest, 0))

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummary(result.Summary))

	if rankOutputFile != "" {
		format, err := export.ParseFormat(rankOutputFormat)
		if err != nil {
			return err
		}
		if err := export.WriteFile(rankOutputFile, result, format); err != nil {
			return err
		}
		logger.Info("result set exported",
			zap.String("path", rankOutputFile),
			zap.String("format", string(format)),
			zap.Int("rows", result.Total))
		fmt.Fprintf(out, "\nResults saved to: %s\n", rankOutputFile)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	q, err := summaryQuery.query(cmd, config.Defaults)
	if err != nil {
		return err
	}

	store, manager := newPipeline()
	result, err := manager.Run(q)
	if err != nil {
		return err
	}
	counts, err := manager.StarTypes(q.TelescopeDiameter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cat := store.Current()
	fmt.Fprintln(out, titleStyle.Render("CATALOG SUMMARY"))
	fmt.Fprintf(out, "Catalog: %s (%d rows, %d excluded)\n", cat.Source, cat.Len(), cat.Excluded)
	fmt.Fprintf(out, "Star types: %s\n", formatStarTypes(counts))
	fmt.Fprintf(out, "Filter trace: %s\n\n", formatTrace(result.Trace))
	fmt.Fprintln(out, renderSummary(result.Summary))
	return nil
}

func formatTrace(t types.FilterTrace) string {
	return fmt.Sprintf("%d -> snr %d -> distance %d -> habitable %d -> trim %d",
		t.Input, t.SNR, t.Distance, t.Habitable, t.Trim)
}

func formatStarTypes(counts map[types.StarType]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%d", k, counts[types.StarType(k)])
	}
	return s
}
