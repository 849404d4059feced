// Package analysis runs the exoplanet scoring pipeline: derive metrics,
// filter, trim, rank and summarize.
package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/catalog"
)

// CatalogSource hands out immutable catalog snapshots.
type CatalogSource interface {
	Snapshot() (*catalog.Catalog, error)
}

// Manager runs pipeline requests against a catalog source. It keeps no
// state between runs.
type Manager struct {
	source CatalogSource
	logger *zap.Logger
}

// NewManager creates a new analysis manager
func NewManager(source CatalogSource, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		source: source,
		logger: logger,
	}
}

// Run executes one request: derive, filter, sort, pick the closest K and
// the requested page, then summarize the whole filtered set.
func (m *Manager) Run(q types.Query) (*types.ResultSet, error) {
	if err := ValidateQuery(q); err != nil {
		return nil, err
	}
	start := time.Now()

	cat, err := m.source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := Evaluate(cat.Rows, q)
	result.Source = cat.Source

	m.logger.Debug("pipeline run",
		zap.Float64("telescope_diameter", q.TelescopeDiameter),
		zap.Float64("min_snr", q.MinSNR),
		zap.Float64("max_distance", q.MaxDistance),
		zap.Bool("habitable_only", q.HabitableOnly),
		zap.Ints("trace", result.Trace.Counts()),
		zap.Duration("took", time.Since(start)))

	return result, nil
}

// Evaluate is the pure pipeline over already loaded rows.
func Evaluate(rows []types.CatalogRow, q types.Query) *types.ResultSet {
	derived := DeriveAll(rows, q.TelescopeDiameter)
	filtered, trace := Filter(derived, q.FilterParameters)
	sorted := SortByDistance(filtered)

	return &types.ResultSet{
		Query:     q,
		Rows:      sorted,
		Closest:   Closest(sorted, q.K),
		Page:      Paginate(sorted, q.Start, q.Count),
		Summary:   Summarize(sorted),
		Total:     len(sorted),
		Trace:     trace,
		Generated: time.Now(),
	}
}

// StarTypes derives every catalog row with the given aperture and counts
// star types, before any filtering.
func (m *Manager) StarTypes(telescopeDiameter float64) (map[types.StarType]int, error) {
	cat, err := m.source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return CountStarTypes(DeriveAll(cat.Rows, telescopeDiameter)), nil
}
