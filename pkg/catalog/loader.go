// Package catalog loads the exoplanet catalog and keeps an immutable,
// shareable snapshot of it.
package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/internal/types"
)

// Catalog column names, as published by the NASA Exoplanet Archive.
const (
	ColName            = "pl_name"
	ColHost            = "hostname"
	ColOrbitalPeriod   = "pl_orbper"
	ColSemiMajorAxis   = "pl_orbsmax"
	ColPlanetRadius    = "pl_rade"
	ColPlanetMass      = "pl_bmasse"
	ColEquilibriumTemp = "pl_eqt"
	ColStellarTemp     = "st_teff"
	ColStellarRadius   = "st_rad"
	ColStellarMass     = "st_mass"
	ColSpectralType    = "st_spectype"
	ColDistance        = "sy_dist"
)

// DefaultCommentPrefix marks annotation lines in archive exports.
const DefaultCommentPrefix = "#"

// CoreColumns are needed by every derived metric and are always treated as
// required, whatever the configured set says.
var CoreColumns = []string{
	ColName,
	ColSemiMajorAxis,
	ColPlanetRadius,
	ColPlanetMass,
	ColStellarTemp,
	ColStellarRadius,
	ColDistance,
}

// DefaultRequiredColumns is the column set of the current pipeline.
var DefaultRequiredColumns = []string{
	ColName,
	ColHost,
	ColOrbitalPeriod,
	ColSemiMajorAxis,
	ColPlanetRadius,
	ColPlanetMass,
	ColEquilibriumTemp,
	ColStellarTemp,
	ColStellarRadius,
	ColDistance,
}

type column struct {
	text     func(row *types.CatalogRow, s string)
	number   func(row *types.CatalogRow, v float64)
	positive bool
}

func optional(dst func(row *types.CatalogRow) **float64) func(*types.CatalogRow, float64) {
	return func(row *types.CatalogRow, v float64) {
		*dst(row) = &v
	}
}

var columns = map[string]column{
	ColName:            {text: func(r *types.CatalogRow, s string) { r.Name = s }},
	ColHost:            {text: func(r *types.CatalogRow, s string) { r.Host = s }},
	ColSpectralType:    {text: func(r *types.CatalogRow, s string) { r.SpectralType = s }},
	ColOrbitalPeriod:   {number: optional(func(r *types.CatalogRow) **float64 { return &r.OrbitalPeriod })},
	ColEquilibriumTemp: {number: optional(func(r *types.CatalogRow) **float64 { return &r.EquilibriumTemp })},
	ColStellarMass:     {number: optional(func(r *types.CatalogRow) **float64 { return &r.StellarMass })},
	ColSemiMajorAxis:   {number: func(r *types.CatalogRow, v float64) { r.SemiMajorAxis = v }, positive: true},
	ColPlanetRadius:    {number: func(r *types.CatalogRow, v float64) { r.PlanetRadius = v }, positive: true},
	ColPlanetMass:      {number: func(r *types.CatalogRow, v float64) { r.PlanetMass = v }},
	ColStellarTemp:     {number: func(r *types.CatalogRow, v float64) { r.StellarTemp = v }},
	ColStellarRadius:   {number: func(r *types.CatalogRow, v float64) { r.StellarRadius = v }},
	ColDistance:        {number: func(r *types.CatalogRow, v float64) { r.Distance = v }, positive: true},
}

// KnownColumn reports whether name is a column the loader understands.
func KnownColumn(name string) bool {
	_, ok := columns[name]
	return ok
}

// Options controls how a catalog is read.
type Options struct {
	// RequiredColumns must appear in the header and be non-missing in a row
	// for the row to be kept. CoreColumns are always added.
	RequiredColumns []string
	// CommentPrefix marks lines to skip. Defaults to "#".
	CommentPrefix string
	Logger        *zap.Logger
}

// Catalog is a parsed catalog snapshot. It is never modified after Parse returns.
type Catalog struct {
	Rows     []types.CatalogRow
	Columns  []string // recognized header columns, in file order
	Source   string
	LoadedAt time.Time
	ModTime  time.Time
	Excluded int // rows dropped for missing or invalid required values
}

// Len returns the number of retained rows.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Rows)
}

// Load reads and parses the catalog file at path.
func Load(path string, opts Options) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "open %s: %v", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "stat %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "%s is a directory", path)
	}

	cat, err := Parse(f, opts)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "catalog %s", path)
	}
	cat.Source = path
	cat.ModTime = info.ModTime()
	return cat, nil
}

// Parse reads a comment-prefixed CSV catalog from r.
func Parse(r io.Reader, opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix := opts.CommentPrefix
	if prefix == "" {
		prefix = DefaultCommentPrefix
	}

	body, err := stripComments(r, prefix)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "read: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errorsmod.Wrap(types.ErrCatalogLoad, "no header row")
	}
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "header: %v", err)
	}

	index := make(map[string]int, len(header))
	var recognized []string
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if !KnownColumn(name) {
			continue
		}
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = i
		recognized = append(recognized, name)
	}

	required := requiredSet(opts.RequiredColumns)
	var missing []string
	for _, name := range sortedKeys(required) {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "missing required columns: %s", strings.Join(missing, ", "))
	}

	cat := &Catalog{
		Columns:  recognized,
		LoadedAt: time.Now(),
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Debug("skipping malformed catalog line", zap.Int("line", line), zap.Error(err))
				cat.Excluded++
				continue
			}
			return nil, errorsmod.Wrapf(types.ErrCatalogLoad, "line %d: %v", line, err)
		}

		row, reason := parseRecord(record, index, required)
		if reason != "" {
			logger.Debug("excluding catalog row", zap.Int("line", line), zap.String("reason", reason))
			cat.Excluded++
			continue
		}
		row.Index = len(cat.Rows)
		cat.Rows = append(cat.Rows, row)
	}

	logger.Info("catalog parsed",
		zap.Int("rows", len(cat.Rows)),
		zap.Int("excluded", cat.Excluded),
		zap.Strings("columns", recognized))

	return cat, nil
}

// parseRecord converts one CSV record. A non-empty reason means the row is excluded.
func parseRecord(record []string, index map[string]int, required map[string]bool) (types.CatalogRow, string) {
	var row types.CatalogRow
	for name, i := range index {
		col := columns[name]
		cell := ""
		if i < len(record) {
			cell = strings.TrimSpace(record[i])
		}
		req := required[name]

		if cell == "" {
			if req {
				return row, fmt.Sprintf("missing %s", name)
			}
			continue
		}

		if col.text != nil {
			col.text(&row, cell)
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			if req {
				return row, fmt.Sprintf("invalid %s %q", name, cell)
			}
			continue
		}
		if col.positive && v <= 0 {
			if req {
				return row, fmt.Sprintf("non-positive %s %q", name, cell)
			}
			continue
		}
		col.number(&row, v)
	}
	return row, ""
}

// stripComments drops blank lines and lines starting with prefix.
func stripComments(r io.Reader, prefix string) (string, error) {
	var b strings.Builder
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(trimmed, prefix) {
				b.WriteString(strings.TrimRight(line, "\r\n"))
				b.WriteByte('\n')
			}
		}
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

func requiredSet(configured []string) map[string]bool {
	set := make(map[string]bool, len(configured)+len(CoreColumns))
	for _, c := range CoreColumns {
		set[c] = true
	}
	for _, c := range configured {
		set[strings.ToLower(strings.TrimSpace(c))] = true
	}
	return set
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
