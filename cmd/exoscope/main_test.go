package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliCatalog = `# test catalog
pl_name,hostname,pl_orbper,pl_orbsmax,pl_rade,pl_bmasse,pl_eqt,st_teff,st_rad,sy_dist
Far c,Far,900,2,3,5,150,3000,1,15
Near b,Near,800,2,1,1,180,4000,1,5
Twin b,Twin,420,1.1,1.1,53.24,250,5800,1,10
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixtures(t *testing.T) (catalogFile, configFile string) {
	t.Helper()
	dir := t.TempDir()
	catalogFile = filepath.Join(dir, "catalog.csv")
	require.NoError(t, os.WriteFile(catalogFile, []byte(cliCatalog), 0o644))
	return catalogFile, filepath.Join(dir, "config.yaml")
}

func TestRankCommand(t *testing.T) {
	catalogFile, configFile := writeFixtures(t)
	exported := filepath.Join(filepath.Dir(catalogFile), "ranked.jsonl")

	out, err := execute(t, "rank", "--config", configFile, "--catalog", catalogFile,
		"--min-snr", "10", "--k", "2", "--output", exported, "--format", "jsonl")
	require.NoError(t, err)

	assert.Contains(t, out, "EXOPLANET RANKING")
	assert.Contains(t, out, "3 -> snr 3 -> distance 3 -> habitable 3 -> trim 3")
	assert.Contains(t, out, "Near b")
	assert.Contains(t, out, "Closest 2")

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(data, []byte("\n")))
}

func TestSummaryCommand(t *testing.T) {
	catalogFile, configFile := writeFixtures(t)

	out, err := execute(t, "summary", "--config", configFile, "--catalog", catalogFile,
		"--min-snr", "10", "--habitable-only")
	require.NoError(t, err)
	assert.Contains(t, out, "3 rows, 0 excluded")
	assert.Contains(t, out, "G=1, K=1, M=1, Other=0")
	assert.Contains(t, out, "habitable 1")
}

func TestInitCommand(t *testing.T) {
	_, configFile := writeFixtures(t)

	out, err := execute(t, "init", "--config", configFile, "--catalog", "")
	require.NoError(t, err)
	assert.Contains(t, out, configFile)
	assert.FileExists(t, configFile)

	_, err = execute(t, "init", "--config", configFile)
	assert.Error(t, err)
}

func TestZonesAndTelescopes(t *testing.T) {
	_, configFile := writeFixtures(t)

	out, err := execute(t, "zones", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "0.95")
	assert.Contains(t, out, "200-300 K")

	out, err = execute(t, "telescopes", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "elt")
	assert.Contains(t, out, "39.0")
}

func TestRankRejectsUnknownTelescope(t *testing.T) {
	catalogFile, configFile := writeFixtures(t)
	_, err := execute(t, "rank", "--config", configFile, "--catalog", catalogFile, "--telescope", "hubble-2")
	assert.Error(t, err)
	rankQuery.telescope = ""
}
