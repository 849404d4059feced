package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyIsUndefined(t *testing.T) {
	assert.Nil(t, Summarize(nil))
}

func TestSummarizeSingleRow(t *testing.T) {
	s := Summarize(withSNR(42))
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 42.0, s.Median)
	assert.Equal(t, 42.0, s.Min)
	assert.Equal(t, 42.0, s.Max)
	assert.Nil(t, s.StdDev)
}

func TestSummarize(t *testing.T) {
	s := Summarize(withSNR(2, 4, 4, 4, 5, 5, 7, 9))
	require.NotNil(t, s)

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 4.5, s.Median, 1e-12)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	require.NotNil(t, s.StdDev)
	// sample deviation: sqrt(32/7)
	assert.InDelta(t, math.Sqrt(32.0/7.0), *s.StdDev, 1e-12)
}

func TestSummarizeEqualValues(t *testing.T) {
	s := Summarize(DeriveAll(threeSystems(), 6))
	require.NotNil(t, s)
	assert.InDelta(t, 100.0, s.Mean, 1e-9)
	assert.InDelta(t, 100.0, s.Median, 1e-9)
	require.NotNil(t, s.StdDev)
	assert.InDelta(t, 0.0, *s.StdDev, 1e-9)
}
