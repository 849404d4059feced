package analysis

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/exoscope/internal/types"
)

func TestParseQueryDefaults(t *testing.T) {
	q, err := ParseQuery(url.Values{}, types.DefaultQuery())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultQuery(), q)

	q, err = ParseQuery(nil, types.DefaultQuery())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultQuery(), q)
}

func TestParseQueryOverrides(t *testing.T) {
	values := url.Values{
		ParamTelescopeDiameter: {"8.5"},
		ParamMinSNR:            {"10"},
		ParamMaxDistance:       {" 50 "},
		ParamHabitableOnly:     {"on"},
		ParamK:                 {"3"},
		ParamStart:             {"6"},
		ParamCount:             {"12"},
	}
	q, err := ParseQuery(values, types.DefaultQuery())
	require.NoError(t, err)

	assert.Equal(t, 8.5, q.TelescopeDiameter)
	assert.Equal(t, 10.0, q.MinSNR)
	assert.Equal(t, 50.0, q.MaxDistance)
	assert.True(t, q.HabitableOnly)
	assert.Equal(t, 3, q.K)
	assert.Equal(t, 6, q.Start)
	assert.Equal(t, 12, q.Count)
}

func TestParseQueryEmptyValueKeepsDefault(t *testing.T) {
	q, err := ParseQuery(url.Values{ParamMinSNR: {""}}, types.DefaultQuery())
	require.NoError(t, err)
	assert.Equal(t, 5.0, q.MinSNR)
}

func TestParseQueryRejectsMalformed(t *testing.T) {
	bad := []url.Values{
		{ParamTelescopeDiameter: {"six"}},
		{ParamTelescopeDiameter: {"0"}},
		{ParamTelescopeDiameter: {"-2"}},
		{ParamMinSNR: {"NaN"}},
		{ParamMaxDistance: {"Inf"}},
		{ParamK: {"2.5"}},
		{ParamCount: {"many"}},
	}
	for _, values := range bad {
		q, err := ParseQuery(values, types.DefaultQuery())
		require.Error(t, err, "%v", values)
		assert.True(t, errors.Is(err, types.ErrInvalidParameter), "%v", values)
		assert.Equal(t, types.DefaultQuery(), q)
	}
}

func TestParseToggle(t *testing.T) {
	for _, on := range []string{"on", "ON", "true", "1", "yes"} {
		assert.True(t, ParseToggle(on), on)
	}
	for _, off := range []string{"", "off", "false", "0", "checked"} {
		assert.False(t, ParseToggle(off), off)
	}
}
