package calculator

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	in := DefaultInputs()
	require.NoError(t, SetParam(&in, "wind_speed", 7.5))
	assert.Equal(t, 7.5, in.WindSpeed)

	v, err := GetParam(in, "wind_speed")
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	assert.Error(t, SetParam(&in, "colour", 1))
	_, err = GetParam(in, "colour")
	assert.Error(t, err)
}

func TestParamNames(t *testing.T) {
	names := ParamNames()
	assert.Len(t, names, 23)
	assert.True(t, sort.StringsAreSorted(names))

	// 每个名称对应不同的字段
	in := DefaultInputs()
	for i, name := range names {
		require.NoError(t, SetParam(&in, name, float64(1000+i)))
	}
	for i, name := range names {
		v, err := GetParam(in, name)
		require.NoError(t, err)
		assert.Equal(t, float64(1000+i), v, name)
	}
}
