package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptc/model"
)

func TestByName(t *testing.T) {
	c, err := ByName("LS2")
	require.NoError(t, err)
	assert.Equal(t, "ls2", c.Name)

	_, err = ByName("dish")
	assert.Error(t, err)
	assert.Equal(t, []string{"literature", "ls2"}, Names())
}

func TestPresetsValid(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.Less(t, c.InnerDiameter, c.OuterDiameter, name)
		assert.Less(t, c.OuterDiameter, c.GlassDiameter, name)
		assert.Greater(t, c.ReceiverEmissivity, 0.0, name)
		assert.LessOrEqual(t, c.GlassEmissivity, 1.0, name)
	}
}

func TestApply(t *testing.T) {
	c, err := ByName("literature")
	require.NoError(t, err)

	in := model.Inputs{DNI: 700, MassFlowRate: 0.5}
	c.Apply(&in)
	assert.Equal(t, 20.0, in.Length)
	assert.Equal(t, 3.5, in.ApertureWidth)
	assert.Equal(t, 0.09, in.GlassDiameter)
	assert.Equal(t, 0.75, in.OpticalEfficiency)
	// 其他参数不变
	assert.Equal(t, 700.0, in.DNI)
	assert.Equal(t, 0.5, in.MassFlowRate)

	// 修改副本不影响预设
	c.Length = 1
	again, err := ByName("literature")
	require.NoError(t, err)
	assert.Equal(t, 20.0, again.Length)
}
