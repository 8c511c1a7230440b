package htf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFluid_At(t *testing.T) {
	min, max := TherminolVP1.Range()
	assert.Equal(t, 25.0, min)
	assert.Equal(t, 400.0, max)

	// 表内节点
	p := TherminolVP1.At(200)
	assert.Equal(t, 913.0, p.Density)
	assert.Equal(t, 2048.0, p.SpecificHeat)

	// 两节点中点
	p = TherminolVP1.At(225)
	assert.InDelta(t, (913.0+867.0)/2, p.Density, 1e-9)
	assert.InDelta(t, (0.1145+0.1075)/2, p.Conductivity, 1e-12)

	// 超出范围取端点
	assert.Equal(t, TherminolVP1.At(400), TherminolVP1.At(450))
	assert.Equal(t, TherminolVP1.At(25), TherminolVP1.At(-10))
}

func TestFluid_TablesSorted(t *testing.T) {
	for _, name := range Names() {
		f, err := ByName(name)
		require.NoError(t, err)
		for i := 1; i < len(f.table); i++ {
			assert.Greater(t, f.table[i].temperature, f.table[i-1].temperature, name)
		}
	}
}

func TestByName(t *testing.T) {
	f, err := ByName(" Syltherm-800 ")
	require.NoError(t, err)
	assert.Equal(t, Syltherm800, f)

	_, err = ByName("water")
	assert.Error(t, err)
	assert.Equal(t, []string{"air", "syltherm-800", "therminol-vp1"}, Names())
}

func TestPrandtl(t *testing.T) {
	p := Air.At(25)
	assert.InDelta(t, 0.73, p.Prandtl(), 0.01)
}

func TestDittusBoelter(t *testing.T) {
	p := TherminolVP1.At(240)
	h, err := DittusBoelter(2, 0.04, p)
	require.NoError(t, err)
	assert.Greater(t, h, 1000.0)

	// 层流
	h, err = DittusBoelter(1e-4, 0.04, p)
	require.NoError(t, err)
	assert.InDelta(t, 4.36*p.Conductivity/0.04, h, 1e-12)

	_, err = DittusBoelter(0, 0.04, p)
	assert.Error(t, err)
	_, err = DittusBoelter(1, 0.04, Properties{})
	assert.Error(t, err)
}
