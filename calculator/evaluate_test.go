package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptc/model"
)

func TestEvaluate_Literature(t *testing.T) {
	r, err := Evaluate(DefaultInputs(), DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 64.553, r.GlassTemperature, 1e-3)
	assert.InDelta(t, 39.78307, r.WindCoefficient, 1e-4)
	assert.InDelta(t, 13.98121, r.LossCoefficient, 1e-3)
	assert.InDelta(t, 0.915263, r.EfficiencyFactor, 1e-5)
	assert.InDelta(t, 0.873967, r.HeatRemovalFactor, 1e-5)
	assert.InDelta(t, 15456.1, r.UsefulGain, 0.5)
	assert.InDelta(t, 255.778, r.OutletTemperature, 1e-2)
	assert.InDelta(t, r.UsefulGain/(500*70), r.ThermalEfficiency, 1e-12)

	assert.Greater(t, r.EfficiencyFactor, 0.0)
	assert.Less(t, r.EfficiencyFactor, 1.0)
	assert.Greater(t, r.HeatRemovalFactor, 0.0)
	assert.Less(t, r.HeatRemovalFactor, r.EfficiencyFactor)
}

// 文献值在有用得热量中不计光学效率
func TestEvaluate_Benchmark(t *testing.T) {
	r, err := Evaluate(DefaultInputs(), BenchmarkOptions())
	require.NoError(t, err)

	b := DefaultBenchmark()
	assert.InDelta(t, 23103.3, r.UsefulGain, 0.5)
	assert.InDelta(t, 273.48, r.OutletTemperature, 1e-2)
	assert.Less(t, math.Abs(b.UsefulGain-r.UsefulGain)/b.UsefulGain*100, 1.2)
	assert.Less(t, math.Abs(b.OutletTemperature-r.OutletTemperature)/b.OutletTemperature*100, 1.2)
}

func TestEvaluate_EnergyBalance(t *testing.T) {
	for _, dni := range []float64{0, 200, 500, 1000} {
		in := DefaultInputs()
		in.DNI = dni
		r, err := Evaluate(in, DefaultOptions())
		require.NoError(t, err)
		assert.InDelta(t, r.UsefulGain, in.MassFlowRate*in.SpecificHeat*(r.OutletTemperature-in.InletTemperature), 1e-6)
		// 玻璃罩温度只取决于 T_r，与辐照无关
		assert.InDelta(t, 64.553, r.GlassTemperature, 1e-3)
	}
}

func TestEvaluate_NetLossNotClamped(t *testing.T) {
	in := DefaultInputs()
	in.DNI = 0
	r, err := Evaluate(in, DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, -7485.56, r.UsefulGain, 0.5)
	assert.Less(t, r.OutletTemperature, in.InletTemperature)
	assert.Equal(t, 0.0, r.ThermalEfficiency)
}

func TestEvaluate_Deterministic(t *testing.T) {
	a, err := Evaluate(DefaultInputs(), DefaultOptions())
	require.NoError(t, err)
	b, err := Evaluate(DefaultInputs(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluate_WindProperties(t *testing.T) {
	in := DefaultInputs()
	in.HTFDensity, in.HTFViscosity = 2.22, 2.02e-5

	air, err := Evaluate(in, DefaultOptions())
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.WindProperties = WindHTF
	fluid, err := Evaluate(in, opts)
	require.NoError(t, err)
	assert.Greater(t, fluid.WindCoefficient, air.WindCoefficient)

	opts.WindProperties = "steam"
	_, err = Evaluate(in, opts)
	assert.Error(t, err)
}

func TestEvaluate_InternalCoefficientFromFluid(t *testing.T) {
	in := DefaultInputs()
	in.InternalCoefficient = 0
	in.HTFConductivity = 0
	_, err := Evaluate(in, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidThermalState)

	in.SpecificHeat, in.HTFDensity, in.HTFViscosity, in.HTFConductivity = 2100, 880, 0.3e-3, 0.11
	in.MassFlowRate = 2
	r, err := Evaluate(in, DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, r.EfficiencyFactor, 0.9)
}

func TestEvaluate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *model.Inputs)
		want   error
	}{
		{"geometry", func(in *model.Inputs) { in.GlassDiameter = 0.03 }, ErrInvalidGeometry},
		{"zero flow", func(in *model.Inputs) { in.MassFlowRate = 0 }, ErrInvalidFlowRate},
		{"negative cp", func(in *model.Inputs) { in.SpecificHeat = -1350 }, ErrInvalidFlowRate},
		{"receiver emissivity", func(in *model.Inputs) { in.ReceiverEmissivity = 0 }, ErrInvalidThermalState},
		{"glass emissivity", func(in *model.Inputs) { in.GlassEmissivity = 1.5 }, ErrInvalidThermalState},
		{"cold receiver", func(in *model.Inputs) { in.ReceiverTemperature = in.AmbientTemperature }, ErrNoGlassTemperatureSolution},
		{"receiver below ambient", func(in *model.Inputs) { in.ReceiverTemperature = 15 }, ErrNoGlassTemperatureSolution},
		{"below absolute zero", func(in *model.Inputs) { in.AmbientTemperature = -300 }, ErrInvalidThermalState},
		{"negative wind", func(in *model.Inputs) { in.WindSpeed = -2 }, ErrInvalidThermalState},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := DefaultInputs()
			c.mutate(&in)
			r, err := Evaluate(in, DefaultOptions())
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, model.Result{}, r)
		})
	}
}
