package calculator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptc/htf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "literature", cfg.Collector)
	assert.Equal(t, DefaultInputs(), cfg.Inputs)
	assert.Equal(t, DefaultOptions(), cfg.Options)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 32, cfg.HistorySize)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
[environment]
dni = 800
wind_speed = 2

[receiver]
receiver_temperature = 300

[model]
wind_properties = htf
omit_optical_efficiency = true

[solver]
max_iterations = 50

[sweep]
workers = 3

[server]
addr = :8080
history = 16
`))
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Inputs.DNI)
	assert.Equal(t, 2.0, cfg.Inputs.WindSpeed)
	assert.Equal(t, 300.0, cfg.Inputs.ReceiverTemperature)
	assert.Equal(t, 25.0, cfg.Inputs.AmbientTemperature)
	assert.Equal(t, WindHTF, cfg.Options.WindProperties)
	assert.True(t, cfg.Options.OmitOpticalEfficiency)
	assert.Equal(t, 50, cfg.Options.Solver.MaxIterations)
	assert.Equal(t, 1e-3, cfg.Options.Solver.ResidualTolerance)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 16, cfg.HistorySize)
}

func TestLoadConfig_UnknownWindPropertiesFallsBack(t *testing.T) {
	cfg, err := LoadConfig([]byte("[model]\nwind_properties = steam\n"))
	require.NoError(t, err)
	assert.Equal(t, WindAir, cfg.Options.WindProperties)
}

func TestLoadConfig_Preset(t *testing.T) {
	cfg, err := LoadConfig([]byte("[collector]\npreset = ls2\n\n[receiver]\nglass_emissivity = 0.9\n"))
	require.NoError(t, err)
	assert.Equal(t, 7.8, cfg.Inputs.Length)
	assert.Equal(t, 0.15, cfg.Inputs.ReceiverEmissivity)
	assert.Equal(t, 0.9, cfg.Inputs.GlassEmissivity)

	_, err = LoadConfig([]byte("[collector]\npreset = dish\n"))
	assert.Error(t, err)
}

func TestLoadConfig_FluidTable(t *testing.T) {
	cfg, err := LoadConfig([]byte("[htf]\nfluid = therminol-vp1\n\n[flow]\nmass_flow_rate = 2\n"))
	require.NoError(t, err)

	// 物性取 (220+260)/2 = 240℃ 处
	p := htf.TherminolVP1.At(240)
	assert.Equal(t, p.SpecificHeat, cfg.Inputs.SpecificHeat)
	assert.Equal(t, p.Conductivity, cfg.Inputs.HTFConductivity)
	assert.Equal(t, 0.0, cfg.Inputs.InternalCoefficient)

	r, err := Evaluate(cfg.Inputs, cfg.Options)
	require.NoError(t, err)
	assert.Greater(t, r.EfficiencyFactor, 0.0)
	assert.Less(t, r.EfficiencyFactor, 1.0)

	cfg, err = LoadConfig([]byte("[htf]\nfluid = therminol-vp1\ninternal_coefficient = 500\n"))
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Inputs.InternalCoefficient)

	_, err = LoadConfig([]byte("[htf]\nfluid = water\n"))
	assert.Error(t, err)
}

func TestLoadConfig_AirTable(t *testing.T) {
	cfg, err := LoadConfig([]byte("[air]\nsource = table\n"))
	require.NoError(t, err)
	p := htf.Air.At(25)
	assert.Equal(t, p.Density, cfg.Inputs.AirDensity)
	assert.Equal(t, p.Conductivity, cfg.Inputs.AirConductivity)

	_, err = LoadConfig([]byte("[air]\nsource = balloon\n"))
	assert.Error(t, err)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[flow]\ninlet_temperature = 200\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Inputs.InletTemperature)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestLoadConfig_RepoConfig(t *testing.T) {
	cfg, err := LoadConfig("../conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, DefaultInputs(), cfg.Inputs)
	assert.Equal(t, DefaultOptions(), cfg.Options)
}

// 只改 fluid 一项即切换到物性表
func TestLoadConfig_RepoConfigFluidSwitch(t *testing.T) {
	data, err := os.ReadFile("../conf/config.ini")
	require.NoError(t, err)
	data = bytes.Replace(data, []byte("fluid = custom"), []byte("fluid = therminol-vp1"), 1)
	data = bytes.Replace(data, []byte("source = custom"), []byte("source = table"), 1)

	cfg, err := LoadConfig(data)
	require.NoError(t, err)
	p := htf.TherminolVP1.At(240)
	assert.Equal(t, p.Density, cfg.Inputs.HTFDensity)
	assert.Equal(t, p.Viscosity, cfg.Inputs.HTFViscosity)
	assert.Equal(t, p.SpecificHeat, cfg.Inputs.SpecificHeat)
	assert.Equal(t, 0.0, cfg.Inputs.InternalCoefficient)

	air := htf.Air.At(25)
	assert.Equal(t, air.Density, cfg.Inputs.AirDensity)
	assert.Equal(t, air.Conductivity, cfg.Inputs.AirConductivity)
}
