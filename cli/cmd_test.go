package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptc/calculator"
)

// 恢复默认参数，Root 在各测试间共用
func resetFlags() {
	configFile, logLevel = "", "info"
	sets = nil
	tolerance = 1.2
	sweepParam, sweepFrom, sweepTo, sweepSteps, outFile = "dni", 0, 1000, 11, ""
	profileFile, addr = "", ""
	cfg = calculator.Config{}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetErr(&buf)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func TestParseSet(t *testing.T) {
	name, value, err := parseSet("dni = 800")
	require.NoError(t, err)
	assert.Equal(t, "dni", name)
	assert.Equal(t, 800.0, value)

	_, _, err = parseSet("dni")
	assert.Error(t, err)
	_, _, err = parseSet("dni=high")
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	out, err := run(t, "evaluate", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "glass temperature")
	assert.Contains(t, out, "U_L")
	assert.Contains(t, out, "T_out")
}

func TestEvaluate_Set(t *testing.T) {
	out, err := run(t, "evaluate", "--log", "error", "--set", "dni=800", "--set", "wind_speed=1")
	require.NoError(t, err)
	assert.Contains(t, out, "800.0")
	assert.Equal(t, 800.0, cfg.Inputs.DNI)
	assert.Equal(t, 1.0, cfg.Inputs.WindSpeed)

	_, err = run(t, "evaluate", "--log", "error", "--set", "colour=1")
	assert.Error(t, err)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	_, err := run(t, "evaluate", "--log", "error", "--set", "mass_flow_rate=0")
	assert.ErrorIs(t, err, calculator.ErrInvalidFlowRate)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "literature")
	assert.Contains(t, out, "23028.0")

	_, err = run(t, "validate", "--log", "error", "--tolerance", "0.01")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := run(t, "sweep", "--log", "error", "--param", "receiver_temperature", "--from", "100", "--to", "400", "--steps", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "0,receiver_temperature,100,"))
	assert.True(t, strings.HasPrefix(lines[4], "3,receiver_temperature,400,"))

	_, err = run(t, "sweep", "--log", "error", "--steps", "1")
	assert.Error(t, err)
	_, err = run(t, "sweep", "--log", "error", "--param", "colour")
	assert.Error(t, err)
}

func TestDaily(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.csv")
	require.NoError(t, os.WriteFile(profile, []byte("hour,dni\n8,300\n12,800\n20,0\n"), 0o644))
	out := filepath.Join(dir, "daily.csv")

	_, err := run(t, "daily", "--log", "error", "--profile", profile, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "8,300,"))
	assert.True(t, strings.HasPrefix(lines[3], "20,0,"))
	// 无辐照时为净损失
	assert.Contains(t, lines[3], ",-")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[environment]\ndni = 650\n\n[flow]\nmass_flow_rate = 0.5\n"), 0o644))

	_, err := run(t, "evaluate", "--log", "error", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 650.0, cfg.Inputs.DNI)
	assert.Equal(t, 0.5, cfg.Inputs.MassFlowRate)

	_, err = run(t, "evaluate", "--log", "error", "--config", filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "evaluate", "--log", "loud")
	assert.Error(t, err)
}
