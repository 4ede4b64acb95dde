package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokinet/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1e-3, cfg.Solver.AbsTolerance)
	assert.Equal(t, 0.01, cfg.Solver.StepSize)
	assert.Equal(t, 0.0, cfg.Solver.TStart)
	assert.Equal(t, 100.0, cfg.Solver.TEnd)
	assert.Equal(t, "dopri", cfg.Solver.Method)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SOLVER_METHOD", "rk4")
	t.Setenv("SOLVER_STEP", "0.05")
	t.Setenv("SOLVER_T_END", "250")
	t.Setenv("OUTPUT_DIR", "/tmp/runs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rk4", cfg.Solver.Method)
	assert.Equal(t, 0.05, cfg.Solver.StepSize)
	assert.Equal(t, 250.0, cfg.Solver.TEnd)
	assert.Equal(t, "/tmp/runs", cfg.Output.Dir)
}

func TestLoadRejectsInvalidMethod(t *testing.T) {
	t.Setenv("SOLVER_METHOD", "euler")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsInvalidHorizon(t *testing.T) {
	t.Setenv("SOLVER_T_START", "100")
	t.Setenv("SOLVER_T_END", "50")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestMalformedNumberFallsBackToDefault(t *testing.T) {
	t.Setenv("SOLVER_ABS_TOL", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-3, cfg.Solver.AbsTolerance)
}
