package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokinet/domain/kinetics"
)

func TestNewManifest(t *testing.T) {
	m := NewManifest("dopri", 1e-3, 0.01, 0, 100, kinetics.DefaultParams(), "0.1.0")

	require.NoError(t, m.Validate())
	assert.False(t, m.RunID.String() == "")
	assert.Equal(t, "dopri", m.Method)
	assert.Len(t, m.ParamsHash, 64)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestFingerprintIsStable(t *testing.T) {
	params := kinetics.DefaultParams()
	first := FingerprintParams(params)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FingerprintParams(params))
	}
}

func TestFingerprintTracksParameterChanges(t *testing.T) {
	params := kinetics.DefaultParams()
	base := FingerprintParams(params)

	params.K29 *= 1.01
	assert.NotEqual(t, base, FingerprintParams(params))

	params = kinetics.DefaultParams()
	params.PowerLaw.K29p *= 1.01
	assert.NotEqual(t, base, FingerprintParams(params))
}

func TestValidateRejectsIncompleteManifest(t *testing.T) {
	m := NewManifest("rk4", 1e-3, 0.01, 0, 100, kinetics.DefaultParams(), "0.1.0")

	bad := *m
	bad.RunID = ""
	assert.Error(t, bad.Validate())

	bad = *m
	bad.ParamsHash = ""
	assert.Error(t, bad.Validate())

	bad = *m
	bad.TEnd = bad.TStart
	assert.Error(t, bad.Validate())
}
