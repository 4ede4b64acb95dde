package run

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"gokinet/domain/core"
	"gokinet/domain/kinetics"
)

// Manifest is the complete specification of one simulation run: with the
// same manifest and a deterministic solver, a run replays bit-identically.
type Manifest struct {
	RunID        core.RunID     `json:"run_id"`
	Method       string         `json:"method"`
	AbsTolerance float64        `json:"abs_tolerance"`
	StepSize     float64        `json:"step_size"`
	TStart       float64        `json:"t_start"`
	TEnd         float64        `json:"t_end"`
	ParamsHash   string         `json:"params_hash"`
	CodeVersion  string         `json:"code_version"`
	CreatedAt    core.Timestamp `json:"created_at"`
}

// NewManifest creates a manifest for the given solver settings and
// parameter set.
func NewManifest(method string, absTol, step, tStart, tEnd float64, params kinetics.Params, codeVersion string) *Manifest {
	return &Manifest{
		RunID:        core.NewRunID(),
		Method:       method,
		AbsTolerance: absTol,
		StepSize:     step,
		TStart:       tStart,
		TEnd:         tEnd,
		ParamsHash:   FingerprintParams(params),
		CodeVersion:  codeVersion,
		CreatedAt:    core.Now(),
	}
}

// FingerprintParams returns a stable hash of the parameter set.
func FingerprintParams(params kinetics.Params) string {
	// Params is a flat struct of float64 fields; JSON encoding is stable.
	raw, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Validate checks if the manifest is complete
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("manifest", "run_id cannot be empty")
	}
	if m.ParamsHash == "" {
		return core.NewValidationError("manifest", "params_hash cannot be empty")
	}
	if m.TEnd <= m.TStart {
		return core.NewValidationError("manifest", "horizon must end after it starts")
	}
	return nil
}
