// Package postgres archives run manifests and outcomes in PostgreSQL.
// The archive is optional; the pipeline runs fully without it.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gokinet/domain/kinetics"
	"gokinet/domain/run"
	"gokinet/internal/analysis"
	"gokinet/internal/errors"
	"gokinet/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	method        TEXT NOT NULL,
	abs_tolerance DOUBLE PRECISION NOT NULL,
	step_size     DOUBLE PRECISION NOT NULL,
	t_start       DOUBLE PRECISION NOT NULL,
	t_end         DOUBLE PRECISION NOT NULL,
	params_hash   TEXT NOT NULL,
	code_version  TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	final_state   JSONB NOT NULL,
	fidelity      JSONB NOT NULL
)`

// RunRepository implements ports.RunStore for PostgreSQL.
type RunRepository struct {
	db *sqlx.DB
}

// Connect opens the run archive and ensures its schema exists.
func Connect(ctx context.Context, url string) (*RunRepository, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to run archive: " + err.Error())
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.DatabaseError("failed to ensure runs schema: " + err.Error())
	}
	return &RunRepository{db: db}, nil
}

// NewRunRepository wraps an existing connection.
func NewRunRepository(db *sqlx.DB) ports.RunStore {
	return &RunRepository{db: db}
}

// SaveRun archives one run: the manifest columns plus the final state and
// fidelity summary as JSON documents.
func (r *RunRepository) SaveRun(ctx context.Context, m *run.Manifest, final kinetics.StateVector, fidelity []analysis.PairFidelity) error {
	state := make(map[string]float64, len(final))
	for i, v := range final {
		state[kinetics.SpeciesName(i)] = v
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode final state")
	}
	fidelityJSON, err := json.Marshal(fidelity)
	if err != nil {
		return errors.Wrap(err, "failed to encode fidelity summary")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, method, abs_tolerance, step_size, t_start, t_end,
			params_hash, code_version, created_at, final_state, fidelity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, m.RunID, m.Method, m.AbsTolerance, m.StepSize, m.TStart, m.TEnd,
		m.ParamsHash, m.CodeVersion, m.CreatedAt.Time(), stateJSON, fidelityJSON)
	if err != nil {
		return errors.DatabaseError("failed to archive run: " + err.Error())
	}
	return nil
}

// Close releases the connection.
func (r *RunRepository) Close() error {
	return r.db.Close()
}
