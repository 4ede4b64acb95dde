// Package ports defines the interfaces between the application services
// and the outbound adapters (plot, spreadsheet, report, run archive).
package ports

import (
	"context"

	"gokinet/domain/kinetics"
	"gokinet/domain/powerlaw"
	"gokinet/domain/run"
	"gokinet/internal/analysis"
	"gokinet/internal/solve"
)

// TrajectoryPlotter renders the original-vs-approximation comparison plot.
type TrajectoryPlotter interface {
	RenderComparison(sol *solve.Solution, path string) error
}

// TrajectoryExporter persists the sampled trajectory and fidelity summary.
type TrajectoryExporter interface {
	Export(sol *solve.Solution, fidelity []analysis.PairFidelity, path string) error
}

// ReportData bundles everything the run report renders.
type ReportData struct {
	Manifest       *run.Manifest
	Approximations []powerlaw.Approximation
	Final          kinetics.StateVector
	Fidelity       []analysis.PairFidelity
	PlotFile       string
	ExcelFile      string
}

// ReportRenderer renders the run report document.
type ReportRenderer interface {
	Render(data ReportData, path string) error
}

// RunStore archives run manifests and outcomes. Implementations must be
// safe to skip entirely: archiving is optional.
type RunStore interface {
	SaveRun(ctx context.Context, m *run.Manifest, final kinetics.StateVector, fidelity []analysis.PairFidelity) error
	Close() error
}
