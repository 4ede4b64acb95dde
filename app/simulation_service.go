package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gokinet/domain/kinetics"
	"gokinet/domain/run"
	"gokinet/internal"
	"gokinet/internal/analysis"
	"gokinet/internal/config"
	"gokinet/internal/errors"
	"gokinet/internal/solve"
	"gokinet/ports"
)

// Version is stamped into every run manifest.
const Version = "0.1.0"

// SimulationService runs the side-by-side comparison: the full Hill-based
// model and its power-law shadow species integrated as one system, with
// fidelity metrics and run artifacts emitted at the end.
type SimulationService struct {
	approx   *ApproximationService
	plotter  ports.TrajectoryPlotter
	exporter ports.TrajectoryExporter
	reporter ports.ReportRenderer
	store    ports.RunStore // nil when archiving is disabled
	cfg      *config.Config
	logger   *internal.Logger
}

// NewSimulationService creates a simulation service. store may be nil.
func NewSimulationService(
	approx *ApproximationService,
	plotter ports.TrajectoryPlotter,
	exporter ports.TrajectoryExporter,
	reporter ports.ReportRenderer,
	store ports.RunStore,
	cfg *config.Config,
	logger *internal.Logger,
) *SimulationService {
	return &SimulationService{
		approx:   approx,
		plotter:  plotter,
		exporter: exporter,
		reporter: reporter,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

// SimulationRequest defines one comparison run.
type SimulationRequest struct {
	Params kinetics.Params
	// Initial overrides the default operating point when non-nil.
	Initial kinetics.StateVector
	// Perturbations multiplies named species concentrations before the
	// run starts. Shadow species are re-synced to their originals after
	// perturbation so both copies start from the same state.
	Perturbations map[string]float64
}

// SimulationResult is the complete outcome of one comparison run.
type SimulationResult struct {
	Manifest       *run.Manifest           `json:"manifest"`
	Approximation  *ApproximationResult    `json:"approximation"`
	Solution       *solve.Solution         `json:"-"`
	FinalState     map[string]float64      `json:"final_state"`
	Fidelity       []analysis.PairFidelity `json:"fidelity"`
	ArtifactsDir   string                  `json:"artifacts_dir,omitempty"`
	WithinTolBound bool                    `json:"within_tol_bound"`
}

// MaxShadowDivergence is the acceptance bound on the relative gap between
// any shadow species and its original over the whole trajectory.
const MaxShadowDivergence = 0.05

// Run fits the power-law substitutes at the operating point, integrates
// the combined 31-state system and summarizes shadow fidelity.
func (s *SimulationService) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	op := kinetics.OperatingPoint()

	fit, err := s.approx.FitAtOperatingPoint(req.Params, op)
	if err != nil {
		return nil, err
	}

	params := req.Params
	params.PowerLaw = fit.PowerLaw

	initial := req.Initial
	if initial == nil {
		initial = op.Clone()
	} else if len(initial) != kinetics.NumSpecies {
		return nil, errors.InvalidInput(fmt.Sprintf(
			"initial state must have %d species, got %d", kinetics.NumSpecies, len(initial)))
	}
	if err := applyPerturbations(initial, req.Perturbations); err != nil {
		return nil, err
	}

	model := kinetics.NewModel(params)
	rhs := func(t float64, y, dst []float64) error {
		return model.Derivative(t, y, dst)
	}
	integrator := solve.ForMethod(s.cfg.Solver.Method)
	settings := solve.Settings{
		AbsTolerance: s.cfg.Solver.AbsTolerance,
		StepSize:     s.cfg.Solver.StepSize,
		MaxSteps:     s.cfg.Solver.MaxSteps,
	}

	s.logger.Info("integrating %d species over [%g, %g] with %s",
		kinetics.NumSpecies, s.cfg.Solver.TStart, s.cfg.Solver.TEnd, integrator.Name())

	sol, err := integrator.Integrate(rhs, s.cfg.Solver.TStart, s.cfg.Solver.TEnd, initial, settings)
	if err != nil {
		return nil, errors.SolverError("integration failed", err)
	}
	s.logger.Debug("solver: %d steps, %d rejected, %d evaluations", sol.Steps, sol.Rejected, sol.Evaluations)

	fidelity, err := analysis.Summarize(sol)
	if err != nil {
		return nil, errors.Wrap(err, "fidelity summary failed")
	}

	within := true
	for _, f := range fidelity {
		s.logger.Info("fidelity %s vs %s: max rel diff %.3g, corr %.6f",
			f.Original, f.Shadow, f.MaxRelDiff, f.Correlation)
		if f.MaxRelDiff > MaxShadowDivergence {
			within = false
			s.logger.Warn("shadow %s diverged beyond %.0f%% from %s",
				f.Shadow, MaxShadowDivergence*100, f.Original)
		}
	}

	manifest := run.NewManifest(
		integrator.Name(),
		s.cfg.Solver.AbsTolerance,
		s.cfg.Solver.StepSize,
		s.cfg.Solver.TStart,
		s.cfg.Solver.TEnd,
		params,
		Version,
	)
	if err := manifest.Validate(); err != nil {
		return nil, errors.Wrap(err, "manifest validation failed")
	}

	finalState := make(map[string]float64, kinetics.NumSpecies)
	for i, v := range sol.Final().Y {
		finalState[kinetics.SpeciesName(i)] = v
	}

	result := &SimulationResult{
		Manifest:       manifest,
		Approximation:  fit,
		Solution:       sol,
		FinalState:     finalState,
		Fidelity:       fidelity,
		WithinTolBound: within,
	}

	if err := s.emitArtifacts(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// emitArtifacts writes the plot, spreadsheet and report concurrently and
// archives the run when a store is configured. Archive failures are
// logged, not fatal: the artifacts on disk are the primary output.
func (s *SimulationService) emitArtifacts(ctx context.Context, res *SimulationResult) error {
	dir := s.cfg.Output.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.ArtifactError("output dir", err)
	}
	res.ArtifactsDir = dir

	plotPath := filepath.Join(dir, s.cfg.Output.PlotFile)
	excelPath := filepath.Join(dir, s.cfg.Output.ExcelFile)
	htmlPath := filepath.Join(dir, s.cfg.Output.HTMLFile)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.plotter.RenderComparison(res.Solution, plotPath); err != nil {
			return errors.ArtifactError("plot", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.exporter.Export(res.Solution, res.Fidelity, excelPath); err != nil {
			return errors.ArtifactError("spreadsheet", err)
		}
		return nil
	})
	g.Go(func() error {
		data := ports.ReportData{
			Manifest:       res.Manifest,
			Approximations: res.Approximation.Approximations,
			Final:          kinetics.StateVector(res.Solution.Final().Y),
			Fidelity:       res.Fidelity,
			PlotFile:       s.cfg.Output.PlotFile,
			ExcelFile:      s.cfg.Output.ExcelFile,
		}
		if err := s.reporter.Render(data, htmlPath); err != nil {
			return errors.ArtifactError("report", err)
		}
		return nil
	})
	g.Go(func() error {
		if s.store == nil {
			return nil
		}
		final := kinetics.StateVector(res.Solution.Final().Y)
		if err := s.store.SaveRun(gctx, res.Manifest, final, res.Fidelity); err != nil {
			s.logger.Warn("run archive failed: %v", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("artifacts written to %s", dir)
	return nil
}

// applyPerturbations scales the named species in place, then re-syncs
// every shadow to its original.
func applyPerturbations(state kinetics.StateVector, perturbations map[string]float64) error {
	for name, factor := range perturbations {
		idx, err := kinetics.SpeciesIndex(name)
		if err != nil {
			return errors.InvalidInput("unknown species " + name)
		}
		if factor <= 0 {
			return errors.InvalidInput("perturbation factor must be positive for " + name)
		}
		state[idx] *= factor
	}
	for _, pair := range kinetics.ShadowPairs {
		state[pair[0]] = state[pair[1]]
	}
	return nil
}
