package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gokinet/adapters/excel"
	"gokinet/adapters/plot"
	"gokinet/adapters/postgres"
	"gokinet/adapters/report"
	"gokinet/app"
	"gokinet/domain/kinetics"
	"gokinet/internal"
	"gokinet/internal/config"
	"gokinet/internal/errors"
	"gokinet/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gokinet",
		Short: "Power-law approximation of Hill kinetics in the insulin signaling cascade",
	}

	rootCmd.AddCommand(
		newApproxCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApproxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approx",
		Short: "Fit power-law substitutes for the two Hill-type reactions",
		Long: `Fit power-law rate laws for v29 (AS160 activation) and v33 (S6K
phosphorylation) at the documented steady-state operating point and print
the fitted exponents and rate constants as JSON.

Example: gokinet approx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			svc := app.NewApproximationService(logger)

			result, err := svc.FitAtOperatingPoint(kinetics.DefaultParams(), kinetics.OperatingPoint())
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func newSimulateCmd() *cobra.Command {
	var perturbations []string
	var method string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the Hill vs power-law comparison simulation",
		Long: `Fit the power-law substitutes, integrate the combined 31-state system
and emit the comparison plot, trajectory workbook and HTML report.

With DATABASE_URL set, the run manifest and outcome are archived as well.

Example: gokinet simulate --perturb Xp=1.15 --perturb PKB473p=1.10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perturb, err := parsePerturbations(perturbations)
			if err != nil {
				return err
			}
			return runSimulate(cmd, method, perturb)
		},
	}

	cmd.Flags().StringArrayVar(&perturbations, "perturb", nil,
		"Scale a species before the run, as name=factor (repeatable)")
	cmd.Flags().StringVar(&method, "method", "",
		"Override the solver method (dopri or rk4)")

	return cmd
}

func runSimulate(cmd *cobra.Command, method string, perturb map[string]float64) error {
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if method != "" {
		cfg.Solver.Method = method
	}

	var store ports.RunStore
	if cfg.Database.URL != "" {
		repo, err := postgres.Connect(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer repo.Close()
		store = repo
	}

	svc := app.NewSimulationService(
		app.NewApproximationService(logger),
		plot.NewRenderer(),
		excel.NewWriter(),
		report.NewRenderer(),
		store,
		cfg,
		logger,
	)

	result, err := svc.Run(cmd.Context(), app.SimulationRequest{
		Params:        kinetics.DefaultParams(),
		Perturbations: perturb,
	})
	if err != nil {
		logger.Error("simulation failed [%s]: %v", errors.GetCode(err), err)
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !result.WithinTolBound {
		return errors.New(errors.CodeSolverError, "shadow species diverged beyond the acceptance bound")
	}
	return nil
}

func parsePerturbations(specs []string) (map[string]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(specs))
	for _, arg := range specs {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.InvalidInput("perturbation must be name=factor: " + arg)
		}
		factor, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.InvalidInput("invalid perturbation factor: " + arg)
		}
		out[name] = factor
	}
	return out, nil
}
