package config

import (
	"os"
	"strconv"

	"gokinet/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Solver   SolverConfig
	Output   OutputConfig
	Database DatabaseConfig
}

// SolverConfig holds the integration settings. The documented defaults
// (abs tolerance 1e-3, step 0.01, horizon [0,100]) reproduce the original
// analysis; the horizon used to derive the operating point was longer.
type SolverConfig struct {
	AbsTolerance float64
	StepSize     float64
	TStart       float64
	TEnd         float64
	MaxSteps     int
	Method       string // "dopri" or "rk4"
}

// OutputConfig holds file system paths for run artifacts
type OutputConfig struct {
	Dir       string
	PlotFile  string
	ExcelFile string
	HTMLFile  string
}

// DatabaseConfig holds the optional run-archive connection settings.
// The pipeline runs fully without a database; archiving activates only
// when URL is non-empty.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from the environment, with .env support
func Load() (*Config, error) {
	// Ignore missing .env; explicit env vars always win
	_ = godotenv.Load()

	cfg := &Config{
		Solver: SolverConfig{
			AbsTolerance: getEnvFloatOrDefault("SOLVER_ABS_TOL", 1e-3),
			StepSize:     getEnvFloatOrDefault("SOLVER_STEP", 0.01),
			TStart:       getEnvFloatOrDefault("SOLVER_T_START", 0),
			TEnd:         getEnvFloatOrDefault("SOLVER_T_END", 100),
			MaxSteps:     getEnvIntOrDefault("SOLVER_MAX_STEPS", 10_000_000),
			Method:       getEnvOrDefault("SOLVER_METHOD", "dopri"),
		},
		Output: OutputConfig{
			Dir:       getEnvOrDefault("OUTPUT_DIR", "out"),
			PlotFile:  getEnvOrDefault("PLOT_FILE", "comparison.png"),
			ExcelFile: getEnvOrDefault("EXCEL_FILE", "trajectories.xlsx"),
			HTMLFile:  getEnvOrDefault("HTML_FILE", "report.html"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Solver.AbsTolerance <= 0 {
		return errors.ConfigInvalid("solver tolerance must be positive")
	}
	if cfg.Solver.StepSize <= 0 {
		return errors.ConfigInvalid("solver step size must be positive")
	}
	if cfg.Solver.TEnd <= cfg.Solver.TStart {
		return errors.ConfigInvalid("solver horizon must end after it starts")
	}
	if cfg.Solver.Method != "dopri" && cfg.Solver.Method != "rk4" {
		return errors.ConfigInvalid("solver method must be dopri or rk4")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
