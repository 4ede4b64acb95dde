// Package excel exports run trajectories and fidelity summaries to xlsx
// workbooks.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gokinet/domain/kinetics"
	"gokinet/internal/analysis"
	"gokinet/internal/solve"
	"gokinet/ports"
)

const (
	sheetTrajectories = "Trajectories"
	sheetFidelity     = "Fidelity"
)

// Writer exports trajectories to xlsx files.
type Writer struct{}

// NewWriter creates an xlsx trajectory exporter.
func NewWriter() ports.TrajectoryExporter {
	return &Writer{}
}

// Export writes the sampled trajectory and the fidelity summary. The
// trajectory sheet carries one row per sample with every species as a
// column; the fidelity sheet carries one row per shadow pair.
func (w *Writer) Export(sol *solve.Solution, fidelity []analysis.PairFidelity, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeTrajectories(f, sol); err != nil {
		return err
	}
	if err := w.writeFidelity(f, fidelity); err != nil {
		return err
	}

	// Drop the default sheet created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func (w *Writer) writeTrajectories(f *excelize.File, sol *solve.Solution) error {
	if _, err := f.NewSheet(sheetTrajectories); err != nil {
		return err
	}

	header := make([]interface{}, 0, kinetics.NumSpecies+1)
	header = append(header, "t")
	for i := 0; i < kinetics.NumSpecies; i++ {
		header = append(header, kinetics.SpeciesName(i))
	}
	if err := f.SetSheetRow(sheetTrajectories, "A1", &header); err != nil {
		return err
	}

	for rowIdx, sample := range sol.Samples {
		row := make([]interface{}, 0, len(sample.Y)+1)
		row = append(row, sample.T)
		for _, v := range sample.Y {
			row = append(row, v)
		}
		cell := fmt.Sprintf("A%d", rowIdx+2)
		if err := f.SetSheetRow(sheetTrajectories, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFidelity(f *excelize.File, fidelity []analysis.PairFidelity) error {
	if _, err := f.NewSheet(sheetFidelity); err != nil {
		return err
	}

	header := []interface{}{
		"original", "shadow", "max_rel_diff", "mean_rel_diff",
		"p95_rel_diff", "final_rel_diff", "rmse", "correlation",
	}
	if err := f.SetSheetRow(sheetFidelity, "A1", &header); err != nil {
		return err
	}

	for i, p := range fidelity {
		row := []interface{}{
			p.Original, p.Shadow, p.MaxRelDiff, p.MeanRelDiff,
			p.P95RelDiff, p.FinalRelDiff, p.RMSE, p.Correlation,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetFidelity, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
