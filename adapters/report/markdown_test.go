package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokinet/domain/kinetics"
	"gokinet/domain/powerlaw"
	"gokinet/domain/run"
	"gokinet/internal/analysis"
	"gokinet/ports"
)

func sampleReportData() ports.ReportData {
	return ports.ReportData{
		Manifest: run.NewManifest("dopri", 1e-3, 0.01, 0, 100, kinetics.DefaultParams(), "0.1.0"),
		Approximations: []powerlaw.Approximation{
			{Reaction: "v29", ExponentHill: 0.8256, ExponentLinear: 1.0, RateConstant: 1.1265, RateAtPoint: 21.2},
			{Reaction: "v33", ExponentHill: 0.9716, ExponentLinear: 1.0, RateConstant: 2.63e-05, RateAtPoint: 0.175},
		},
		Final: kinetics.OperatingPoint(),
		Fidelity: []analysis.PairFidelity{
			{Original: "AS160", Shadow: "AS160_pl", MaxRelDiff: 6e-05, Correlation: 1.0},
		},
		PlotFile:  "comparison.png",
		ExcelFile: "trajectories.xlsx",
	}
}

func TestBuildMarkdownContent(t *testing.T) {
	md := buildMarkdown(sampleReportData())

	assert.Contains(t, md, "# Power-law approximation report")
	assert.Contains(t, md, "v29")
	assert.Contains(t, md, "v33")
	assert.Contains(t, md, "AS160_pl")
	assert.Contains(t, md, "comparison.png")
	assert.Contains(t, md, "trajectories.xlsx")
	assert.Contains(t, md, "Method: dopri")
}

func TestRenderWritesCompleteHTMLPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, NewRenderer().Render(sampleReportData(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(raw)

	assert.True(t, strings.Contains(html, "<html"))
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "AS160_pl")
}
