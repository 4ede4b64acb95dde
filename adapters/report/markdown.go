// Package report renders the run report: a markdown summary of the fit,
// the fidelity metrics and the run manifest, converted to a standalone
// HTML page.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gokinet/domain/kinetics"
	"gokinet/ports"
)

// Renderer renders run reports as HTML.
type Renderer struct{}

// NewRenderer creates a report renderer.
func NewRenderer() ports.ReportRenderer {
	return &Renderer{}
}

// Render writes the HTML report for one run.
func (r *Renderer) Render(data ports.ReportData, path string) error {
	md := buildMarkdown(data)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "Power-law approximation report",
	})
	out := markdown.Render(doc, renderer)

	return os.WriteFile(path, out, 0o644)
}

func buildMarkdown(data ports.ReportData) string {
	var b strings.Builder

	b.WriteString("# Power-law approximation report\n\n")

	m := data.Manifest
	b.WriteString("## Run\n\n")
	fmt.Fprintf(&b, "- Run ID: `%s`\n", m.RunID)
	fmt.Fprintf(&b, "- Method: %s\n", m.Method)
	fmt.Fprintf(&b, "- Horizon: [%g, %g] min, step %g, abs tolerance %g\n",
		m.TStart, m.TEnd, m.StepSize, m.AbsTolerance)
	fmt.Fprintf(&b, "- Parameter fingerprint: `%s`\n", m.ParamsHash)
	fmt.Fprintf(&b, "- Version: %s\n\n", m.CodeVersion)

	b.WriteString("## Fitted power-law forms\n\n")
	b.WriteString("| Reaction | Hill exponent | Linear exponent | Rate constant | Rate at point |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, a := range data.Approximations {
		fmt.Fprintf(&b, "| %s | %.6g | %.6g | %.6g | %.6g |\n",
			a.Reaction, a.ExponentHill, a.ExponentLinear, a.RateConstant, a.RateAtPoint)
	}
	b.WriteString("\n")

	b.WriteString("## Shadow fidelity\n\n")
	b.WriteString("| Original | Shadow | Max rel diff | Mean rel diff | P95 | Final | RMSE | Correlation |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, f := range data.Fidelity {
		fmt.Fprintf(&b, "| %s | %s | %.3g | %.3g | %.3g | %.3g | %.3g | %.6f |\n",
			f.Original, f.Shadow, f.MaxRelDiff, f.MeanRelDiff, f.P95RelDiff,
			f.FinalRelDiff, f.RMSE, f.Correlation)
	}
	b.WriteString("\n")

	b.WriteString("## Final state of compared species\n\n")
	b.WriteString("| Species | Concentration (mol/L) |\n")
	b.WriteString("|---|---|\n")
	for _, pair := range kinetics.ShadowPairs {
		for _, idx := range []int{pair[1], pair[0]} {
			fmt.Fprintf(&b, "| %s | %.6g |\n", kinetics.SpeciesName(idx), data.Final[idx])
		}
	}
	b.WriteString("\n")

	b.WriteString("## Artifacts\n\n")
	fmt.Fprintf(&b, "- Comparison plot: [%s](%s)\n", data.PlotFile, data.PlotFile)
	fmt.Fprintf(&b, "- Trajectory workbook: [%s](%s)\n", data.ExcelFile, data.ExcelFile)

	return b.String()
}
