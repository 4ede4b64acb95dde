// Package plot renders the trajectory comparison chart: each Hill-based
// species as a solid line, its power-law shadow as a dashed line in the
// same color.
package plot

import (
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gokinet/domain/kinetics"
	"gokinet/internal/solve"
	"gokinet/ports"
)

// Renderer renders comparison plots to PNG files.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a plot renderer with default dimensions.
func NewRenderer() ports.TrajectoryPlotter {
	return &Renderer{width: 1280, height: 720}
}

var pairColors = []drawing.Color{
	chart.ColorRed,
	chart.ColorBlue,
	chart.ColorGreen,
	{R: 255, G: 165, B: 0, A: 255}, // orange
}

// RenderComparison plots the four shadow pairs over time.
func (r *Renderer) RenderComparison(sol *solve.Solution, path string) error {
	var series []chart.Series
	for i, pair := range kinetics.ShadowPairs {
		shadow, original := pair[0], pair[1]
		color := pairColors[i%len(pairColors)]

		ts, orig := sol.Column(original)
		series = append(series, chart.ContinuousSeries{
			Name:    kinetics.SpeciesName(original),
			XValues: ts,
			YValues: orig,
			Style:   chart.Style{StrokeColor: color, StrokeWidth: 2.0},
		})

		ts, appr := sol.Column(shadow)
		series = append(series, chart.ContinuousSeries{
			Name:    kinetics.SpeciesName(shadow),
			XValues: ts,
			YValues: appr,
			Style: chart.Style{
				StrokeColor:     color,
				StrokeWidth:     2.0,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	graph := chart.Chart{
		Title:  "Hill kinetics vs power-law approximation",
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:  "time (min)",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "concentration (mol/L)",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
