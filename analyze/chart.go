package analyze

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteChart renders a report's per-frame IoU as a PNG line chart. It is
// an optional diagnostic, not needed for the round-trip behavior spec.md
// §6.5 specifies.
func WriteChart(report Report, path string) error {
	p := plot.New()
	p.Title.Text = "IoU over frames"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "IoU"

	points := make(plotter.XYs, len(report.IoUs))
	for i, v := range report.IoUs {
		points[i].X = float64(i)
		points[i].Y = v
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("analyze: building chart line: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("analyze: saving chart to %s: %w", path, err)
	}
	return nil
}
