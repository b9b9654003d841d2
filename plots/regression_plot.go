package plots

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"weather-atlas/models"
	"weather-atlas/services"
)

// RegressionPlot renders a scatter of the variable against latitude with
// the fitted line and the equation/R² annotated, saved as PNG.
func RegressionPlot(records []*models.CityWeatherRecord, v services.Variable,
	hemisphere string, res models.RegressionResult, outDir string) (string, error) {

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("plots: create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs. Latitude (%s hemisphere)", v.Label(), hemisphere)
	p.X.Label.Text = "Latitude"
	p.Y.Label.Text = v.Label()

	pts := make(plotter.XYs, len(records))
	for i, r := range records {
		pts[i].X = r.Lat
		pts[i].Y = v.Value(r)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", fmt.Errorf("plots: scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Color = color.RGBA{B: 180, A: 255}

	fit := plotter.NewFunction(func(x float64) float64 {
		return res.Slope*x + res.Intercept
	})
	fit.Color = color.RGBA{R: 200, A: 255}
	fit.Width = vg.Points(1.5)

	p.Add(scatter, fit)
	p.Legend.Add(fmt.Sprintf("%s   R² = %.4f", services.Equation(res), res.R2), fit)
	p.Legend.Top = true

	name := fmt.Sprintf("%s_%s_vs_latitude.png", hemisphere, string(v))
	path := filepath.Join(outDir, name)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("plots: save %q: %w", path, err)
	}
	return path, nil
}
