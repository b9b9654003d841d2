package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"weather-atlas/models"
)

// HotelMap renders an interactive scatter map of the cities, sized and
// colored by humidity, with the hotel name shown in the hover tooltip.
// The chart is written as a standalone HTML file.
func HotelMap(records []*models.HotelRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("render: create output dir: %w", err)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Hotel Map",
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Hotels in cities with ideal weather",
			Subtitle: "Point size and color follow humidity",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Type: "value", Min: -180, Max: 180}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Type: "value", Min: -90, Max: 90}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item", Formatter: "{b}"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        100,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	data := make([]opts.ScatterData, 0, len(records))
	for _, r := range records {
		data = append(data, opts.ScatterData{
			Name:       fmt.Sprintf("%s, %s — %s (humidity %d%%)", r.City, r.Country, r.HotelName, r.Humidity),
			Value:      []interface{}{r.Lng, r.Lat, r.Humidity},
			SymbolSize: symbolSize(r.Humidity),
		})
	}
	scatter.AddSeries("cities", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create map file %q: %w", path, err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render: render map: %w", err)
	}
	return nil
}

// symbolSize scales humidity (0–100) into a readable marker size.
func symbolSize(humidity int) int {
	size := 4 + humidity/5
	if size > 24 {
		size = 24
	}
	return size
}
