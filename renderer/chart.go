package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jbury/stockfolio"
)

// YearChart renders a PNG of the last year of daily closes (blue line,
// primary axis) and volumes (gray line, secondary axis) for one ticker.
// Returns raw PNG bytes.
func YearChart(ticker string, series []stockfolio.SeriesPoint) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 data points for %s, got %d", ticker, len(series))
	}

	xValues := make([]time.Time, len(series))
	closeY := make([]float64, len(series))
	volumeY := make([]float64, len(series))
	for i, p := range series {
		xValues[i] = p.Date.Time()
		closeY[i], _ = p.Close.Decimal().Float64()
		volumeY[i] = float64(p.Volume)
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: closeY,
	}
	volumeSeries := chart.TimeSeries{
		Name: "Volume",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("9ca3af"),
			StrokeWidth: 1.0,
		},
		YAxis:   chart.YAxisSecondary,
		XValues: xValues,
		YValues: volumeY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s, last year", ticker),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Close",
		},
		YAxisSecondary: chart.YAxis{
			Name: "Volume",
		},
		Series: []chart.Series{closeSeries, volumeSeries},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
