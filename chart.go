package focusbench

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// RenderCliffChart renders the variance-explosion chart as PNG: variance
// factor against stiffness ratio on a log scale, with the cliff marked. The
// discontinuity at k = 0.81 appears as the vertical jump it is.
func RenderCliffChart(w io.Writer) error {
	points, err := SweepVariance(DefaultSweepConfig())
	if err != nil {
		return err
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.K
		ys[i] = p.VarianceFactor
	}

	graph := chart.Chart{
		Title:  "Variance Explosion at the Stiffness Cliff",
		Width:  1200,
		Height: 700,
		XAxis: chart.XAxis{
			Name: "azimuthal stiffness ratio k",
		},
		YAxis: chart.YAxis{
			Name:  "variance factor",
			Range: &chart.LogarithmicRange{},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "variance factor",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.5,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("cliff (k = %.2f)", CliffRatio),
				XValues: []float64{CliffRatio, CliffRatio},
				YValues: []float64{1, VarianceFactorCap},
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("stabilized operating point (k = %.2f)", StabilizedRatio),
				XValues: []float64{StabilizedRatio, StabilizedRatio},
				YValues: []float64{1, 2},
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// RenderFocusDriftChart renders effective warpage against thermal load for
// one profile, with the focus budget as a horizontal reference. PNG output.
func RenderFocusDriftChart(profile MachineProfile, minW, maxW float64, w io.Writer) error {
	step := (maxW - minW) / 200
	if step <= 0 {
		return &DomainError{Quantity: "load range", Value: maxW - minW,
			Constraint: "max > min"}
	}

	points, err := SweepLoad(profile, minW, maxW, step)
	if err != nil {
		return err
	}

	xs := make([]float64, len(points))
	drift := make([]float64, len(points))
	budget := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.LoadWatts
		drift[i] = p.Analysis.EffectiveWarpageNM
		budget[i] = profile.FocusBudgetNM
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Focus Drift vs Thermal Load: %s", profile.Name),
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			Name: "thermal load [W]",
		},
		YAxis: chart.YAxis{
			Name: "effective warpage [nm]",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "effective warpage",
				XValues: xs,
				YValues: drift,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2.5,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("focus budget (%.0f nm)", profile.FocusBudgetNM),
				XValues: xs,
				YValues: budget,
				Style: chart.Style{
					StrokeColor:     chart.ColorBlack,
					StrokeWidth:     2,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
