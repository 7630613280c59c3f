// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

import (
	"slices"

	"github.com/tomtom215/igrmap/internal/models"
)

// Default axis selections, as indexes into AxisOptions.
const (
	DefaultXIndex = 1
	DefaultYIndex = 3
)

// Line chart labels.
const (
	LineChartTitle = "Moyenne IGRM par date"
	LineXTitle     = "Date"
	LineYTitle     = "Moyenne IGRM (%)"
)

// AxisOptions are the columns offered by the scatter axis selectors.
func AxisOptions() []string {
	return slices.Clone(models.AllDataColumns)
}

// filteredValue returns the value of col in r. ok is false when the
// projection does not carry col.
func filteredValue(r *models.FilteredRecord, col string) (v interface{}, ok bool) {
	switch col {
	case models.FieldID:
		return r.ID, true
	case models.FieldDate:
		return r.Date, true
	case models.FieldNom:
		return r.NomOfficielDepartement, true
	case models.FieldCode:
		return r.CodeOfficielDepartement, true
	case models.FieldIGRM:
		if r.IGRM == nil {
			return nil, true
		}
		return *r.IGRM, true
	default:
		return nil, false
	}
}

// Trace is one Plotly trace.
type Trace struct {
	Type string        `json:"type"`
	Mode string        `json:"mode"`
	Name string        `json:"name,omitempty"`
	X    []interface{} `json:"x"`
	Y    []interface{} `json:"y"`
}

// Axis is a Plotly axis layout.
type Axis struct {
	Title string `json:"title"`
}

// Layout is the subset of the Plotly layout the dashboard sets.
type Layout struct {
	Title string `json:"title,omitempty"`
	XAxis Axis   `json:"xaxis"`
	YAxis Axis   `json:"yaxis"`
}

// Figure is a Plotly figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// ScatterChart is the user-configurable chart over the filtered dataset.
type ScatterChart struct {
	X, Y string

	// Missing lists selected columns the filtered dataset does not carry.
	Missing []string
	Figure  *Figure
}

// BuildScatter plots column y against column x for every filtered
// record. When either column is absent from the projection the figure is
// nil and Missing names the absent columns.
func BuildScatter(records []models.FilteredRecord, x, y string) ScatterChart {
	chart := ScatterChart{X: x, Y: y}

	probe := models.FilteredRecord{}
	for _, col := range []string{x, y} {
		if _, ok := filteredValue(&probe, col); !ok && !slices.Contains(chart.Missing, col) {
			chart.Missing = append(chart.Missing, col)
		}
	}
	if len(chart.Missing) > 0 {
		return chart
	}

	trace := Trace{
		Type: "scatter",
		Mode: "markers",
		X:    make([]interface{}, 0, len(records)),
		Y:    make([]interface{}, 0, len(records)),
	}
	for i := range records {
		xv, _ := filteredValue(&records[i], x)
		yv, _ := filteredValue(&records[i], y)
		trace.X = append(trace.X, xv)
		trace.Y = append(trace.Y, yv)
	}

	chart.Figure = &Figure{
		Data:   []Trace{trace},
		Layout: Layout{XAxis: Axis{Title: x}, YAxis: Axis{Title: y}},
	}
	return chart
}

// BuildLineChart draws igrm over date with one series per department
// name, in first-seen order. Values are plotted as stored, without
// averaging.
func BuildLineChart(records []models.Record) *Figure {
	fig := &Figure{
		Data: []Trace{},
		Layout: Layout{
			Title: LineChartTitle,
			XAxis: Axis{Title: LineXTitle},
			YAxis: Axis{Title: LineYTitle},
		},
	}

	index := make(map[string]int)
	for i := range records {
		r := &records[i]
		n, ok := index[r.NomOfficielDepartement]
		if !ok {
			n = len(fig.Data)
			index[r.NomOfficielDepartement] = n
			fig.Data = append(fig.Data, Trace{
				Type: "scatter",
				Mode: "lines",
				Name: r.NomOfficielDepartement,
				X:    []interface{}{},
				Y:    []interface{}{},
			})
		}

		var y interface{}
		if r.IGRM != nil {
			y = *r.IGRM
		}
		fig.Data[n].X = append(fig.Data[n].X, r.Date)
		fig.Data[n].Y = append(fig.Data[n].Y, y)
	}

	return fig
}
