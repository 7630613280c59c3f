// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/models"
)

//go:embed templates/index.html
var indexTemplate string

// PageTitle is the browser title of the dashboard.
const PageTitle = "IGRM en France"

// maxCellChars caps the rendered width of a geometry cell.
const maxCellChars = 80

// tableRow is one rendered table row.
type tableRow struct {
	Index int
	Cells []string
}

// legendView is a legend entry with its colour marked safe for CSS.
type legendView struct {
	Color template.CSS
	Label string
}

// pageData is everything the index template renders.
type pageData struct {
	PageTitle string

	AllDataError  string
	FilteredError string
	HasAllData    bool
	HasFiltered   bool

	Page      int
	Size      int
	PageCount int
	Columns   []string
	Rows      []tableRow

	AxisOptions []string
	X, Y        string
	Scatter     ScatterChart
	ScatterJSON template.JS

	LineJSON template.JS

	Map    config.MapConfig
	Legend struct {
		Title    string
		Subtitle string
		Entries  []legendView
	}
	MapJSON template.JS
}

func parseIndexTemplate() (*template.Template, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return tmpl, nil
}

// renderPage executes tmpl into a buffer so a template error never
// produces a half-written response.
func renderPage(tmpl *template.Template, data *pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// scriptJSON encodes v for inline use in a script element. The encoder
// escapes <, > and & so the payload cannot close the element.
func scriptJSON(v interface{}) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return scriptSafe(data), nil
}

// scriptSafe marks already HTML-escaped JSON for inline script use.
func scriptSafe(data []byte) template.JS {
	return template.JS(data) //nolint:gosec // HTML-escaped JSON
}

func (p *pageData) setLegend(l Legend) {
	p.Legend.Title = l.Title
	p.Legend.Subtitle = l.Subtitle
	p.Legend.Entries = make([]legendView, len(l.Entries))
	for i, e := range l.Entries {
		p.Legend.Entries[i] = legendView{Color: template.CSS(e.Color), Label: e.Label} //nolint:gosec // fixed palette
	}
}

// buildRows renders the records of one page. Index is the row position in
// the full dataset.
func buildRows(records []models.Record, offset int) []tableRow {
	rows := make([]tableRow, len(records))
	for i := range records {
		r := &records[i]
		rows[i] = tableRow{
			Index: offset + i,
			Cells: []string{
				r.NomOfficielDepartement,
				r.CodeOfficielDepartement,
				r.Date,
				formatCellIGRM(r.IGRM),
				formatCellGeom(r),
				formatCellCentroid(r.Centroid),
			},
		}
	}
	return rows
}

func formatCellIGRM(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatCellGeom(r *models.Record) string {
	if !r.HasGeometry() {
		return ""
	}
	return truncate(string(r.Geom), maxCellChars)
}

func formatCellCentroid(c *models.Centroid) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("{lon: %s, lat: %s}", formatFloat(c.Lon), formatFloat(c.Lat))
}
