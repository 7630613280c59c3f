// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
	"github.com/tomtom215/igrmap/internal/validation"
)

// PageRequest holds the dashboard widgets sent as query parameters.
type PageRequest struct {
	Page int    `query:"page" validate:"min=1"`
	Size int    `query:"size" validate:"min=1"`
	X    string `query:"x" validate:"column"`
	Y    string `query:"y" validate:"column"`
}

// Handler renders the dashboard page.
type Handler struct {
	source DataSource
	cfg    *config.DashboardConfig
	mapCfg *config.MapConfig
	tmpl   *template.Template
}

// NewHandler creates a dashboard handler reading from source.
func NewHandler(source DataSource, cfg *config.DashboardConfig, mapCfg *config.MapConfig) (*Handler, error) {
	tmpl, err := parseIndexTemplate()
	if err != nil {
		return nil, err
	}
	return &Handler{
		source: source,
		cfg:    cfg,
		mapCfg: mapCfg,
		tmpl:   tmpl,
	}, nil
}

// parsePageRequest reads and validates the widgets. Absent values take
// their defaults.
func (h *Handler) parsePageRequest(r *http.Request) (*PageRequest, *validation.RequestValidationError) {
	options := AxisOptions()
	req := &PageRequest{
		Page: 1,
		Size: h.cfg.DefaultPageSize,
		X:    options[DefaultXIndex],
		Y:    options[DefaultYIndex],
	}

	q := r.URL.Query()
	for _, p := range []struct {
		key  string
		dest *int
	}{{"page", &req.Page}, {"size", &req.Size}} {
		raw := strings.TrimSpace(q.Get(p.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, validation.NewParseError(p.key, raw, "integer")
		}
		*p.dest = v
	}
	if x := q.Get("x"); x != "" {
		req.X = x
	}
	if y := q.Get("y"); y != "" {
		req.Y = y
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

// Index renders the dashboard.
//
// Query parameters:
//   - page: table page, 1-indexed (default 1)
//   - size: table rows per page (default from config)
//   - x, y: scatter chart columns
//
// The two datasets are fetched one after the other. A failed fetch is
// shown inline and the views depending on that dataset are left out.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.Ctx(ctx)

	req, verr := h.parsePageRequest(r)
	if verr != nil {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}

	data := &pageData{
		PageTitle:   PageTitle,
		Page:        req.Page,
		Size:        req.Size,
		Columns:     models.AllDataColumns,
		AxisOptions: AxisOptions(),
		X:           req.X,
		Y:           req.Y,
		Map:         *h.mapCfg,
	}
	status := "complete"

	allData, err := h.source.FetchAllData(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("All-data fetch failed")
		data.AllDataError = fetchErrorMessage(AllDataPath, err)
		status = "partial"
	} else if err := h.fillAllDataViews(data, allData, req); err != nil {
		log.Error().Err(err).Msg("Failed to build all-data views")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filtered, err := h.source.FetchFiltered(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Filtered fetch failed")
		data.FilteredError = fetchErrorMessage(FilteredPath, err)
		status = "partial"
	} else if err := fillScatterView(data, filtered, req); err != nil {
		log.Error().Err(err).Msg("Failed to build scatter chart")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body, err := renderPage(h.tmpl, data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.DashboardRenders.WithLabelValues(status).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) fillAllDataViews(data *pageData, records []models.Record, req *PageRequest) error {
	data.HasAllData = true
	data.PageCount = PageCount(len(records), req.Size)
	start, _ := pageBounds(len(records), req.Page, req.Size)
	data.Rows = buildRows(Paginate(records, req.Page, req.Size), start)

	line, err := scriptJSON(BuildLineChart(records))
	if err != nil {
		return fmt.Errorf("failed to encode line chart: %w", err)
	}
	data.LineJSON = line

	features, err := marshalFeatures(BuildFeatures(records, h.mapCfg.ShowUnclassified))
	if err != nil {
		return err
	}
	data.MapJSON = scriptSafe(features)
	data.setLegend(NewLegend(h.mapCfg.ShowUnclassified))
	return nil
}

func fillScatterView(data *pageData, records []models.FilteredRecord, req *PageRequest) error {
	data.HasFiltered = true
	data.Scatter = BuildScatter(records, req.X, req.Y)
	if data.Scatter.Figure == nil {
		return nil
	}

	scatter, err := scriptJSON(data.Scatter.Figure)
	if err != nil {
		return fmt.Errorf("failed to encode scatter chart: %w", err)
	}
	data.ScatterJSON = scatter
	return nil
}

// fetchErrorMessage is the inline text for a failed fetch.
func fetchErrorMessage(endpoint string, err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return (&FetchError{Endpoint: endpoint, Err: err}).Error()
}
