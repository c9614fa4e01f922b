package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ragavendra192/barani-report-system/internal/logger"
	"github.com/Ragavendra192/barani-report-system/internal/report"
	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

// Source hands out one connection per request.
type Source interface {
	Open(ctx context.Context) (*storage.Conn, error)
	Ping(ctx context.Context) error
}

type Handlers struct {
	source   Source
	reporter *report.Reporter
}

func NewHandlers(source Source, reporter *report.Reporter) *Handlers {
	return &Handlers{
		source:   source,
		reporter: reporter,
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// Home renders the landing page
// GET /
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, homePage(report.Kinds()))
}

// Report serves one report page. GET renders the empty form, POST runs the
// search or streams the spreadsheet depending on the action field.
// GET|POST /shift-report, /operator-report, /product-report
func (h *Handlers) Report(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		submitted := r.Method == http.MethodPost

		view := reportView{Kind: kind, Options: []string{}}
		action := report.ActionSearch
		if submitted {
			if err := r.ParseForm(); err != nil {
				renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "The submitted form could not be read."))
				return
			}
			view.Criteria = report.ParseCriteria(r.PostForm)
			action = report.ParseAction(r.PostForm.Get(report.FieldAction))
		}

		// the shift form has fixed choices, so an unsubmitted shift page needs no connection
		if !submitted && !kind.HasDimension() {
			renderHTML(w, http.StatusOK, reportPage(view))
			return
		}

		conn, err := h.source.Open(ctx)
		if err != nil {
			h.fail(r, kind, "Data source unavailable", err)
			view.Error = userMessage(err)
			renderHTML(w, http.StatusOK, reportPage(view))
			return
		}
		defer conn.Close()

		if submitted && action == report.ActionExcel {
			art, err := h.reporter.Export(ctx, conn, kind, view.Criteria)
			if err == nil {
				defer h.removeArtifact(art)
				err = sendArtifact(w, r, art)
				if err == nil {
					logger.Info("Report exported", "report", kind.Name, "file", art.Name, "request_id", RequestIDFromContext(ctx))
					return
				}
			}
			h.fail(r, kind, "Report export failed", err)
			view.Error = userMessage(err)
		}

		if kind.HasDimension() {
			values, err := h.reporter.Dimension(ctx, conn, kind)
			view.Options = values
			if err != nil {
				h.fail(r, kind, "Failed to load filter values", err)
				if view.Error == "" {
					view.Error = userMessage(err)
				}
			}
		}

		if submitted && action == report.ActionSearch {
			res, err := h.reporter.Search(ctx, conn, kind, view.Criteria)
			if err != nil {
				h.fail(r, kind, "Report query failed", err)
				view.Error = userMessage(err)
			} else {
				view.Result = res
			}
		}

		renderHTML(w, http.StatusOK, reportPage(view))
	}
}

// Health reports whether the data source answers
// GET /healthz
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		logger.Warn("Health check failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Dimensions returns the filter choices of a report
// GET /api/dimensions/{kind}
func (h *Handlers) Dimensions(w http.ResponseWriter, r *http.Request) {
	kind, ok := report.KindByName(chi.URLParam(r, "kind"))
	if !ok || !kind.HasDimension() {
		h.writeError(w, http.StatusNotFound, "unknown report dimension")
		return
	}

	conn, err := h.source.Open(r.Context())
	if err != nil {
		h.fail(r, kind, "Data source unavailable", err)
		h.writeError(w, http.StatusBadGateway, userMessage(err))
		return
	}
	defer conn.Close()

	values, err := h.reporter.Dimension(r.Context(), conn, kind)
	if err != nil {
		h.fail(r, kind, "Failed to load filter values", err)
		h.writeError(w, http.StatusBadGateway, userMessage(err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"kind":   kind.Name,
		"values": values,
	})
}

func (h *Handlers) fail(r *http.Request, kind report.Kind, msg string, err error) {
	logger.Failure(msg, err, "report", kind.Name, "request_id", RequestIDFromContext(r.Context()))
}

func (h *Handlers) removeArtifact(art *report.Artifact) {
	if err := art.Remove(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to remove export file", "path", art.Path, "error", err)
	}
}

// sendArtifact streams the exported file as an attachment. Nothing is
// written to w if the file cannot be opened.
func sendArtifact(w http.ResponseWriter, r *http.Request, art *report.Artifact) error {
	f, err := os.Open(art.Path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", report.ErrExportFailed, art.Name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", report.ErrExportFailed, art.Name, err)
	}

	w.Header().Set("Content-Type", report.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Name))
	http.ServeContent(w, r, art.Name, info.ModTime(), f)
	return nil
}

// userMessage turns an error into the text shown on the page.
func userMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrUnreachable):
		return "Cannot connect to the database. Check that the server is running and try again."
	case errors.Is(err, report.ErrQueryFailed):
		return "The report query failed. Check the filters and try again."
	case errors.Is(err, report.ErrExportFailed):
		return "The Excel file could not be created. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
