package handler

import (
	"net/http"
	"time"

	"github.com/ybenali/rental-service/internal/reports"
)

// Dashboard returns the fleet and financial rollup
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// DashboardExport returns the rollup as an XML report
func (h *Handler) DashboardExport(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard()
	if err != nil {
		respondError(w, err)
		return
	}

	out, err := reports.DashboardXML(d, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write(out)
}
