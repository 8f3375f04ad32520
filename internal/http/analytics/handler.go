package analytics

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adityarp/duit/internal/analytics"
	"github.com/adityarp/duit/internal/auth"
)

// maxWindowMonths caps the chart and breakdown windows to keep a single
// request from scanning years of ledger.
const maxWindowMonths = 120

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/chart", h.chart)
	r.Get("/categories", h.categories)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	stats, err := h.svc.DashboardStats(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	months, err := monthsParam(r, 6)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := h.svc.ChartData(r.Context(), userID, months)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChartResponse(points)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	months, err := monthsParam(r, 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.CategoryExpenses(r.Context(), userID, months)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCategoryResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func monthsParam(r *http.Request, def int) (int, error) {
	s := r.URL.Query().Get("months")
	if s == "" {
		return def, nil
	}

	months, err := strconv.Atoi(s)
	if err != nil || months < 1 || months > maxWindowMonths {
		return 0, fmt.Errorf("months must be a whole number between 1 and %d", maxWindowMonths)
	}

	return months, nil
}
