package analytics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

// Handler exposes the analytics page over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the page endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.page)
	r.Get("/stock-history/{id}", h.stockHistory)
	r.Get("/predictions/{id}", h.prediction)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	rangeDays, _ := strconv.Atoi(r.URL.Query().Get("range"))
	view, err := h.service.Load(r.Context(), rangeDays)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) stockHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	history := h.service.StockHistory(r.Context(), id, days)
	httpx.JSON(w, http.StatusOK, map[string]any{"history": history})
}

func (h *Handler) prediction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	prediction, err := h.service.Prediction(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, prediction)
}
