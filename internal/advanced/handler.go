package advanced

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

// Handler exposes the advanced analytics page over HTTP.
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
	r.Get("/products/{id}", h.insights)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	view, err := h.service.Load(r.Context(), days)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	insights, err := h.service.Insights(r.Context(), id, days)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, insights)
}
