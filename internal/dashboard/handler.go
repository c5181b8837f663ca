package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

// Handler exposes the dashboard page over HTTP.
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
	r.Post("/products", h.createProduct)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Load(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input backend.ProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	product, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}
