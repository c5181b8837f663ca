package scanner

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

// Handler exposes the scanner page over HTTP.
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
	r.Post("/scan", h.scan)
	r.Post("/quick-sale", h.quickSale)
	r.Post("/generate", h.generate)
	r.Get("/inventory-check/{code}", h.inventoryCheck)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"recent_scans": h.service.Recent()})
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Barcode string `json:"barcode"`
	}
	if err := httpx.DecodeJSON(r, &input); err != nil || input.Barcode == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "barcode is required")
		return
	}
	result, err := h.service.Scan(r.Context(), input.Barcode)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) quickSale(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	barcode := q.Get("barcode")
	if barcode == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "barcode is required")
		return
	}
	quantity, err := strconv.Atoi(q.Get("quantity"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "quantity must be numeric")
		return
	}
	outcome, err := h.service.QuickSale(r.Context(), barcode, quantity)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, outcome)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID int64 `json:"product_id"`
	}
	if err := httpx.DecodeJSON(r, &input); err != nil || input.ProductID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "product_id is required")
		return
	}
	generated, err := h.service.Generate(r.Context(), input.ProductID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, generated)
}

func (h *Handler) inventoryCheck(w http.ResponseWriter, r *http.Request) {
	check, err := h.service.InventoryCheck(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, check)
}
