package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/prefs"
)

// Handler exposes the settings page over HTTP.
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
	r.Patch("/preferences", h.updatePreferences)
	r.Post("/theme/toggle", h.toggleTheme)
	r.Get("/export.json", h.exportJSON)
	r.Get("/export.csv", h.exportCSV)
	r.Post("/cache/clear", h.clearCache)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Load(r.Context()))
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var partial prefs.Partial
	if err := httpx.DecodeJSON(r, &partial); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	merged, err := h.service.UpdatePreferences(r.Context(), partial)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, merged)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.ToggleTheme(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *Handler) exportJSON(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.ExportJSON(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.ExportCSV(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCache(r.Context()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
