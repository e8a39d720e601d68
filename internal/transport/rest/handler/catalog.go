package handler

import (
	"net/http"

	"github.com/phanindra-max/FrameworkLens/internal/catalog"
)

// CatalogHandler serves the read-only question catalog to the
// presentation layer
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Get handles GET /v1/catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"frameworks": h.catalog.Frameworks(),
	})
}

// Areas handles GET /v1/catalog/areas
func (h *CatalogHandler) Areas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"areas": h.catalog.AllAreas(),
	})
}
