package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tumy/services/catalog"
	"tumy/store"
	"tumy/utils"
)

// CatalogHandler serves the service/product catalog and the filter/search
// surface.
type CatalogHandler struct {
	Catalog  *store.Catalog
	Searcher *catalog.Searcher
}

func NewCatalogHandler(cat *store.Catalog, searcher *catalog.Searcher) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Searcher: searcher}
}

func (h *CatalogHandler) respondServices(c *gin.Context) {
	sess := currentSession(c)
	selected, query, aiMatch := sess.Browse.Filters()
	services := catalog.Filter(h.Catalog.Services(), selected, query, aiMatch)
	c.JSON(http.StatusOK, gin.H{
		"services":           services,
		"selectedCategories": selected,
		"query":              query,
		"aiSearchActive":     aiMatch != nil,
	})
}

// ListServices returns the visible subset of the service catalog under the
// session's current filters.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	h.respondServices(c)
}

// ToggleCategory flips one category chip in the session's selection.
func (h *CatalogHandler) ToggleCategory(c *gin.Context) {
	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	currentSession(c).Browse.ToggleCategory(input.Category)
	h.respondServices(c)
}

// Search applies a free-text query. Natural-language queries (more than two
// tokens) are resolved through the semantic-match collaborator; shorter
// queries fall back to plain substring filtering.
func (h *CatalogHandler) Search(c *gin.Context) {
	var input struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess := currentSession(c)
	ids := h.Searcher.Search(c.Request.Context(), input.Query, h.Catalog.Services())
	sess.Browse.SetQuery(input.Query, ids)
	h.respondServices(c)
}

// ClearSearch drops the query and any semantic-match results.
func (h *CatalogHandler) ClearSearch(c *gin.Context) {
	currentSession(c).Browse.Clear()
	h.respondServices(c)
}

// ListProducts returns the marketplace inventory.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.Products()})
}

// ListProviders returns the provider roster.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.Catalog.Providers()})
}

// GetProvider returns one provider's public profile.
func (h *CatalogHandler) GetProvider(c *gin.Context) {
	provider, ok := h.Catalog.ProviderByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "provider not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}

// ListReviews returns the review feed shown on service detail pages.
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": h.Catalog.Reviews()})
}
