package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tumy/models"
	"tumy/store"
	"tumy/utils"
)

// WishlistHandler exposes the wishlist register.
type WishlistHandler struct {
	Catalog *store.Catalog
}

func NewWishlistHandler(cat *store.Catalog) *WishlistHandler {
	return &WishlistHandler{Catalog: cat}
}

func (h *WishlistHandler) respondWishlist(c *gin.Context) {
	sess := currentSession(c)
	ids := sess.Wishlist.IDs()
	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := h.Catalog.ServiceByID(id); ok {
			services = append(services, svc)
		}
	}
	c.JSON(http.StatusOK, gin.H{"serviceIds": ids, "services": services})
}

// Get returns the liked services.
func (h *WishlistHandler) Get(c *gin.Context) {
	h.respondWishlist(c)
}

// Toggle flips membership for one service.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, ok := h.Catalog.ServiceByID(input.ServiceID); !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", input.ServiceID)
		return
	}
	liked := currentSession(c).Wishlist.Toggle(input.ServiceID)
	c.JSON(http.StatusOK, gin.H{"serviceId": input.ServiceID, "liked": liked})
}
