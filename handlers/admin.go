package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tumy/config"
	"tumy/store"
	"tumy/utils"
)

// adminTokenTTL bounds how long a back-office login stays valid.
const adminTokenTTL = 12 * time.Hour

// AdminHandler is the back-office mutation surface: catalog additions and
// booking status management, gated by an access key exchanged for a JWT.
type AdminHandler struct {
	Catalog  *store.Catalog
	Bookings *store.Bookings
}

func NewAdminHandler(cat *store.Catalog, bookings *store.Bookings) *AdminHandler {
	return &AdminHandler{Catalog: cat, Bookings: bookings}
}

// Login exchanges the shared access key for a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		AccessKey string `json:"accessKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.AccessKey != config.AppConfig.AdminAccessKey {
		utils.JSONError(c, http.StatusUnauthorized, "invalid access key", "")
		return
	}
	token, err := utils.GenerateAdminToken("admin", adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// AddService publishes a new service. All fields are optional; missing ones
// are filled with catalog defaults.
func (h *AdminHandler) AddService(c *gin.Context) {
	var input store.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc := h.Catalog.AddService(input)
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// AddProduct publishes a new product with defaults for missing fields.
func (h *AdminHandler) AddProduct(c *gin.Context) {
	var input store.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	prod := h.Catalog.AddProduct(input)
	c.JSON(http.StatusCreated, gin.H{"product": prod})
}

// ListBookings returns the full booking ledger across all users.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Bookings.All()})
}

// CycleBooking advances a booking's status one step through the managed
// cycle. Terminal and in-flight statuses are left untouched.
func (h *AdminHandler) CycleBooking(c *gin.Context) {
	booking, ok := h.Bookings.CycleStatus(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
