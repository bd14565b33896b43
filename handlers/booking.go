package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tumy/services/wizard"
	"tumy/store"
	"tumy/utils"
)

// BookingHandler exposes the booking wizard over HTTP. All state lives on
// the session's wizard; handlers translate requests and echo the snapshot.
type BookingHandler struct {
	Catalog *store.Catalog
}

func NewBookingHandler(cat *store.Catalog) *BookingHandler {
	return &BookingHandler{Catalog: cat}
}

func (h *BookingHandler) respondState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"booking": currentSession(c).Wizard.Snapshot()})
}

// GetState returns the wizard snapshot.
func (h *BookingHandler) GetState(c *gin.Context) {
	h.respondState(c)
}

// Open enters the detail step for a service.
func (h *BookingHandler) Open(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc, ok := h.Catalog.ServiceByID(input.ServiceID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", input.ServiceID)
		return
	}
	sess := currentSession(c)
	sess.Wizard.Open(svc, sess.User())
	h.respondState(c)
}

// Back returns from the detail step to browsing.
func (h *BookingHandler) Back(c *gin.Context) {
	currentSession(c).Wizard.Back()
	h.respondState(c)
}

// SelectDate picks a calendar day.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required"`
		Day   int `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	currentSession(c).Wizard.SelectDate(input.Year, time.Month(input.Month), input.Day)
	h.respondState(c)
}

// ChangeMonth pages the calendar view.
func (h *BookingHandler) ChangeMonth(c *gin.Context) {
	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	currentSession(c).Wizard.ChangeMonth(input.Delta)
	h.respondState(c)
}

// SelectSlot picks a time slot.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	currentSession(c).Wizard.SelectTimeSlot(input.Time)
	h.respondState(c)
}

// SetPickAndDrop toggles the pick-and-drop add-on and its addresses.
func (h *BookingHandler) SetPickAndDrop(c *gin.Context) {
	var input struct {
		Enabled        bool   `json:"enabled"`
		PickupAddress  string `json:"pickupAddress"`
		DropoffAddress string `json:"dropoffAddress"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w := currentSession(c).Wizard
	w.SetPickAndDrop(input.Enabled)
	if input.PickupAddress != "" || input.DropoffAddress != "" {
		w.SetAddresses(input.PickupAddress, input.DropoffAddress)
	}
	h.respondState(c)
}

// Confirm submits the booking. Validation failures surface as 400 with the
// user-facing message; a confirm without a time slot leaves the state
// untouched (the client disables the button).
func (h *BookingHandler) Confirm(c *gin.Context) {
	if err := currentSession(c).Wizard.Confirm(); err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
		return
	}
	h.respondState(c)
}

// Reset starts a fresh flow after a confirmation ("book another").
func (h *BookingHandler) Reset(c *gin.Context) {
	currentSession(c).Wizard.BookAnother()
	h.respondState(c)
}
