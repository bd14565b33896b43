package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tumy/services/session"
	"tumy/store"
	"tumy/utils"
)

// ProfileHandler serves the profile view: user details, booking history and
// loyalty rewards.
type ProfileHandler struct {
	Manager  *session.Manager
	Bookings *store.Bookings
}

func NewProfileHandler(mgr *session.Manager, bookings *store.Bookings) *ProfileHandler {
	return &ProfileHandler{Manager: mgr, Bookings: bookings}
}

// Get returns the session user's profile and their booking history.
func (h *ProfileHandler) Get(c *gin.Context) {
	sess := currentSession(c)
	user := sess.User()
	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"bookings": h.Bookings.ForUser(user.ID),
	})
}

// Update edits the user's name and location. The edit is relayed immediately
// and applied after the simulated save latency; the response echoes the
// still-current profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess := currentSession(c)
	h.Manager.UpdateProfile(sess, input.Name, input.Location)
	c.JSON(http.StatusOK, gin.H{"saving": true, "user": sess.User()})
}

// Rewards returns loyalty progress toward the next tier.
func (h *ProfileHandler) Rewards(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{"rewards": h.Manager.Rewards(sess)})
}
