package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tumy/services/concierge"
	"tumy/services/session"
	"tumy/store"
	"tumy/utils"
)

// defaultRecommendHint seeds the persuasion prompt when the client gives no
// context of its own.
const defaultRecommendHint = "User is feeling energetic and wants to upgrade their car."

// ConciergeHandler exposes the AI chat transcript and the one-shot
// recommendation endpoint.
type ConciergeHandler struct {
	Concierge *concierge.Service
	Catalog   *store.Catalog
}

func NewConciergeHandler(svc *concierge.Service, cat *store.Catalog) *ConciergeHandler {
	return &ConciergeHandler{Concierge: svc, Catalog: cat}
}

// GetTranscript returns the conversation so far.
func (h *ConciergeHandler) GetTranscript(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": currentSession(c).Chat.Messages()})
}

// SendMessage appends a user message and returns the concierge reply. A send
// while the previous reply is still pending is refused with 409.
func (h *ConciergeHandler) SendMessage(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess := currentSession(c)
	reply, err := sess.Chat.Send(c.Request.Context(), h.Concierge, sess.User(), input.Message)
	if err != nil {
		if errors.Is(err, session.ErrReplyPending) {
			utils.JSONError(c, http.StatusConflict, "reply pending", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "chat failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply, "messages": sess.Chat.Messages()})
}

// Recommend produces a single persuasive nudge for the session user. It never
// fails; the concierge degrades to canned copy when the model is unavailable.
func (h *ConciergeHandler) Recommend(c *gin.Context) {
	var input struct {
		Hint string `json:"hint"`
	}
	// Body is optional.
	_ = c.ShouldBindJSON(&input)
	if input.Hint == "" {
		input.Hint = defaultRecommendHint
	}
	sess := currentSession(c)
	text := h.Concierge.Recommend(c.Request.Context(), sess.User(), h.Catalog.Services(), input.Hint)
	c.JSON(http.StatusOK, gin.H{"recommendation": text})
}
