package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"tumy/models"
	"tumy/services/concierge"
)

// ErrReplyPending rejects a chat send while the previous reply is still
// outstanding; sends are strictly serialized.
var ErrReplyPending = errors.New("a concierge reply is still pending")

// Transcript is the append-only concierge conversation for one session.
type Transcript struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	busy     bool
}

func newTranscript(user models.UserProfile) *Transcript {
	return &Transcript{
		messages: []models.ChatMessage{{
			ID:        "welcome",
			Role:      models.RoleModel,
			Text:      "Hi " + user.FirstName() + "! I'm Tumy! 🌟 Ready to get things done today?",
			Timestamp: time.Now().UnixMilli(),
		}},
	}
}

// Messages returns the conversation in send order.
func (t *Transcript) Messages() []models.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Send appends the user's message, obtains the concierge reply, and appends
// it. The reply is returned. Concurrent sends are refused with
// ErrReplyPending so replies always land in request order.
func (t *Transcript) Send(ctx context.Context, svc *concierge.Service, user models.UserProfile, text string) (models.ChatMessage, error) {
	t.mu.Lock()
	if t.busy {
		t.mu.Unlock()
		return models.ChatMessage{}, ErrReplyPending
	}
	t.busy = true
	history := make([]models.ChatMessage, len(t.messages))
	copy(history, t.messages)
	t.messages = append(t.messages, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	})
	t.mu.Unlock()

	// The concierge never returns an error; failures degrade to fallback copy.
	replyText := svc.Chat(ctx, history, text, user)

	t.mu.Lock()
	defer t.mu.Unlock()
	reply := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleModel,
		Text:      replyText,
		Timestamp: time.Now().UnixMilli(),
	}
	t.messages = append(t.messages, reply)
	t.busy = false
	return reply, nil
}
