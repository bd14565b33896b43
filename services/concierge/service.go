// Package concierge wraps the generative-language collaborator behind three
// operations: a one-shot recommendation hook, the concierge chat, and
// natural-language service matching. Every failure path degrades to a fixed
// fallback; nothing here returns an error to its caller.
package concierge

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"tumy/models"
	"tumy/utils"
)

// Fallback copy used when the collaborator is unavailable or misbehaves.
const (
	FallbackNoCredentials = "Tumy is calculating your next level of success..."
	FallbackRecommendErr  = "Invest in yourself. Book a premium service today."
	FallbackRecommendZero = "Upgrade your lifestyle today. You deserve the best."
	FallbackChatErr       = "I'm having trouble reaching the cloud. Check your connection!"
	FallbackChatZero      = "Oops! My brain froze for a second. Can you say that again?"
)

// Service exposes the concierge operations. A nil generator (missing
// credentials) short-circuits every call to its fallback.
type Service struct {
	gen    Generator
	logger *zap.Logger
}

// NewService builds a Service backed by Gemini. With an empty API key, or if
// the client cannot be constructed, the service runs in fallback-only mode.
func NewService(apiKey string) *Service {
	logger := utils.GetLogger()
	if apiKey == "" {
		logger.Warn("concierge: no API key configured, running in fallback mode")
		return &Service{logger: logger}
	}
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		logger.Warn("concierge: Gemini client unavailable, running in fallback mode", zap.Error(err))
		return &Service{logger: logger}
	}
	return &Service{gen: client, logger: logger}
}

// NewServiceWithGenerator wires an explicit generator; used by tests.
func NewServiceWithGenerator(gen Generator) *Service {
	return &Service{gen: gen, logger: utils.GetLogger()}
}

// Recommend produces a one-sentence advisory hook for the dashboard. The
// catalog subset is accepted for parity with the collaborator contract; the
// persuasion prompt is driven by the user profile alone.
func (s *Service) Recommend(ctx context.Context, user models.UserProfile, services []models.Service, hint string) string {
	if s.gen == nil {
		return FallbackNoCredentials
	}
	text, err := s.gen.GenerateContent(ctx, recommendPrompt(user, hint))
	if err != nil {
		s.logger.Warn("concierge: recommendation failed", zap.Error(err))
		return FallbackRecommendErr
	}
	if strings.TrimSpace(text) == "" {
		return FallbackRecommendZero
	}
	return text
}

// Chat produces the concierge's reply to a new message given the transcript
// so far. The reply never surfaces an error; failures read as the concierge
// losing connectivity.
func (s *Service) Chat(ctx context.Context, history []models.ChatMessage, message string, user models.UserProfile) string {
	if s.gen == nil {
		return FallbackChatErr
	}
	text, err := s.gen.GenerateContent(ctx, chatPrompt(user, history, message))
	if err != nil {
		s.logger.Warn("concierge: chat completion failed", zap.Error(err))
		return FallbackChatErr
	}
	if strings.TrimSpace(text) == "" {
		return FallbackChatZero
	}
	return text
}

// SemanticMatch resolves a natural-language query to catalog service ids.
// It always returns a non-nil slice; no match, missing credentials and
// malformed responses all resolve to an empty list.
func (s *Service) SemanticMatch(ctx context.Context, query string, services []models.Service) []string {
	if s.gen == nil {
		return []string{}
	}
	text, err := s.gen.GenerateContent(ctx, semanticMatchPrompt(query, services))
	if err != nil {
		s.logger.Warn("concierge: semantic match failed", zap.Error(err))
		return []string{}
	}
	ids, err := parseIDArray(text)
	if err != nil {
		s.logger.Warn("concierge: semantic match returned malformed payload", zap.Error(err))
		return []string{}
	}
	return ids
}

// parseIDArray decodes a JSON string array, tolerating the markdown fences
// the model sometimes wraps around JSON output.
func parseIDArray(text string) ([]string, error) {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	t = strings.TrimSpace(t)

	var ids []string
	if err := json.Unmarshal([]byte(t), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
