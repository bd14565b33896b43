package concierge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tumy/models"
)

// stubGenerator scripts the collaborator's next response.
type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func testUser() models.UserProfile {
	return models.UserProfile{
		ID:       "u_alex",
		Name:     "Alex Kamau",
		Location: "Karen, Nairobi",
		Tier:     models.TierPlatinum,
	}
}

func TestRecommendWithoutCredentials(t *testing.T) {
	svc := NewService("")
	got := svc.Recommend(context.Background(), testUser(), nil, "hint")
	assert.Equal(t, FallbackNoCredentials, got)
}

func TestRecommendPassesThroughModelText(t *testing.T) {
	gen := &stubGenerator{text: "Your Bentley deserves the Elite coating."}
	svc := NewServiceWithGenerator(gen)

	got := svc.Recommend(context.Background(), testUser(), nil, "feeling energetic")
	assert.Equal(t, "Your Bentley deserves the Elite coating.", got)
	assert.Contains(t, gen.prompt, "Alex Kamau")
	assert.Contains(t, gen.prompt, "feeling energetic")
}

func TestRecommendFallbacks(t *testing.T) {
	svc := NewServiceWithGenerator(&stubGenerator{err: errors.New("quota")})
	assert.Equal(t, FallbackRecommendErr, svc.Recommend(context.Background(), testUser(), nil, "h"))

	svc = NewServiceWithGenerator(&stubGenerator{text: "   "})
	assert.Equal(t, FallbackRecommendZero, svc.Recommend(context.Background(), testUser(), nil, "h"))
}

func TestChatFallbacks(t *testing.T) {
	svc := NewService("")
	assert.Equal(t, FallbackChatErr, svc.Chat(context.Background(), nil, "hi", testUser()))

	svc = NewServiceWithGenerator(&stubGenerator{err: errors.New("down")})
	assert.Equal(t, FallbackChatErr, svc.Chat(context.Background(), nil, "hi", testUser()))

	svc = NewServiceWithGenerator(&stubGenerator{text: ""})
	assert.Equal(t, FallbackChatZero, svc.Chat(context.Background(), nil, "hi", testUser()))
}

func TestChatPromptFlattensTranscript(t *testing.T) {
	gen := &stubGenerator{text: "Of course!"}
	svc := NewServiceWithGenerator(gen)

	history := []models.ChatMessage{
		{Role: models.RoleModel, Text: "Hi Alex!"},
		{Role: models.RoleUser, Text: "I need a wash"},
	}
	got := svc.Chat(context.Background(), history, "today please", testUser())
	assert.Equal(t, "Of course!", got)
	assert.Contains(t, gen.prompt, "Tumy: Hi Alex!")
	assert.Contains(t, gen.prompt, "User: I need a wash")
	assert.Contains(t, gen.prompt, "User: today please")
}

func TestSemanticMatchParsesPlainArray(t *testing.T) {
	svc := NewServiceWithGenerator(&stubGenerator{text: `["s1","s3"]`})
	got := svc.SemanticMatch(context.Background(), "dirty sofa at home", nil)
	assert.Equal(t, []string{"s1", "s3"}, got)
}

func TestSemanticMatchStripsMarkdownFences(t *testing.T) {
	svc := NewServiceWithGenerator(&stubGenerator{text: "```json\n[\"s2\"]\n```"})
	got := svc.SemanticMatch(context.Background(), "my car is covered in dust", nil)
	assert.Equal(t, []string{"s2"}, got)
}

func TestSemanticMatchDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	svc := NewService("")
	assert.Equal(t, []string{}, svc.SemanticMatch(ctx, "q", nil))

	svc = NewServiceWithGenerator(&stubGenerator{err: errors.New("boom")})
	assert.Equal(t, []string{}, svc.SemanticMatch(ctx, "q", nil))

	svc = NewServiceWithGenerator(&stubGenerator{text: "not json at all"})
	assert.Equal(t, []string{}, svc.SemanticMatch(ctx, "q", nil))

	svc = NewServiceWithGenerator(&stubGenerator{text: "null"})
	assert.Equal(t, []string{}, svc.SemanticMatch(ctx, "q", nil))
}
