package concierge

import (
	"fmt"
	"strings"

	"tumy/models"
)

func recommendPrompt(user models.UserProfile, hint string) string {
	return fmt.Sprintf(`
You are "Tumy", a high-end Concierge and Sales Psychologist.
User: %s, Location: %s (Tier: %s).
Goal: Use Robert Cialdini's principles of persuasion (Scarcity, Authority, Social Proof) to suggest a service.

Trigger: %s

Task: Write a 1-sentence "Hook" that creates desire or FOMO (Fear Of Missing Out).
Tone: Sophisticated, Exclusive, Urgent, Motivational.

Example 1: "Karen's elite are booking the Ceramic Shield—don't let your investment fade."
Example 2: "Your schedule is demanding; let our Executive Wash handle the details while you lead."
Example 3: "Unlock the full potential of your ride with a custom wrap before the weekend."
`, user.Name, user.Location, user.Tier, hint)
}

func chatSystemInstruction(user models.UserProfile) string {
	return fmt.Sprintf(`
You are 'Tumy', an elite Lifestyle Manager and Sales Expert.
Your goal is not just to answer, but to *persuade* and *upsell* using the AIDA model (Attention, Interest, Desire, Action).

Key Traits:
1. **Authority**: You know what's best for luxury vehicles and homes.
2. **Scarcity**: Remind them that slots are filling up fast in %s.
3. **Empathy**: You understand they are busy and successful.

If they ask about a wash, suggest the "Ceramic Coating" for long-term value.
If they ask about cleaning, mention "Deep Sofa Restoration" for a healthier home.

Always end with a Call to Action (CTA).
Keep it fun, 3D-minded (realistic and vivid descriptions), and professional.
`, user.Location)
}

// chatPrompt flattens the transcript into a single completion prompt so the
// same Generator surface serves both one-shot and conversational calls.
func chatPrompt(user models.UserProfile, history []models.ChatMessage, message string) string {
	var sb strings.Builder
	sb.WriteString(chatSystemInstruction(user))
	sb.WriteString("\nConversation so far:\n")
	for _, m := range history {
		if m.Role == models.RoleUser {
			sb.WriteString("User: ")
		} else {
			sb.WriteString("Tumy: ")
		}
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(message)
	sb.WriteString("\nTumy:")
	return sb.String()
}

func semanticMatchPrompt(query string, services []models.Service) string {
	var list strings.Builder
	for _, s := range services {
		fmt.Fprintf(&list, "%s: %s - %s\n", s.ID, s.Title, s.Description)
	}
	return fmt.Sprintf(`
User Query: "%s"

Available Services:
%s
Task: Identify the IDs of the services that best match the user's natural language query.
Return ONLY a JSON array of strings (service IDs). If no match, return empty array [].
`, query, list.String())
}
