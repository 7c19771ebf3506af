package ai

import (
	"context"
	"strings"
)

const chatSystemPrompt = "You are a helpful AI assistant for SkillSwap, providing professional and concise advice on skills, learning, and career development."

// ChatResponse answers a user message, preferring the AI provider and
// degrading to the local response table on any failure. It never returns an
// error.
func (r *Recommender) ChatResponse(ctx context.Context, message string) string {
	if r.client == nil {
		return localChatResponse(message)
	}

	reply, err := r.client.GenerateContent(ctx, chatSystemPrompt, message)
	if err != nil {
		r.logger.Warn("AI chat call failed, using local response", "error", err)
		return localChatResponse(message)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return localChatResponse(message)
	}
	return reply
}

// localChatResponse answers from the keyword table, or generically when
// nothing matches.
func localChatResponse(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range localChatResponses {
		if strings.Contains(lower, entry.keyword) {
			return entry.response
		}
	}
	return genericChatResponse
}
