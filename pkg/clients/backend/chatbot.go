package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// chatRequest is the POST /chatbot/chat body. History carries the prior
// conversation turns so the assistant keeps context between questions.
type chatRequest struct {
	Message string               `json:"message"`
	History []models.ChatMessage `json:"conversation_history"`
}

// QuickStats fetches the headline revenue/profit numbers shown next to the
// chat prompt.
func (c *Client) QuickStats(ctx context.Context) (models.QuickStats, error) {
	var out models.QuickStats
	if err := c.get(ctx, "/chatbot/quick-stats", &out); err != nil {
		return models.QuickStats{}, fmt.Errorf("quick stats: %w", err)
	}
	return out, nil
}

// Chat sends one message plus the conversation history to the backend
// assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatReply, error) {
	if history == nil {
		history = []models.ChatMessage{}
	}

	var out models.ChatReply
	if err := c.post(ctx, "/chatbot/chat", chatRequest{Message: message, History: history}, &out); err != nil {
		return models.ChatReply{}, fmt.Errorf("chat: %w", err)
	}
	return out, nil
}
