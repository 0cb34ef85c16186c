package response

import (
	"support-console/internal/usecase/chat"
)

type ChatMessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type ChatHistoryResponse struct {
	Scope    string                `json:"scope"`
	Messages []ChatMessageResponse `json:"messages"`
}

func FromConversation(c *chat.Conversation) ChatHistoryResponse {
	msgs := c.Messages()
	out := make([]ChatMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = ChatMessageResponse{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp.Unix(),
		}
	}
	return ChatHistoryResponse{Scope: c.Scope(), Messages: out}
}
