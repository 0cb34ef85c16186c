package chat

import (
	"sync"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Context scopes selectable per conversation. The scope decides which live
// data snapshot gets serialized into the system prompt.
const (
	ScopeAll      = "all"
	ScopeTickets  = "tickets"
	ScopeRefunds  = "refunds"
	ScopePayments = "payments"
)

func ValidScope(s string) bool {
	switch s {
	case ScopeAll, ScopeTickets, ScopeRefunds, ScopePayments:
		return true
	default:
		return false
	}
}

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is one session's chat transcript plus its context scope.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	scope    string
}

func NewConversation() *Conversation {
	return &Conversation{scope: ScopeAll}
}

func (c *Conversation) Append(role, content string, now time.Time) {
	c.mu.Lock()
	c.messages = append(c.messages, Message{Role: role, Content: content, Timestamp: now})
	c.mu.Unlock()
}

func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Clear() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}

func (c *Conversation) Scope() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

func (c *Conversation) SetScope(scope string) {
	c.mu.Lock()
	c.scope = scope
	c.mu.Unlock()
}
