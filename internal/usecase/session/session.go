package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"support-console/internal/pkg/clock"
	"support-console/internal/usecase/chat"
	"support-console/internal/usecase/commands"
	"support-console/internal/usecase/queries"
)

// Session carries the per-browser-tab state: one view per table plus the
// chat transcript. Sessions hold no credentials; their id is only a handle
// for correlating view state across requests.
type Session struct {
	ID       uuid.UUID
	Tickets  *TicketTableView
	Refunds  *RefundTableView
	Payments *PaymentTableView
	Chat     *chat.Conversation

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// RegistryDeps is everything a fresh session needs wired into its views.
type RegistryDeps struct {
	TicketStore  queries.TicketReadStore
	RefundStore  queries.RefundReadStore
	PaymentStore queries.PaymentReadStore

	TicketCommands  commands.TicketCommands
	RefundCommands  commands.RefundCommands
	PaymentCommands commands.PaymentCommands
}

// Registry keeps live sessions in memory and evicts the ones nobody has
// touched within the idle TTL. Asking for an unknown or evicted id yields a
// fresh session under that id, so an expired tab degrades to default view
// state instead of erroring.
type Registry struct {
	deps    RegistryDeps
	clock   clock.Clock
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(deps RegistryDeps, clk clock.Clock, idleTTL time.Duration) *Registry {
	return &Registry{
		deps:     deps,
		clock:    clk,
		idleTTL:  idleTTL,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create registers a brand-new session and returns it.
func (r *Registry) Create() *Session {
	s := r.newSession(uuid.New())
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session for id, materializing one if it does not exist,
// and refreshes its idle clock.
func (r *Registry) Get(id uuid.UUID) *Session {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = r.newSession(id)
		r.sessions[id] = s
	}
	r.mu.Unlock()
	s.touch(r.clock.Now())
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops every session idle longer than the TTL and reports how many
// were evicted.
func (r *Registry) Sweep() int {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idleTTL {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartSweeping runs Sweep on the given interval until the returned stop
// function is called.
func (r *Registry) StartSweeping(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (r *Registry) newSession(id uuid.UUID) *Session {
	s := &Session{
		ID:       id,
		Tickets:  NewTicketTableView(r.deps.TicketStore, r.deps.TicketCommands.Delete),
		Refunds:  NewRefundTableView(r.deps.RefundStore, r.deps.RefundCommands.Delete),
		Payments: NewPaymentTableView(r.deps.PaymentStore, r.deps.PaymentCommands.Delete),
		Chat:     chat.NewConversation(),
	}
	s.touch(r.clock.Now())
	return s
}
