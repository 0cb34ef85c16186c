package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"support-console/internal/pkg/clock"
	"support-console/internal/pkg/config"
	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/queries"
)

const (
	systemPromptHeader = "You are an assistant for an internal support operations console. " +
		"Answer questions about support tickets, refund requests and payments using the " +
		"live data snapshot below. Be concise. If the snapshot does not cover a question, say so."

	contextUnavailableNotice = "(live data snapshot unavailable; answering from conversation only)"

	fallbackReply = "Sorry, I couldn't reach the assistant service just now. Please try again in a moment."
)

// CompletionStreamer is the slice of the OpenAI client the assistant uses.
type CompletionStreamer interface {
	CreateChatCompletionStream(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionStream, error)
}

// Assistant streams LLM replies grounded in a per-entity data snapshot.
// Data-layer failures degrade to a notice in the prompt and LLM failures
// become a friendly transcript entry; neither surfaces as a request error.
type Assistant struct {
	client CompletionStreamer
	store  queries.ChatContextReadStore
	clock  clock.Clock
	cfg    config.ChatConfig
}

func NewAssistant(cfg config.ChatConfig, store queries.ChatContextReadStore, clk clock.Clock) *Assistant {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Assistant{
		client: openai.NewClientWithConfig(clientCfg),
		store:  store,
		clock:  clk,
		cfg:    cfg,
	}
}

// NewAssistantWithClient exists for tests that stub the streamer.
func NewAssistantWithClient(cfg config.ChatConfig, client CompletionStreamer, store queries.ChatContextReadStore, clk clock.Clock) *Assistant {
	return &Assistant{client: client, store: store, clock: clk, cfg: cfg}
}

// Stream appends the user message, streams the reply token by token through
// emit, and appends the full reply to the transcript. When the LLM call
// fails a fallback reply is emitted and recorded instead, and the underlying
// error is returned for logging only.
func (a *Assistant) Stream(ctx context.Context, conv *Conversation, message string, emit func(token string) error) error {
	conv.Append(RoleUser, message, a.clock.Now())

	req := openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		Stream:      true,
		Messages:    a.buildMessages(ctx, conv),
	}

	stream, err := a.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		a.recordFallback(conv, emit)
		return errs.Wrap(err, "chat completion stream could not be opened")
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		resp, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			if reply.Len() == 0 {
				a.recordFallback(conv, emit)
			} else {
				conv.Append(RoleAssistant, reply.String(), a.clock.Now())
			}
			return errs.Wrap(recvErr, "chat completion stream failed")
		}
		if len(resp.Choices) == 0 {
			continue
		}
		token := resp.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		reply.WriteString(token)
		if err := emit(token); err != nil {
			return errs.Wrap(err, "chat client went away mid-stream")
		}
	}

	conv.Append(RoleAssistant, reply.String(), a.clock.Now())
	return nil
}

func (a *Assistant) recordFallback(conv *Conversation, emit func(token string) error) {
	conv.Append(RoleAssistant, fallbackReply, a.clock.Now())
	_ = emit(fallbackReply)
}

func (a *Assistant) buildMessages(ctx context.Context, conv *Conversation) []openai.ChatCompletionMessage {
	msgs := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: a.systemPrompt(ctx, conv.Scope()),
	}}
	for _, m := range conv.Messages() {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return msgs
}

func (a *Assistant) systemPrompt(ctx context.Context, scope string) string {
	var b strings.Builder
	b.WriteString(systemPromptHeader)
	b.WriteString("\n\n")

	degraded := false

	if scope == ScopeAll || scope == ScopeTickets {
		if tc, err := a.store.TicketContext(ctx); err != nil {
			degraded = true
		} else {
			writeTicketContext(&b, tc)
		}
	}
	if scope == ScopeAll || scope == ScopeRefunds {
		if rc, err := a.store.RefundContext(ctx); err != nil {
			degraded = true
		} else {
			writeRefundContext(&b, rc)
		}
	}
	if scope == ScopeAll || scope == ScopePayments {
		if pc, err := a.store.PaymentContext(ctx); err != nil {
			degraded = true
		} else {
			writePaymentContext(&b, pc)
		}
	}

	if degraded {
		b.WriteString(contextUnavailableNotice)
		b.WriteString("\n")
	}
	return b.String()
}

func writeTicketContext(b *strings.Builder, tc *queries.TicketContext) {
	b.WriteString("## Tickets\nStatus counts: ")
	for _, status := range []string{"open", "pending", "resolved", "closed"} {
		fmt.Fprintf(b, "%s=%d ", status, tc.StatusCounts[status])
	}
	b.WriteString("\nMost recent:\n")
	for _, t := range tc.Recent {
		fmt.Fprintf(b, "- [%s] %s (%s, customer %s)\n", t.TicketID, t.Subject, t.Status, t.CustomerID)
	}
	b.WriteString("\n")
}

func writeRefundContext(b *strings.Builder, rc *queries.RefundContext) {
	fmt.Fprintf(b, "## Refund requests\nDecisions: pending=%d approved=%d denied=%d\nMost recent:\n",
		rc.ApprovalCounts["pending"], rc.ApprovalCounts["true"], rc.ApprovalCounts["false"])
	for _, r := range rc.Recent {
		amount := "unknown amount"
		if r.AmountCents != nil {
			amount = fmt.Sprintf("%d cents", *r.AmountCents)
		}
		decision := "pending"
		if r.Approved != nil {
			if *r.Approved {
				decision = "approved"
			} else {
				decision = "denied"
			}
		}
		fmt.Fprintf(b, "- [%s] sku %s, %s, %s\n", r.RefundID, r.SKU, amount, decision)
	}
	b.WriteString("\n")
}

func writePaymentContext(b *strings.Builder, pc *queries.PaymentContext) {
	b.WriteString("## Payments\nBy status: ")
	for _, s := range pc.StatusStats {
		fmt.Fprintf(b, "%s=%d (%d cents) ", s.Status, s.Count, s.AmountCents)
	}
	b.WriteString("\nMost recent:\n")
	for _, p := range pc.Recent {
		fmt.Fprintf(b, "- [%s] %d cents, %s, customer %s\n", p.PaymentID, p.AmountCents, p.Status, p.CustomerID)
	}
	b.WriteString("\n")
}
