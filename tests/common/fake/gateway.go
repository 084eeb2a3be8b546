//go:build e2e

package fake

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"seminar-booking/internal/pkg/errs"
	"seminar-booking/internal/usecase/commands"
)

// ValidSignature is the only signature the stub gateway accepts.
// E2E tests sign their simulated webhook deliveries with it.
const ValidSignature = "e2e-valid-signature"

// PaymentGateway is an in-process stand-in for the Square API so E2E
// tests never leave the test host.
type PaymentGateway struct {
	mu        sync.Mutex
	linkCalls []commands.PaymentLinkRequest
	seq       int
}

func NewPaymentGateway() *PaymentGateway {
	return &PaymentGateway{}
}

func (g *PaymentGateway) CreatePaymentLink(_ context.Context, req commands.PaymentLinkRequest) (*commands.PaymentLink, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.linkCalls = append(g.linkCalls, req)
	return &commands.PaymentLink{
		URL:     fmt.Sprintf("https://pay.example.com/link-%d", g.seq),
		OrderID: fmt.Sprintf("e2e-order-%d", g.seq),
	}, nil
}

func (g *PaymentGateway) VerifyWebhookSignature(_ []byte, signature string) bool {
	return signature == ValidSignature
}

func (g *PaymentGateway) DecodeEvent(body []byte) (*commands.PaymentEvent, error) {
	var event struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				Payment struct {
					Status  string `json:"status"`
					OrderID string `json:"order_id"`
				} `json:"payment"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, errs.Wrap(err, "failed to decode webhook payload")
	}
	if event.Type == "" {
		return nil, errs.New("webhook payload missing event type")
	}
	return &commands.PaymentEvent{
		Type:             event.Type,
		OrderID:          event.Data.Object.Payment.OrderID,
		SettlementStatus: event.Data.Object.Payment.Status,
	}, nil
}

// LinkCalls returns the payment link requests issued so far.
func (g *PaymentGateway) LinkCalls() []commands.PaymentLinkRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]commands.PaymentLinkRequest, len(g.linkCalls))
	copy(out, g.linkCalls)
	return out
}

// LastOrderID returns the order id of the most recent payment link.
func (g *PaymentGateway) LastOrderID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("e2e-order-%d", g.seq)
}

type SentMail struct {
	Kind    string // "link" or "confirmation"
	ToEmail string
	ZoomURL string
}

// Notifier records mails instead of speaking SMTP.
type Notifier struct {
	mu   sync.Mutex
	sent []SentMail
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) SendPaymentLink(_ context.Context, toEmail, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentMail{Kind: "link", ToEmail: toEmail})
	return nil
}

func (n *Notifier) SendConfirmation(_ context.Context, toEmail, _, zoomURL, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentMail{Kind: "confirmation", ToEmail: toEmail, ZoomURL: zoomURL})
	return nil
}

func (n *Notifier) Sent() []SentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]SentMail, len(n.sent))
	copy(out, n.sent)
	return out
}
