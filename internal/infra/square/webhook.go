package square

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"seminar-booking/internal/pkg/errs"
	"seminar-booking/internal/usecase/commands"
)

// webhookEvent mirrors the subset of Square's webhook envelope the
// reconciler needs. Required fields are validated before the event is
// handed to the core.
type webhookEvent struct {
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

// VerifyWebhookSignature checks Square's HMAC-SHA256 signature: the
// base64 HMAC of the notification URL concatenated with the raw body,
// keyed by the webhook signature key.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSignKey))
	mac.Write([]byte(c.notificationURL))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) DecodeEvent(body []byte) (*commands.PaymentEvent, error) {
	var event webhookEvent
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
