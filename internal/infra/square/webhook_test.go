//go:build unit

package square_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"seminar-booking/internal/infra/square"
	"seminar-booking/internal/pkg/config"
	"seminar-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey         = "test-signature-key"
	testNotificationURL = "https://example.com/api/webhooks/square"
)

func newTestClient() *square.Client {
	return square.NewClient(config.SquareConfig{
		AccessToken:     "test-token",
		LocationID:      "test-location",
		Environment:     "sandbox",
		WebhookSignKey:  testSignKey,
		NotificationURL: testNotificationURL,
		Currency:        "JPY",
	})
}

func sign(key, notificationURL string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(notificationURL))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"type":"payment.updated"}`)

	t.Run("正しい署名を受理する", func(t *testing.T) {
		c := newTestClient()
		assert.True(t, c.VerifyWebhookSignature(body, sign(testSignKey, testNotificationURL, body)))
	})

	t.Run("鍵違いの署名を弾く", func(t *testing.T) {
		c := newTestClient()
		assert.False(t, c.VerifyWebhookSignature(body, sign("wrong-key", testNotificationURL, body)))
	})

	t.Run("通知URL違いの署名を弾く", func(t *testing.T) {
		c := newTestClient()
		assert.False(t, c.VerifyWebhookSignature(body, sign(testSignKey, "https://attacker.example.com/hook", body)))
	})

	t.Run("本文改竄を弾く", func(t *testing.T) {
		c := newTestClient()
		sig := sign(testSignKey, testNotificationURL, body)
		tampered := []byte(`{"type":"payment.updated","extra":1}`)
		assert.False(t, c.VerifyWebhookSignature(tampered, sig))
	})

	t.Run("空署名を弾く", func(t *testing.T) {
		c := newTestClient()
		assert.False(t, c.VerifyWebhookSignature(body, ""))
	})
}

func TestDecodeEvent(t *testing.T) {
	t.Run("決済イベントの必要項目を取り出す", func(t *testing.T) {
		c := newTestClient()
		body := []byte(`{
			"type": "payment.updated",
			"data": {
				"object": {
					"payment": {
						"status": "COMPLETED",
						"order_id": "order-123"
					}
				}
			}
		}`)

		event, err := c.DecodeEvent(body)
		require.NoError(t, err)

		assert.Equal(t, commands.EventPaymentUpdated, event.Type)
		assert.Equal(t, "order-123", event.OrderID)
		assert.Equal(t, commands.SettlementCompleted, event.SettlementStatus)
		assert.True(t, event.IsSettledPayment())
	})

	t.Run("未完了ステータスは決済完了扱いにならない", func(t *testing.T) {
		c := newTestClient()
		body := []byte(`{
			"type": "payment.updated",
			"data": {"object": {"payment": {"status": "APPROVED", "order_id": "order-123"}}}
		}`)

		event, err := c.DecodeEvent(body)
		require.NoError(t, err)
		assert.False(t, event.IsSettledPayment())
	})

	t.Run("別種イベントは決済完了扱いにならない", func(t *testing.T) {
		c := newTestClient()
		body := []byte(`{"type": "order.created"}`)

		event, err := c.DecodeEvent(body)
		require.NoError(t, err)
		assert.False(t, event.IsSettledPayment())
	})

	t.Run("壊れたJSONはエラー", func(t *testing.T) {
		c := newTestClient()
		_, err := c.DecodeEvent([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("type欠落はエラー", func(t *testing.T) {
		c := newTestClient()
		_, err := c.DecodeEvent([]byte(`{"data":{}}`))
		assert.Error(t, err)
	})
}
