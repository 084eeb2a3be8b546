package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"seminar-booking/internal/pkg/config"
	"seminar-booking/internal/pkg/errs"
	"seminar-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"

	apiVersion     = "2023-12-13"
	requestTimeout = 15 * time.Second
)

// Client drives the two Square operations the core needs: creating a
// payment link and decoding/verifying inbound webhook events.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	accessToken     string
	locationID      string
	currency        string
	webhookSignKey  string
	notificationURL string
}

func NewClient(cfg config.SquareConfig) *Client {
	baseURL := productionBaseURL
	if cfg.Environment == "sandbox" {
		baseURL = sandboxBaseURL
	}

	return &Client{
		httpClient:      &http.Client{Timeout: requestTimeout},
		baseURL:         baseURL,
		accessToken:     cfg.AccessToken,
		locationID:      cfg.LocationID,
		currency:        cfg.Currency,
		webhookSignKey:  cfg.WebhookSignKey,
		notificationURL: cfg.NotificationURL,
	}
}

type paymentLinkRequest struct {
	IdempotencyKey string   `json:"idempotency_key"`
	QuickPay       quickPay `json:"quick_pay"`
	PrePopulated   *buyer   `json:"pre_populated_data,omitempty"`
	PaymentNote    string   `json:"payment_note"`
}

type quickPay struct {
	Name       string `json:"name"`
	PriceMoney money  `json:"price_money"`
	LocationID string `json:"location_id"`
}

type money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type buyer struct {
	BuyerEmail string `json:"buyer_email,omitempty"`
}

type paymentLinkResponse struct {
	PaymentLink struct {
		URL     string `json:"url"`
		OrderID string `json:"order_id"`
	} `json:"payment_link"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, req commands.PaymentLinkRequest) (*commands.PaymentLink, error) {
	payload := paymentLinkRequest{
		IdempotencyKey: uuid.NewString(),
		QuickPay: quickPay{
			Name: req.Title,
			PriceMoney: money{
				Amount:   req.AmountJPY,
				Currency: c.currency,
			},
			LocationID: c.locationID,
		},
		PrePopulated: &buyer{BuyerEmail: req.BuyerEmail},
		// 照合用にセミナーIDと予約IDをノートへ埋め込む
		PaymentNote: fmt.Sprintf("Seminar ID: %s, Booking ID: %s", req.SeminarID, req.BookingID),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode payment link request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/online-checkout/payment-links", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment link request")
	}
	httpReq.Header.Set("Square-Version", apiVersion)
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "payment link request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read payment link response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errs.New(fmt.Sprintf("payment link creation rejected: status=%d body=%s",
			resp.StatusCode, string(respBody)))
	}

	var linkResp paymentLinkResponse
	if err := json.Unmarshal(respBody, &linkResp); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment link response")
	}
	if linkResp.PaymentLink.URL == "" || linkResp.PaymentLink.OrderID == "" {
		return nil, errs.New("payment link response missing url or order id")
	}

	return &commands.PaymentLink{
		URL:     linkResp.PaymentLink.URL,
		OrderID: linkResp.PaymentLink.OrderID,
	}, nil
}
