package api

import (
	"errors"
	"io"
	"net/http"

	"seminar-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "X-Square-Hmacsha256-Signature"

type WebhookHandler struct {
	reconcileCommands commands.ReconcileCommands
}

func NewWebhookHandler(reconcileCommands commands.ReconcileCommands) *WebhookHandler {
	return &WebhookHandler{
		reconcileCommands: reconcileCommands,
	}
}

// @Summary Payment webhook
// @Description Receive payment events from Square
// @Tags webhooks
// @Accept json
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "Bad Request"
// @Router /api/webhooks/square [post]
func (h *WebhookHandler) HandleSquareEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Error")
		return
	}

	signature := c.GetHeader(signatureHeader)

	err = h.reconcileCommands.OnPaymentEvent(c.Request.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookSignatureInvalid),
			errors.Is(err, commands.ErrWebhookPayloadMalformed):
			c.String(http.StatusBadRequest, "Error")
		default:
			// ゲートウェイの再送に任せる
			c.String(http.StatusInternalServerError, "Error")
		}
		return
	}

	c.String(http.StatusOK, "OK")
}
