package api

import (
	"errors"
	"io"
	"net/http"

	"treesync/internal/domain/account"
	resdto "treesync/internal/handler/dto/response"
	"treesync/internal/handler/httperr"
	"treesync/internal/pkg/cryptobox"
	"treesync/internal/pkg/errs"
	"treesync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20 // 1 MiB

type WebhookHandler struct {
	cmds   commands.WebhookCommands
	secret string
}

func NewWebhookHandler(cmds commands.WebhookCommands, secret string) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, secret: secret}
}

// Receive accepts a raw PMS notification. The shared-secret gate is a
// plain pass/fail check; per-PMS authentication (Basic Auth for
// HotelSpider) happens inside the handler chain.
func (h *WebhookHandler) Receive(c *gin.Context) {
	if !h.authorized(c) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrWebhookUnauthorized, "Unauthorized", nil)
		return
	}

	pmsType, err := account.ParsePmsType(c.Param("pmsType"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown PMS type", nil)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil || len(payload) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrWebhookBadPayload, "Empty or unreadable payload", nil)
		return
	}

	headers := map[string]string{}
	if auth := c.GetHeader("Authorization"); auth != "" {
		headers["Authorization"] = auth
	}

	result, err := h.cmds.Receive(c.Request.Context(), pmsType, payload, headers)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWebhookBadPayload):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed payload", nil)
		case errors.Is(err, errs.ErrAccountNotFound):
			// Acknowledge so the PMS stops redelivering; the event is
			// kept for audit.
			c.JSON(http.StatusOK, resdto.FromReceiveResult(result))
		default:
			// Stored but not yet processed; the retry scheduler owns it
			// now. Failing the delivery would only cause duplicates.
			c.JSON(http.StatusAccepted, resdto.FromReceiveResult(result))
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReceiveResult(result))
}

func (h *WebhookHandler) RetryFailed(c *gin.Context) {
	if !h.authorized(c) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrWebhookUnauthorized, "Unauthorized", nil)
		return
	}

	stats, err := h.cmds.RetryFailed(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Retry batch failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRetryStats(stats))
}

func (h *WebhookHandler) authorized(c *gin.Context) bool {
	return cryptobox.ConstantTimeEqual(c.GetHeader("X-Webhook-Secret"), h.secret)
}
