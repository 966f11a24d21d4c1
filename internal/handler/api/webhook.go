package api

import (
	"errors"
	"log/slog"
	"net/http"

	"pix-funnel/internal/domain/event"
	reqdto "pix-funnel/internal/handler/dto/request"
	resdto "pix-funnel/internal/handler/dto/response"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives the three inbound channels. Upstream senders do
// not retry well, so every call is acknowledged with 200 and the outcome.
type WebhookHandler struct {
	funnel  commands.FunnelCommands
	clock   clock.Clock
	slogger *slog.Logger
}

func NewWebhookHandler(funnel commands.FunnelCommands, clk clock.Clock, slogger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{funnel: funnel, clock: clk, slogger: slogger}
}

// @Summary Payment webhook
// @Description Payment gateway callback. Approved and pending payments start or update a funnel.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment event"
// @Success 200 {object} resdto.WebhookAck
// @Router /webhook/payment [post]
func (h *WebhookHandler) Payment(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ignore(c, "payment", "invalid_payload", err)
		return
	}

	ev, err := req.ToEvent(h.clock.Now())
	if err != nil {
		if errors.Is(err, reqdto.ErrUnsupportedStatus) {
			c.JSON(http.StatusOK, resdto.Ignored("unsupported_status"))
			return
		}
		h.ignore(c, "payment", "invalid_payload", err)
		return
	}

	var outcome commands.Outcome
	switch e := ev.(type) {
	case event.PaymentApproved:
		outcome, err = h.funnel.HandlePaymentApproved(c.Request.Context(), e)
	case event.PaymentPending:
		outcome, err = h.funnel.HandlePaymentPending(c.Request.Context(), e)
	}
	h.respond(c, "payment", outcome, err)
}

// @Summary Reply webhook
// @Description Message seen by the messaging gateway. Inbound replies advance the funnel.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.ReplyWebhookRequest true "Message"
// @Success 200 {object} resdto.WebhookAck
// @Router /webhook/reply [post]
func (h *WebhookHandler) Reply(c *gin.Context) {
	var req reqdto.ReplyWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ignore(c, "reply", "invalid_payload", err)
		return
	}

	outcome, err := h.funnel.HandleReply(c.Request.Context(), req.ToEvent(h.clock.Now()))
	h.respond(c, "reply", outcome, err)
}

// @Summary Confirmation webhook
// @Description Automation callback reporting that a funnel step was delivered.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmationWebhookRequest true "Confirmation"
// @Success 200 {object} resdto.WebhookAck
// @Router /webhook/confirmation [post]
func (h *WebhookHandler) Confirmation(c *gin.Context) {
	var req reqdto.ConfirmationWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ignore(c, "confirmation", "invalid_payload", err)
		return
	}

	outcome, err := h.funnel.HandleConfirmation(c.Request.Context(), req.ToEvent(h.clock.Now()))
	h.respond(c, "confirmation", outcome, err)
}

func (h *WebhookHandler) respond(c *gin.Context, channel string, outcome commands.Outcome, err error) {
	if err != nil {
		reason := "error"
		if errors.Is(err, commands.ErrMissingIdentity) || errors.Is(err, commands.ErrMissingOrderReference) {
			reason = "invalid_payload"
		}
		h.ignore(c, channel, reason, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Ack(string(outcome)))
}

func (h *WebhookHandler) ignore(c *gin.Context, channel, reason string, err error) {
	h.slogger.Warn("webhook ignored",
		slog.String("channel", channel),
		slog.String("reason", reason),
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("error", err.Error()))
	c.JSON(http.StatusOK, resdto.Ignored(reason))
}
