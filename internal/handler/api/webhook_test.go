//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/handler/api"
	resdto "pix-funnel/internal/handler/dto/response"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/commands"
	testhttp "pix-funnel/tests/common/httptest"
	commandsmock "pix-funnel/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var receivedAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockFunnel *commandsmock.MockFunnelCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFunnel = commandsmock.NewMockFunnelCommands(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := api.NewWebhookHandler(s.mockFunnel, clock.NewMockClock(receivedAt), logger)

	s.router.POST("/webhook/payment", h.Payment)
	s.router.POST("/webhook/reply", h.Reply)
	s.router.POST("/webhook/confirmation", h.Confirmation)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(path string, body any) resdto.WebhookAck {
	rec := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
	var ack resdto.WebhookAck
	testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
	return ack
}

func (s *WebhookHandlerTestSuite) postRaw(path, body string) resdto.WebhookAck {
	rec := testhttp.PerformRawRequest(s.T(), s.router, http.MethodPost, path, body)
	var ack resdto.WebhookAck
	testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
	return ack
}

// ================================================================================
// Payment
// ================================================================================

func (s *WebhookHandlerTestSuite) TestPayment() {
	s.Run("approved with phone parts and decimal comma amount", func() {
		var got event.PaymentApproved
		s.mockFunnel.EXPECT().HandlePaymentApproved(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev event.PaymentApproved) (commands.Outcome, error) {
				got = ev
				return commands.OutcomeCreated, nil
			}).Times(1)

		ack := s.post("/webhook/payment", map[string]any{
			"order_id":     "ORD1",
			"status":       "SALE_APPROVED",
			"product_code": "prod_fab",
			"customer": map[string]any{
				"name":        " Maria Silva ",
				"phone_parts": map[string]any{"country": "55", "area": 11, "number": "98888-7777"},
			},
			"amount":       "97,00",
			"payment_link": "https://pay.example.com/ORD1",
		})

		s.Equal("created", ack.Status)
		s.Equal(event.Payment{
			OrderReference: "ORD1",
			ProductCode:    "prod_fab",
			CustomerName:   "Maria Silva",
			Identity:       identity.Key("5511988887777"),
			Amount:         conversation.Money(9700),
			PaymentLinkURL: "https://pay.example.com/ORD1",
			ReceivedAt:     receivedAt,
		}, got.Payment)
	})

	s.Run("pending with numeric ids and pix_url", func() {
		var got event.PaymentPending
		s.mockFunnel.EXPECT().HandlePaymentPending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev event.PaymentPending) (commands.Outcome, error) {
				got = ev
				return commands.OutcomeCreated, nil
			}).Times(1)

		ack := s.postRaw("/webhook/payment",
			`{"sale_id": 123456, "status": "waiting_payment", "product_id": 42,
			  "customer": {"phone": "(11) 98888-7777"}, "amount": 97.5, "pix_url": "https://pix.example.com/qr"}`)

		s.Equal("created", ack.Status)
		s.Equal("123456", got.OrderReference)
		s.Equal("42", got.ProductCode)
		s.Equal(identity.Key("5511988887777"), got.Identity)
		s.Equal(conversation.Money(9750), got.Amount)
		s.Equal("https://pix.example.com/qr", got.PaymentLinkURL)
	})

	s.Run("unrecognized phone is flagged, not rejected", func() {
		var got event.PaymentApproved
		s.mockFunnel.EXPECT().HandlePaymentApproved(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev event.PaymentApproved) (commands.Outcome, error) {
				got = ev
				return commands.OutcomeCreated, nil
			}).Times(1)

		s.post("/webhook/payment", map[string]any{
			"order_reference": "ORD2",
			"status":          "paid",
			"customer":        map[string]any{"phone": "12345"},
		})
		s.True(got.UnrecognizedIdentity)
		s.Equal(identity.Key("12345"), got.Identity)
	})

	cases := []struct {
		name       string
		body       string
		wantReason string
	}{
		{name: "refunded status is ignored", body: `{"order_id":"ORD1","status":"refunded","customer":{"phone":"5511988887777"}}`, wantReason: "unsupported_status"},
		{name: "missing status is ignored", body: `{"order_id":"ORD1"}`, wantReason: "unsupported_status"},
		{name: "malformed json", body: `{"order_id":`, wantReason: "invalid_payload"},
		{name: "amount is not a number", body: `{"order_id":"ORD1","status":"approved","amount":"abc"}`, wantReason: "invalid_payload"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			ack := s.postRaw("/webhook/payment", tc.body)
			s.Equal("ignored", ack.Status)
			s.Equal(tc.wantReason, ack.Reason)
		})
	}

	s.Run("use-case validation error is acknowledged", func() {
		s.mockFunnel.EXPECT().HandlePaymentApproved(gomock.Any(), gomock.Any()).
			Return(commands.Outcome(""), commands.ErrMissingIdentity).Times(1)

		ack := s.postRaw("/webhook/payment", `{"order_id":"ORD1","status":"approved"}`)
		s.Equal("ignored", ack.Status)
		s.Equal("invalid_payload", ack.Reason)
	})
}

// ================================================================================
// Reply
// ================================================================================

func (s *WebhookHandlerTestSuite) TestReply() {
	cases := []struct {
		name          string
		body          string
		wantDirection event.Direction
	}{
		{name: "explicit inbound", body: `{"sender":"5511988887777@s.whatsapp.net","direction":"inbound","message":"oi","instance":"instance-2"}`, wantDirection: event.DirectionInbound},
		{name: "explicit outbound", body: `{"sender":"5511988887777","direction":"OUTBOUND","message":"oi"}`, wantDirection: event.DirectionOutbound},
		{name: "from_me true", body: `{"sender":"5511988887777","from_me":true,"message":"oi"}`, wantDirection: event.DirectionOutbound},
		{name: "from_me false", body: `{"sender":"5511988887777","from_me":"false","message":"oi"}`, wantDirection: event.DirectionInbound},
		{name: "no direction defaults to inbound", body: `{"phone":"11988887777","message":"oi"}`, wantDirection: event.DirectionInbound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			var got event.Reply
			s.mockFunnel.EXPECT().HandleReply(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ev event.Reply) (commands.Outcome, error) {
					got = ev
					return commands.OutcomeAdvanced, nil
				}).Times(1)

			ack := s.postRaw("/webhook/reply", tc.body)
			s.Equal("advanced", ack.Status)
			s.Equal(tc.wantDirection, got.Direction)
			s.Equal(identity.Key("5511988887777"), got.Identity)
			s.Equal(receivedAt, got.ReceivedAt)
		})
	}
}

// ================================================================================
// Confirmation
// ================================================================================

func (s *WebhookHandlerTestSuite) TestConfirmation() {
	cases := []struct {
		completed string
		want      bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"1"`, true},
		{`1`, true},
		{`"0"`, false},
		{`"yes"`, true},
		{`"no"`, false},
		{`"sim"`, true},
		{`"não"`, false},
	}
	for _, tc := range cases {
		s.Run("completed="+tc.completed, func() {
			var got event.Confirmation
			s.mockFunnel.EXPECT().HandleConfirmation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ev event.Confirmation) (commands.Outcome, error) {
					got = ev
					return commands.OutcomeConfirmed, nil
				}).Times(1)

			ack := s.postRaw("/webhook/confirmation",
				`{"event":"step_sent","phone":"5511988887777","instance":"instance-1","completed":`+tc.completed+`}`)
			s.Equal("confirmed", ack.Status)
			s.Equal(tc.want, got.Completed)
			s.Equal("step_sent", got.Kind)
		})
	}

	s.Run("unexpected error still answers 200", func() {
		s.mockFunnel.EXPECT().HandleConfirmation(gomock.Any(), gomock.Any()).
			Return(commands.Outcome(""), context.DeadlineExceeded).Times(1)

		ack := s.postRaw("/webhook/confirmation", `{"phone":"5511988887777","completed":true}`)
		s.Equal("ignored", ack.Status)
		s.Equal("error", ack.Reason)
	})
}
