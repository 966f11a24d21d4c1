//go:build unit

package api_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"pix-funnel/internal/handler/api"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/pkg/jwt"
	"pix-funnel/internal/usecase/queries"
	"pix-funnel/internal/usecase/shared"
	testhttp "pix-funnel/tests/common/httptest"
	queriesmock "pix-funnel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockPayments  *queriesmock.MockPaymentQueries
	mockContacts  *queriesmock.MockContactQueries
	mockArchiver  *queriesmock.MockContactArchiver
	mockDashboard *queriesmock.MockDashboardQueries
	token         string
}

func (s *QueryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.mockContacts = queriesmock.NewMockContactQueries(s.mockCtrl)
	s.mockArchiver = queriesmock.NewMockContactArchiver(s.mockCtrl)
	s.mockDashboard = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := api.NewQueryHandler(s.mockPayments, s.mockContacts, s.mockArchiver, s.mockDashboard, logger)

	jwtService := jwt.NewService("test-admin-secret", time.Hour)
	token, err := jwtService.GenerateToken("ops")
	s.Require().NoError(err)
	s.token = token

	g := s.router.Group("/api")
	g.Use(middleware.NewAuthMiddleware(jwtService).RequireAdmin())
	g.GET("/payments/:orderReference/status", h.PaymentStatus)
	g.GET("/contacts/stats", h.ContactStats)
	g.GET("/contacts/export", h.ExportContacts)
	g.POST("/contacts/archive", h.ArchiveContacts)
	g.GET("/dashboard/snapshot", h.DashboardSnapshot)
}

func (s *QueryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlerTestSuite))
}

func (s *QueryHandlerTestSuite) TestAuthentication() {
	cases := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "forged token", token: "eyJhbGciOiJIUzI1NiJ9.e30.invalid"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/dashboard/snapshot", nil, tc.token)
			testhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		})
	}
}

func (s *QueryHandlerTestSuite) TestPaymentStatus() {
	s.Run("success", func() {
		view := &queries.PaymentStatusView{
			OrderReference: "ORD1",
			Status:         shared.PaymentPaid,
			Source:         queries.SourceLedger,
			Phone:          "5511988887777",
		}
		s.mockPayments.EXPECT().PaymentStatus(gomock.Any(), "ORD1").Return(view, nil).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/ORD1/status", nil, s.token)
		var got queries.PaymentStatusView
		testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(shared.PaymentPaid, got.Status)
		s.Equal(queries.SourceLedger, got.Source)
	})

	s.Run("unknown order", func() {
		s.mockPayments.EXPECT().PaymentStatus(gomock.Any(), "NOPE").Return(nil, queries.ErrPaymentNotFound).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/NOPE/status", nil, s.token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})

	s.Run("ledger failure", func() {
		s.mockPayments.EXPECT().PaymentStatus(gomock.Any(), "ORD1").Return(nil, errs.New("db down")).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/ORD1/status", nil, s.token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *QueryHandlerTestSuite) TestContactStats() {
	s.Run("success", func() {
		view := &queries.ContactStatsView{
			Range:      queries.DayRange{From: "2025-03-01", To: "2025-03-31"},
			Total:      3,
			ByInstance: []queries.InstanceCount{{Instance: "instance-1", Count: 2}, {Instance: "instance-2", Count: 1}},
		}
		s.mockContacts.EXPECT().ContactStats(gomock.Any(), "2025-03-01", "2025-03-31").Return(view, nil).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contacts/stats?from=2025-03-01&to=2025-03-31", nil, s.token)
		var got queries.ContactStatsView
		testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(*view, got)
	})

	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "invalid day", err: errs.Wrap(queries.ErrInvalidDay, "03/01/2025"), code: http.StatusBadRequest, message: "Invalid day"},
		{name: "inverted range", err: queries.ErrInvalidRange, code: http.StatusBadRequest, message: "from must not be after to"},
		{name: "repository failure", err: errs.New("boom"), code: http.StatusInternalServerError, message: "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockContacts.EXPECT().ContactStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contacts/stats?from=x", nil, s.token)
			testhttp.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
		})
	}
}

func (s *QueryHandlerTestSuite) TestExportContacts() {
	s.Run("writes a csv attachment", func() {
		r := queries.DayRange{From: "2025-03-10", To: "2025-03-10"}
		s.mockContacts.EXPECT().ResolveRange("", "").Return(r, nil).Times(1)
		s.mockContacts.EXPECT().ExportContacts(gomock.Any(), "2025-03-10", "2025-03-10", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, w io.Writer) (int, error) {
				_, err := io.WriteString(w, "telefone,instancia,observacoes\n5511988887777,instance-1,dia 2025-03-10\n")
				return 1, err
			}).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contacts/export", nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
		testhttp.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "text/csv; charset=utf-8",
			"Content-Disposition": `attachment; filename="contatos_2025-03-10_2025-03-10.csv"`,
		})
		s.True(bytes.HasPrefix(rec.Body.Bytes(), []byte("telefone,instancia,observacoes\n")))
	})

	s.Run("invalid range never queries", func() {
		s.mockContacts.EXPECT().ResolveRange("2025-03-11", "2025-03-10").Return(queries.DayRange{}, queries.ErrInvalidRange).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contacts/export?from=2025-03-11&to=2025-03-10", nil, s.token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *QueryHandlerTestSuite) TestArchiveContacts() {
	s.Run("created", func() {
		view := &queries.ArchiveView{
			Range: queries.DayRange{From: "2025-03-01", To: "2025-03-31"},
			Key:   "contacts/contatos_2025-03-01_2025-03-31.csv",
			Rows:  12,
		}
		s.mockArchiver.EXPECT().Archive(gomock.Any(), "2025-03-01", "2025-03-31").Return(view, nil).Times(1)

		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/contacts/archive?from=2025-03-01&to=2025-03-31", nil, s.token)
		var got queries.ArchiveView
		testhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(*view, got)
	})

	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "not configured", err: queries.ErrArchiveDisabled, code: http.StatusServiceUnavailable, message: "Contact archive is not configured"},
		{name: "inverted range", err: queries.ErrInvalidRange, code: http.StatusBadRequest, message: "from must not be after to"},
		{name: "upload failure", err: errs.New("access denied"), code: http.StatusInternalServerError, message: "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockArchiver.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/contacts/archive", nil, s.token)
			testhttp.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
		})
	}
}

func (s *QueryHandlerTestSuite) TestDashboardSnapshot() {
	view := &queries.SnapshotView{
		Conversations: []queries.ConversationView{{Phone: "5511988887777", Status: "pix_pending", Amount: "97.00"}},
		Health:        queries.HealthView{Active: 1, ByStatus: map[string]int{"pix_pending": 1}},
	}
	s.mockDashboard.EXPECT().Snapshot(gomock.Any()).Return(view, nil).Times(1)

	rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/dashboard/snapshot", nil, s.token)
	var got queries.SnapshotView
	testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Len(got.Conversations, 1)
	s.Equal("97.00", got.Conversations[0].Amount)
	s.Equal(1, got.Health.Active)
}
