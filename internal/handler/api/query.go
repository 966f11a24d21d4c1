package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pix-funnel/internal/handler/httperr"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// QueryHandler serves the admin read API.
type QueryHandler struct {
	payments  queries.PaymentQueries
	contacts  queries.ContactQueries
	archiver  queries.ContactArchiver
	dashboard queries.DashboardQueries
	slogger   *slog.Logger
}

func NewQueryHandler(
	payments queries.PaymentQueries,
	contacts queries.ContactQueries,
	archiver queries.ContactArchiver,
	dashboard queries.DashboardQueries,
	slogger *slog.Logger,
) *QueryHandler {
	return &QueryHandler{
		payments:  payments,
		contacts:  contacts,
		archiver:  archiver,
		dashboard: dashboard,
		slogger:   slogger,
	}
}

// @Summary Payment status
// @Description Latest known status of an order, from the live conversation or the payment ledger.
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Param orderReference path string true "Order reference"
// @Success 200 {object} queries.PaymentStatusView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/{orderReference}/status [get]
func (h *QueryHandler) PaymentStatus(c *gin.Context) {
	view, err := h.payments.PaymentStatus(c.Request.Context(), c.Param("orderReference"))
	if err != nil {
		if errors.Is(err, queries.ErrPaymentNotFound) {
			httperr.NotFound(c, err, "Payment not found")
			return
		}
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Contact statistics
// @Description Contacts saved per instance within a day range. Empty bounds default to today.
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} queries.ContactStatsView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/contacts/stats [get]
func (h *QueryHandler) ContactStats(c *gin.Context) {
	view, err := h.contacts.ContactStats(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.abortRangeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Export contacts
// @Description CSV of the contacts saved within a day range.
// @Tags queries
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/contacts/export [get]
func (h *QueryHandler) ExportContacts(c *gin.Context) {
	r, err := h.contacts.ResolveRange(c.Query("from"), c.Query("to"))
	if err != nil {
		h.abortRangeError(c, err)
		return
	}

	// buffered so a failed query can still answer with a JSON error
	var buf bytes.Buffer
	n, err := h.contacts.ExportContacts(c.Request.Context(), r.From, r.To, &buf)
	if err != nil {
		h.abortRangeError(c, err)
		return
	}

	subject, _ := middleware.GetSubject(c)
	h.slogger.Info("contacts exported",
		slog.String("subject", subject),
		slog.String("from", r.From),
		slog.String("to", r.To),
		slog.Int("rows", n))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, queries.ExportFileName(r)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Archive contacts
// @Description Writes the CSV export of a day range to the archive bucket.
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 201 {object} queries.ArchiveView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/contacts/archive [post]
func (h *QueryHandler) ArchiveContacts(c *gin.Context) {
	view, err := h.archiver.Archive(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, queries.ErrArchiveDisabled) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Contact archive is not configured", nil)
			return
		}
		h.abortRangeError(c, err)
		return
	}

	subject, _ := middleware.GetSubject(c)
	h.slogger.Info("contacts archived",
		slog.String("subject", subject),
		slog.String("key", view.Key),
		slog.Int("rows", view.Rows))
	c.JSON(http.StatusCreated, view)
}

// @Summary Dashboard snapshot
// @Description Every live conversation plus process health counters.
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SnapshotView
// @Failure 401 {object} httperr.Response
// @Router /api/dashboard/snapshot [get]
func (h *QueryHandler) DashboardSnapshot(c *gin.Context) {
	view, err := h.dashboard.Snapshot(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QueryHandler) abortRangeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidDay):
		httperr.BadRequest(c, err, "Invalid day, expected YYYY-MM-DD")
	case errors.Is(err, queries.ErrInvalidRange):
		httperr.BadRequest(c, err, "from must not be after to")
	default:
		httperr.Internal(c, err)
	}
}
