package queries

import "pix-funnel/internal/pkg/errs"

var (
	ErrPaymentNotFound = errs.New("payment not found")
	ErrInvalidDay      = errs.New("day must be formatted as YYYY-MM-DD")
	ErrInvalidRange    = errs.New("from must not be after to")
	ErrArchiveDisabled = errs.New("contact archive is not configured")
)
