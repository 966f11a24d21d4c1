package commands

import "pix-funnel/internal/pkg/errs"

// Malformed triggers. Webhook handlers log them and still acknowledge.
var (
	ErrMissingIdentity       = errs.New("trigger has no usable identity")
	ErrMissingOrderReference = errs.New("payment has no order reference")
)
