package conversation

import "pix-funnel/internal/pkg/errs"

// Transition errors. Callers treat all of them as "drop the trigger, no state change".
var (
	ErrAdvanceLocked   = errs.New("advancement already in flight")
	ErrFunnelExhausted = errs.New("funnel exhausted")
	ErrNoPendingStep   = errs.New("no pending step")
	ErrNotPending      = errs.New("conversation is not pending payment")
	ErrNotConvertible  = errs.New("conversation cannot convert from current status")
	ErrAlreadyPaid     = errs.New("conversation is already paid")
)

var (
	ErrIdentityRequired       = errs.New("identity is required")
	ErrOrderReferenceRequired = errs.New("order reference is required")
	ErrInvalidStatus          = errs.New("invalid conversation status")
)
