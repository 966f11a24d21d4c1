package conversation

type Status string

const (
	StatusApproved   Status = "approved"
	StatusPixPending Status = "pix_pending"
	StatusTimeout    Status = "timeout"
	StatusConverted  Status = "convertido"
	StatusCompleted  Status = "completed"
)

const (
	// MaxSteps is the number of follow-up steps a funnel sends before it is exhausted.
	MaxSteps = 3

	UnknownProduct = "UNKNOWN"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApproved, StatusPixPending, StatusTimeout, StatusConverted, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports statuses that the retention sweeper evicts after the grace window.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusTimeout
}

// IsPaid reports whether the status implies the order has been paid.
func (s Status) IsPaid() bool {
	return s == StatusApproved || s == StatusConverted
}

func (s Status) String() string { return string(s) }
