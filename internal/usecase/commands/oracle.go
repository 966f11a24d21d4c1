package commands

import (
	"context"
	"log/slog"

	"pix-funnel/internal/infra"
	"pix-funnel/internal/usecase/shared"
)

// LedgerOracle answers "is this order paid" from the payment ledger.
type LedgerOracle struct {
	ledger shared.PaymentLedger
}

func NewLedgerOracle(ledger shared.PaymentLedger) *LedgerOracle {
	return &LedgerOracle{ledger: ledger}
}

func (o *LedgerOracle) IsPaid(ctx context.Context, orderReference string) (bool, error) {
	entry, err := o.ledger.Latest(ctx, orderReference)
	if err != nil {
		if infra.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return entry.Status == shared.PaymentPaid, nil
}

// FallbackOracle asks the gateway first. The ledger answers only when the
// gateway cannot.
type FallbackOracle struct {
	primary  PaymentOracle
	fallback PaymentOracle
	slogger  *slog.Logger
}

func NewFallbackOracle(primary, fallback PaymentOracle, slogger *slog.Logger) *FallbackOracle {
	return &FallbackOracle{primary: primary, fallback: fallback, slogger: slogger}
}

func (o *FallbackOracle) IsPaid(ctx context.Context, orderReference string) (bool, error) {
	paid, err := o.primary.IsPaid(ctx, orderReference)
	if err == nil {
		return paid, nil
	}
	o.slogger.Warn("payment status lookup failed, using ledger",
		slog.String("order_reference", orderReference),
		slog.Any("error", err))
	return o.fallback.IsPaid(ctx, orderReference)
}
