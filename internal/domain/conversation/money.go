package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"pix-funnel/internal/pkg/errs"
)

var ErrInvalidAmount = errs.New("invalid amount")

// Money is an amount in cents.
type Money int64

func NewMoneyFromFloat(v float64) (Money, error) {
	if v < 0 {
		return 0, ErrInvalidAmount
	}
	return Money(v*100 + 0.5), nil
}

// ParseMoney accepts "97", "97.00", "97,00" and "1.234,56".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.Wrap(ErrInvalidAmount, err.Error())
	}
	return NewMoneyFromFloat(v)
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Float64() float64 { return float64(m) / 100 }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}
