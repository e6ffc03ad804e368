package reservation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD or RFC3339")
	ErrInvalidStayPeriod  = errors.New("checkOut must be after checkIn")
	ErrInvalidPaymentMode = errors.New("paymentMode must be one of pay_on_arrival, card, other")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrStayTooLong        = fmt.Errorf("stay cannot exceed %d nights", MaxStayNights)
	ErrTotalTooLarge      = errors.New("total price exceeds the supported amount")
)

const (
	dateLayout = "2006-01-02"

	// MaxStayNights keeps every stay well inside time.Duration and the
	// nights column.
	MaxStayNights = 3650
	// MaxGuestCount is the largest value the guest_count column holds.
	MaxGuestCount = math.MaxInt32
)

// maxTotal is the first amount that no longer fits NUMERIC(12,2).
var maxTotal = decimal.New(1, 10)

// ParseStayDate accepts a calendar date or a full RFC3339 timestamp.
func ParseStayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	// Sub saturates past ~292 years, which still lands above the limit
	if checkOut.Sub(checkIn) > MaxStayNights*24*time.Hour {
		return StayPeriod{}, ErrStayTooLong
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return StayPeriod{}, fmt.Errorf("checkIn: %w", err)
	}
	out, err := ParseStayDate(checkOut)
	if err != nil {
		return StayPeriod{}, fmt.Errorf("checkOut: %w", err)
	}
	return NewStayPeriod(in, out)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights rounds partial days up and never returns less than one.
func (p StayPeriod) Nights() int {
	days := p.checkOut.Sub(p.checkIn).Hours() / 24
	n := int(math.Ceil(days))
	if n < 1 {
		return 1
	}
	return n
}

type GuestCount struct {
	value int
}

// NewGuestCount falls back to one guest for anything outside 1..MaxGuestCount.
func NewGuestCount(n int) GuestCount {
	if n < 1 || n > MaxGuestCount {
		n = 1
	}
	return GuestCount{value: n}
}

func (g GuestCount) Value() int {
	return g.value
}

type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount.Round(2)}, nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
