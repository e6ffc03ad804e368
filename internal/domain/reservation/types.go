package reservation

import "strings"

type PaymentMode string

const (
	PaymentModePayOnArrival PaymentMode = "pay_on_arrival"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeOther        PaymentMode = "other"
)

// legacy clients still send "cod"
const paymentModeCODAlias = "cod"

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModePayOnArrival, PaymentModeCard, PaymentModeOther:
		return true
	default:
		return false
	}
}

// ParsePaymentMode treats an empty value as pay on arrival.
func ParsePaymentMode(s string) (PaymentMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", paymentModeCODAlias:
		return PaymentModePayOnArrival, nil
	}
	mode := PaymentMode(strings.ReplaceAll(s, "-", "_"))
	if !mode.IsValid() {
		return "", ErrInvalidPaymentMode
	}
	return mode, nil
}
