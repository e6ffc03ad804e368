package reservation

type PriceCalculator interface {
	TotalPrice(unitPrice Money, period StayPeriod) Money
}

// NightlyPriceCalculator charges the unit price once per night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) TotalPrice(unitPrice Money, period StayPeriod) Money {
	return unitPrice.Times(period.Nights())
}
