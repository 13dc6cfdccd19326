package recommendation

// CurrencyNormalizer converts catalog prices into USD before any budget
// arithmetic.
type CurrencyNormalizer interface {
	NormalizePrice(amount float64, currency string) float64
}

// StaticCurrencyNormalizer applies a fixed conversion table. Unknown
// currencies pass through unchanged.
type StaticCurrencyNormalizer struct{}

func (StaticCurrencyNormalizer) NormalizePrice(amount float64, currency string) float64 {
	if currency == "KHR" {
		// approximate rate: 4000 KHR = 1 USD
		return amount / 4000
	}
	return amount
}
