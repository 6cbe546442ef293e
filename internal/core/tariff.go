package core

// Tariff estimates a bill as a flat rate per unit plus a fixed base fee.
type Tariff struct {
	Rate    float64
	BaseFee float64
}

var DefaultTariff = Tariff{Rate: 0.12, BaseFee: 10.0}

func (t Tariff) Estimate(units float64) float64 {
	// the conversion keeps the product rounded on its own instead of fused into a multiply-add
	return float64(units*t.Rate) + t.BaseFee
}
