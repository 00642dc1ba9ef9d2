package dal

import "math"

const (
	dealPriceBaseline   = 50000.0
	dealMileagePivot    = 100000.0
	dealMileageSpan     = 300000.0
	dealMileageMinRatio = 0.5
	dealMileageMaxRatio = 1.2
)

// DealScore rates a listing between 0 and 1, cheaper and less driven being
// better. Prices are measured against a 50k baseline and a mileage away from
// 100k km scales the result by at most 0.5 to 1.2. The score is rounded to
// three decimals. An unknown price has no score; an unknown mileage is neutral.
func DealScore(price, mileage int) *float64 {
	if price <= 0 {
		return nil
	}
	normalized := clamp(float64(price)/dealPriceBaseline, 0, 1)

	factor := 1.0
	if mileage > 0 {
		factor = clamp(1-(float64(mileage)-dealMileagePivot)/dealMileageSpan, dealMileageMinRatio, dealMileageMaxRatio)
	}

	score := math.Round(clamp((1-normalized)*factor, 0, 1)*1000) / 1000
	return &score
}

// WithDealScore returns l with its deal score computed from price and mileage.
func (l Listing) WithDealScore() Listing {
	l.DealScore = DealScore(l.Price, l.Mileage)
	return l
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
