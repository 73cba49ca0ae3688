package reservation

import "github.com/google/uuid"

type PriceCalculator interface {
	CalculateCents(resourceID uuid.UUID, window TimeWindow) int64
}

type HourlyPriceCalculator struct {
	HourlyRateCents int64
}

func NewHourlyPriceCalculator(hourlyRateCents int64) *HourlyPriceCalculator {
	return &HourlyPriceCalculator{HourlyRateCents: hourlyRateCents}
}

func (pc *HourlyPriceCalculator) CalculateCents(_ uuid.UUID, window TimeWindow) int64 {
	return int64(window.Hours()*float64(pc.HourlyRateCents) + 0.5)
}
