package estimate_price

import (
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

type PricingEngine interface {
	Compute(serviceType domain.ServiceType, surface float64, frequency domain.Frequency, addOnIDs []string) pricing.Estimate
}

type Logger interface {
	Warn(format string, v ...interface{})
}
