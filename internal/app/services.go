// Package app provides service initialization.
package app

import (
	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.BaseCalculator
}

// InitializeServices initializes business logic services.
func InitializeServices(cacheCfg config.CacheConfig, calcCfg config.CalculatorConfig) *ServiceComponents {
	var opts []service.Option

	thresholds := service.DefaultThresholds()
	if calcCfg.DisplacementWarnFactor > 0 {
		thresholds.DisplacementWarnFactor = calcCfg.DisplacementWarnFactor
	}
	if calcCfg.RatioInversionTolerance > 0 {
		thresholds.RatioInversionTolerance = calcCfg.RatioInversionTolerance
	}
	opts = append(opts, service.WithThresholds(thresholds))

	if cacheCfg.Size > 0 {
		opts = append(opts, service.WithCache(cacheCfg.Size, cacheCfg.TTL))
	}

	calculator := service.NewDensityRatioCalculator(opts...)

	return &ServiceComponents{
		Calculator: calculator,
	}
}
