//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/domain/model"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cacheCfg config.CacheConfig
		calcCfg  config.CalculatorConfig
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates calculator with default config",
			cacheCfg: config.CacheConfig{
				Size: 0,
				TTL:  0,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Calculator)
			},
		},
		{
			name: "creates calculator with cache enabled",
			cacheCfg: config.CacheConfig{
				Size: 1000,
				TTL:  5 * time.Minute,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Calculator)
			},
		},
		{
			name: "creates calculator with custom thresholds",
			calcCfg: config.CalculatorConfig{
				DisplacementWarnFactor:  2.0,
				RatioInversionTolerance: 0.05,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Calculator)
			},
		},
		{
			name: "zero cache size disables cache",
			cacheCfg: config.CacheConfig{
				Size: 0,
				TTL:  5 * time.Minute,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Calculator)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cacheCfg, tt.calcCfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Calculator(t *testing.T) {
	components := InitializeServices(config.CacheConfig{
		Size: 100,
		TTL:  time.Minute,
	}, config.CalculatorConfig{})

	require.NotNil(t, components.Calculator)

	result, err := components.Calculator.Calculate(model.Formulation{
		Count:        1,
		BlankWeightG: 2.0,
		BaseDensity:  1.0,
		Ingredients: []model.Ingredient{
			{Name: "Drug A", Amount: 200, Unit: model.UnitMilligram, Density: 3.0},
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 1.9333333333, result.RequiredBaseG, 1e-9)
}
