// Package service contains the business logic for the suppository service.
package service

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/pharmlab/suppository-service/internal/domain/model"
	"github.com/pharmlab/suppository-service/internal/service/cache"
)

// Thresholds configures the advisory warning heuristics.
type Thresholds struct {
	// DisplacementWarnFactor flags total displaced base above this multiple
	// of the estimated blank weight.
	DisplacementWarnFactor float64
	// RatioInversionTolerance is the absolute tolerance used when comparing
	// a caller-declared ratio against the computed ratio and its reciprocal.
	RatioInversionTolerance float64
}

// DefaultThresholds returns the default advisory thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DisplacementWarnFactor:  1.0,
		RatioInversionTolerance: 1e-3,
	}
}

// BaseCalculator defines the interface for density-ratio base calculations.
type BaseCalculator interface {
	// Calculate runs the five-step method over a validated formulation.
	Calculate(f model.Formulation) (model.CalculationResult, error)
	// InvalidateCache clears the result cache.
	InvalidateCache()
}

// Option configures a DensityRatioCalculator.
type Option func(*DensityRatioCalculator)

// DensityRatioCalculator implements BaseCalculator using the five-step
// density-ratio method. The calculation is pure: identical inputs yield
// identical results, which makes results safely cacheable.
type DensityRatioCalculator struct {
	thresholds Thresholds
	cache      cache.Cache
}

// NewDensityRatioCalculator creates a calculator with the given options.
func NewDensityRatioCalculator(opts ...Option) *DensityRatioCalculator {
	c := &DensityRatioCalculator{
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithThresholds sets custom advisory thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *DensityRatioCalculator) {
		if t.DisplacementWarnFactor > 0 {
			c.thresholds.DisplacementWarnFactor = t.DisplacementWarnFactor
		}
		if t.RatioInversionTolerance > 0 {
			c.thresholds.RatioInversionTolerance = t.RatioInversionTolerance
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(c *DensityRatioCalculator) {
		if capacity > 0 {
			c.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(cc cache.Cache) Option {
	return func(c *DensityRatioCalculator) {
		c.cache = cc
	}
}

// Calculate validates the formulation and produces the five step values.
// A *model.ValidationError is returned before any computation when an
// input constraint is violated; advisory conditions surface as warnings on
// the result, never as errors.
func (c *DensityRatioCalculator) Calculate(f model.Formulation) (model.CalculationResult, error) {
	if err := f.Validate(); err != nil {
		return model.CalculationResult{}, err
	}

	if c.cache != nil {
		key := formulationKey(f)
		// The key is a hash of the inputs, so a hit must be confirmed
		// against the stored formulation before the result is reused.
		if entry, ok := c.cache.Get(key); ok && entry.Input.Equal(f) {
			return entry.Result, nil
		}
		result := c.calculateCore(f)
		c.cache.Set(key, cache.Entry{Input: f, Result: result})
		return result, nil
	}

	return c.calculateCore(f), nil
}

// calculateCore runs the five steps over an already validated formulation.
// All arithmetic is in grams and g/mL; nothing is rounded here.
func (c *DensityRatioCalculator) calculateCore(f model.Formulation) model.CalculationResult {
	count := float64(f.Count)

	result := model.CalculationResult{
		Count:       f.Count,
		Ingredients: []model.IngredientStep{},
	}

	// Step 2 first: the blank estimate does not depend on the actives.
	result.EstimatedBlankBaseWeightG = f.BlankWeightG * count

	var warnings []model.Warning
	for _, ing := range f.Ingredients {
		if !ing.Active() {
			continue
		}

		// Step 1 contribution: per-suppository grams times count.
		totalG := ing.AmountGrams() * count
		result.TotalAPIAmountG += totalG

		// Step 3: ratio is ingredient density over base density.
		ratio := ing.Density / f.BaseDensity

		// Step 4 contribution: dividing by the ratio converts the
		// ingredient mass into the base mass it displaces. Pooling all
		// actives under one ratio is wrong whenever densities differ.
		displaced := totalG / ratio

		result.Ingredients = append(result.Ingredients, model.IngredientStep{
			Name:         ing.Name,
			TotalAmountG: totalG,
			Ratio:        ratio,
			DisplacedG:   displaced,
		})
		result.BaseDisplacedG += displaced

		if w, ok := c.checkDeclaredRatio(ing, ratio); ok {
			warnings = append(warnings, w)
		}
	}

	// Step 5.
	result.RequiredBaseG = result.EstimatedBlankBaseWeightG - result.BaseDisplacedG

	if result.RequiredBaseG < 0 {
		warnings = append(warnings, model.Warning{Code: model.WarnNegativeRequiredBase})
	}
	if result.BaseDisplacedG > c.thresholds.DisplacementWarnFactor*result.EstimatedBlankBaseWeightG {
		warnings = append(warnings, model.Warning{Code: model.WarnDisplacementExceedsBlank})
	}
	result.Warnings = warnings

	return result
}

// checkDeclaredRatio compares a caller-declared Step-3 ratio against the
// computed one. A declared value that disagrees with the computed ratio
// but matches its reciprocal is the classic inverted-ratio mistake.
func (c *DensityRatioCalculator) checkDeclaredRatio(ing model.Ingredient, ratio float64) (model.Warning, bool) {
	if ing.DeclaredRatio <= 0 {
		return model.Warning{}, false
	}
	tol := c.thresholds.RatioInversionTolerance
	if math.Abs(ing.DeclaredRatio-ratio) <= tol {
		return model.Warning{}, false
	}
	if math.Abs(ing.DeclaredRatio-1.0/ratio) <= tol {
		return model.Warning{
			Code:       model.WarnSuspectedRatioInversion,
			Ingredient: ing.Name,
		}, true
	}
	return model.Warning{}, false
}

// InvalidateCache clears the calculation cache.
func (c *DensityRatioCalculator) InvalidateCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// formulationKey derives a cache key from the exact input bits. Two
// formulations hash equal only when every field, including ingredient
// order, is identical.
func formulationKey(f model.Formulation) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		writeUint(math.Float64bits(v))
	}

	writeUint(uint64(f.Count))
	writeFloat(f.BlankWeightG)
	writeFloat(f.BaseDensity)
	for _, ing := range f.Ingredients {
		h.Write([]byte(ing.Name))
		h.Write([]byte(ing.Unit))
		writeFloat(ing.Amount)
		writeFloat(ing.Density)
		writeFloat(ing.DeclaredRatio)
	}
	return h.Sum64()
}
