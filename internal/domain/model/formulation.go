// Package model defines the core domain entities for the suppository service.
package model

import "strconv"

// MaxIngredients is the maximum number of active ingredients a single
// formulation may carry.
const MaxIngredients = 5

// Unit is the mass unit an ingredient amount is expressed in.
type Unit string

const (
	// UnitMilligram expresses amounts in milligrams.
	UnitMilligram Unit = "mg"
	// UnitGram expresses amounts in grams.
	UnitGram Unit = "g"
)

// Valid reports whether the unit is one of the supported mass units.
func (u Unit) Valid() bool {
	return u == UnitMilligram || u == UnitGram
}

// Grams converts an amount expressed in this unit to grams.
func (u Unit) Grams(amount float64) float64 {
	if u == UnitMilligram {
		return amount / 1000.0
	}
	return amount
}

// Ingredient is one active pharmaceutical ingredient of a formulation.
//
// @Description Active ingredient with per-suppository amount and density
// @Example {"name": "Drug A", "amount": 200, "unit": "mg", "density": 3.0}
type Ingredient struct {
	// Name is the display label; it plays no role in the arithmetic.
	Name string `json:"name"`
	// Amount is the per-suppository dose expressed in Unit.
	Amount float64 `json:"amount"`
	// Unit is the mass unit of Amount (mg or g).
	Unit Unit `json:"unit"`
	// Density is the ingredient density in g/mL.
	Density float64 `json:"density"`
	// DeclaredRatio is an optional caller-supplied Step-3 ratio used only
	// for the ratio-inversion advisory check.
	DeclaredRatio float64 `json:"declared_ratio,omitempty"`
}

// AmountGrams returns the per-suppository amount normalized to grams.
func (i Ingredient) AmountGrams() float64 {
	return i.Unit.Grams(i.Amount)
}

// Active reports whether the ingredient participates in the calculation.
// Zero-amount entries are treated as absent.
func (i Ingredient) Active() bool {
	return i.Amount > 0
}

// Formulation holds the validated inputs of one base calculation.
type Formulation struct {
	// Count is the number of suppositories to produce.
	Count int `json:"count"`
	// BlankWeightG is the average mass in grams of one suppository molded
	// from pure base.
	BlankWeightG float64 `json:"blank_weight_g"`
	// BaseDensity is the base density in g/mL.
	BaseDensity float64 `json:"base_density"`
	// Ingredients are the active ingredients, at most MaxIngredients.
	Ingredients []Ingredient `json:"apis"`
}

// Equal reports whether two formulations carry identical inputs,
// ingredient order included.
func (f Formulation) Equal(other Formulation) bool {
	if f.Count != other.Count ||
		f.BlankWeightG != other.BlankWeightG ||
		f.BaseDensity != other.BaseDensity ||
		len(f.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i := range f.Ingredients {
		if f.Ingredients[i] != other.Ingredients[i] {
			return false
		}
	}
	return true
}

// ValidationError names the input field that violated a constraint.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the field-qualified validation message.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the constraints every calculation input must satisfy.
// The first violated constraint is returned as a *ValidationError.
func (f Formulation) Validate() error {
	if f.Count < 1 {
		return &ValidationError{Field: "count", Message: "must be a positive integer"}
	}
	if f.BlankWeightG <= 0 {
		return &ValidationError{Field: "blank_weight_g", Message: "must be greater than zero"}
	}
	if f.BaseDensity <= 0 {
		return &ValidationError{Field: "base_density", Message: "must be greater than zero"}
	}
	if len(f.Ingredients) > MaxIngredients {
		return &ValidationError{Field: "apis", Message: "at most 5 ingredients are supported"}
	}
	for idx, ing := range f.Ingredients {
		if !ing.Active() {
			continue
		}
		if !ing.Unit.Valid() {
			return &ValidationError{Field: ingredientField(idx, "unit"), Message: "must be mg or g"}
		}
		if ing.Density <= 0 {
			return &ValidationError{Field: ingredientField(idx, "density"), Message: "must be greater than zero"}
		}
	}
	return nil
}

func ingredientField(idx int, name string) string {
	return "apis[" + strconv.Itoa(idx) + "]." + name
}
