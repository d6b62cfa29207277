// Package dto defines Data Transfer Objects for HTTP request and response
// handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/pharmlab/suppository-service/internal/domain/model"
)

// ValidationError is a field-level input violation. It aliases the domain
// type so handler code can match errors from either layer with one check.
type ValidationError = model.ValidationError

// IngredientRequest is one active ingredient group of a calculation request.
//
// @Description Active ingredient input: name, amount with unit, density
// @Example {"name": "Drug A", "amount": 200, "unit": "mg", "density": 3.0}
type IngredientRequest struct {
	// Name is the display label for the ingredient.
	Name string `json:"name"`
	// Amount is the per-suppository dose; entries with zero amount are ignored.
	Amount float64 `json:"amount" example:"200" minimum:"0"`
	// Unit is mg or g; defaults to g when omitted.
	Unit string `json:"unit" example:"mg"`
	// Density is the ingredient density in g/mL.
	Density float64 `json:"density" example:"3.0"`
	// DeclaredRatio optionally carries the student's own Step-3 answer for
	// the inversion check.
	DeclaredRatio float64 `json:"declared_ratio,omitempty"`
} // @name IngredientRequest

// CalculateBaseRequest is the JSON request body for the base calculation
// endpoint. Either base_density or a catalog base_name must be supplied.
//
// @Description Request to run the five-step density-ratio base calculation
// @Example {"count": 1, "blank_weight_g": 2.0, "base_density": 1.0, "apis": [{"name": "API 1", "amount": 200, "unit": "mg", "density": 3.0}]}
type CalculateBaseRequest struct {
	// Count is the number of suppositories to produce. Must be >= 1.
	Count int `json:"count" binding:"required,gt=0" example:"1" minimum:"1"`
	// BlankWeightG is the average blank weight per unit in grams.
	BlankWeightG float64 `json:"blank_weight_g" binding:"required,gt=0" example:"2.0"`
	// BaseDensity is the base density in g/mL. Optional when BaseName is set.
	BaseDensity float64 `json:"base_density,omitempty" example:"1.0"`
	// BaseName optionally references a catalog base instead of a density.
	BaseName string `json:"base_name,omitempty" example:"cocoa butter"`
	// APIs are the active ingredients, at most 5 groups.
	APIs []IngredientRequest `json:"apis" binding:"max=5"`
	// IncludeSteps asks for the labeled step-by-step working and coaching.
	IncludeSteps bool `json:"include_steps,omitempty"`
} // @name CalculateBaseRequest

// Validate performs custom validation beyond the binding tags. Returns a
// *ValidationError naming the offending field, nil otherwise.
func (r *CalculateBaseRequest) Validate() error {
	if r.BaseName == "" && r.BaseDensity <= 0 {
		return &ValidationError{Field: "base_density", Message: "must be greater than zero (or supply base_name)"}
	}
	return nil
}

// Formulation maps the request onto the domain input, using the resolved
// base density. Unit defaults to grams when omitted; the domain layer
// validates the rest.
func (r *CalculateBaseRequest) Formulation(baseDensity float64) model.Formulation {
	ingredients := make([]model.Ingredient, 0, len(r.APIs))
	for _, api := range r.APIs {
		unit := model.Unit(api.Unit)
		if api.Unit == "" {
			unit = model.UnitGram
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:          api.Name,
			Amount:        api.Amount,
			Unit:          unit,
			Density:       api.Density,
			DeclaredRatio: api.DeclaredRatio,
		})
	}
	return model.Formulation{
		Count:        r.Count,
		BlankWeightG: r.BlankWeightG,
		BaseDensity:  baseDensity,
		Ingredients:  ingredients,
	}
}

// ParseFormulationRequest is the JSON request body for the free-text
// intake endpoint.
//
// @Description One-line formulation in the chat shorthand, e.g. "N=1; blank=2 g; base=1.0 g/mL; API: 200 mg (rho=3.0)"
type ParseFormulationRequest struct {
	// Text is the one-line formulation to parse.
	Text string `json:"text" binding:"required" example:"N=12; blank 1.8 g; base 0.95; API: Drug A 150 mg, rho 1.2"`
	// IncludeSteps asks for the step-by-step working when calculation runs.
	IncludeSteps bool `json:"include_steps,omitempty"`
} // @name ParseFormulationRequest

// UpdateBasesRequest is the JSON request body for replacing the base catalog.
type UpdateBasesRequest struct {
	// Bases is the list of named bases with densities in g/mL.
	Bases []BaseEntry `json:"bases" binding:"required,min=1,dive"`
	// CreatedBy identifies who created this catalog version.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateBasesRequest

// BaseEntry is one named base of the catalog.
type BaseEntry struct {
	// Name is the catalog key, matched case-insensitively.
	Name string `json:"name" binding:"required"`
	// DensityGML is the base density in g/mL.
	DensityGML float64 `json:"density_g_ml" binding:"required,gt=0"`
} // @name BaseEntry
