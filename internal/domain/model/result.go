package model

// WarningCode identifies an advisory condition attached to a successful
// calculation. Warnings never block the numeric result.
type WarningCode string

const (
	// WarnNegativeRequiredBase flags a required base below zero: the
	// actives displace more base than the blanks would contain.
	WarnNegativeRequiredBase WarningCode = "negative_required_base"
	// WarnDisplacementExceedsBlank flags a total displaced base that is
	// implausibly large relative to the estimated blank weight.
	WarnDisplacementExceedsBlank WarningCode = "displacement_exceeds_blank"
	// WarnSuspectedRatioInversion flags a caller-declared Step-3 ratio
	// that matches the reciprocal of the correct one.
	WarnSuspectedRatioInversion WarningCode = "suspected_ratio_inversion"
)

// Warning is one advisory condition on a calculation result.
//
// @Description Advisory warning attached to a successful calculation
type Warning struct {
	// Code identifies the flagged condition.
	Code WarningCode `json:"code"`
	// Ingredient names the ingredient the warning refers to, when the
	// condition is per-ingredient.
	Ingredient string `json:"ingredient,omitempty"`
	// Message is the localized advisory text, filled at the boundary.
	Message string `json:"message,omitempty"`
}

// IngredientStep is the per-ingredient working of Steps 3 and 4.
//
// @Description Per-ingredient density ratio and displaced base
type IngredientStep struct {
	// Name is the ingredient display label.
	Name string `json:"name"`
	// TotalAmountG is the batch total of this ingredient in grams.
	TotalAmountG float64 `json:"total_amount_g"`
	// Ratio is the Step-3 density ratio, ingredient density over base density.
	Ratio float64 `json:"ratio"`
	// DisplacedG is the base mass in grams this ingredient displaces.
	DisplacedG float64 `json:"displaced_g"`
}

// CalculationResult carries the five step values of the density-ratio
// method plus advisory warnings.
//
// @Description Complete five-step calculation result
type CalculationResult struct {
	// Count echoes the number of suppositories calculated for.
	Count int `json:"count"`
	// TotalAPIAmountG is Step 1: the batch total of all actives in grams.
	TotalAPIAmountG float64 `json:"total_api_amount_g"`
	// EstimatedBlankBaseWeightG is Step 2: blank weight times count.
	EstimatedBlankBaseWeightG float64 `json:"estimated_blank_base_weight_g"`
	// Ingredients is the per-ingredient working of Steps 3 and 4.
	Ingredients []IngredientStep `json:"ingredients"`
	// BaseDisplacedG is Step 4: the summed displaced base in grams.
	BaseDisplacedG float64 `json:"base_displaced_g"`
	// RequiredBaseG is Step 5: estimated blank weight minus displaced base.
	// It may be negative; negative values are flagged, never clamped.
	RequiredBaseG float64 `json:"required_base_g"`
	// Warnings holds advisory conditions; empty for a clean result.
	Warnings []Warning `json:"warnings,omitempty"`
	// Steps holds the labeled step-by-step working when requested.
	Steps []string `json:"steps,omitempty"`
	// Coaching holds common-error guidance when steps are requested.
	Coaching []string `json:"coaching,omitempty"`
}

// RatioByName returns the Step-3 ratio table keyed by ingredient name.
func (r CalculationResult) RatioByName() map[string]float64 {
	ratios := make(map[string]float64, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ratios[ing.Name] = ing.Ratio
	}
	return ratios
}

// HasWarning reports whether the result carries the given warning code.
func (r CalculationResult) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
