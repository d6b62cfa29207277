package service

import (
	"fmt"
	"strings"

	"github.com/pharmlab/suppository-service/internal/domain/model"
)

// Explainer renders the labeled five-step working of a calculation and the
// common-error coaching notes shown to students.
type Explainer struct{}

// NewExplainer creates an Explainer.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Steps returns one line per step of the method, with the per-ingredient
// ratio and displacement working expanded. Values are formatted to four
// decimal places for display; the result itself stays unrounded.
func (e *Explainer) Steps(f model.Formulation, r model.CalculationResult) []string {
	lines := make([]string, 0, 5+2*len(r.Ingredients))

	lines = append(lines, fmt.Sprintf(
		"Step 1 - Total API amount: sum of amount per unit x %d = %.4f g",
		f.Count, r.TotalAPIAmountG))

	lines = append(lines, fmt.Sprintf(
		"Step 2 - Estimated blank base: %.4f g x %d = %.4f g",
		f.BlankWeightG, f.Count, r.EstimatedBlankBaseWeightG))

	lines = append(lines, "Step 3 - Density ratio rho(API)/rho(base):")
	for _, ing := range r.Ingredients {
		lines = append(lines, fmt.Sprintf(
			"  %s: %.4f/%.4f = %.4f",
			ing.Name, ing.Ratio*f.BaseDensity, f.BaseDensity, ing.Ratio))
	}

	lines = append(lines, "Step 4 - Base displaced by APIs:")
	for _, ing := range r.Ingredients {
		lines = append(lines, fmt.Sprintf(
			"  %s: %.4f g / %.4f = %.4f g",
			ing.Name, ing.TotalAmountG, ing.Ratio, ing.DisplacedG))
	}
	lines = append(lines, fmt.Sprintf(
		"  Total base displaced = %.4f g", r.BaseDisplacedG))

	lines = append(lines, fmt.Sprintf(
		"Step 5 - Required base: %.4f - %.4f = %.4f g",
		r.EstimatedBlankBaseWeightG, r.BaseDisplacedG, r.RequiredBaseG))

	return lines
}

// Coaching returns guidance on the classic mistakes: multiplying by the
// Step-3 ratio instead of dividing, and subtracting the API mass directly
// without any density correction. Each note shows the number the wrong
// path would have produced.
func (e *Explainer) Coaching(f model.Formulation, r model.CalculationResult) []string {
	var notes []string

	wrongDisplaced := 0.0
	for _, ing := range r.Ingredients {
		wrongDisplaced += ing.TotalAmountG * ing.Ratio
	}
	if !nearlyEqual(wrongDisplaced, r.BaseDisplacedG) {
		wrongRequired := r.EstimatedBlankBaseWeightG - wrongDisplaced
		notes = append(notes, fmt.Sprintf(
			"Reversing Step 3: multiplying API weight by rho(API)/rho(base) gives base displaced = %.4f g and required base = %.4f g. Divide by the ratio instead.",
			wrongDisplaced, wrongRequired))
	}

	directSubtract := r.EstimatedBlankBaseWeightG - r.TotalAPIAmountG
	if !nearlyEqual(directSubtract, r.RequiredBaseG) {
		notes = append(notes, fmt.Sprintf(
			"Subtracting API mass directly gives %.4f g and ignores volume displacement. Always compute displaced base from the densities.",
			directSubtract))
	}

	if r.RequiredBaseG < 0 {
		notes = append(notes,
			"Negative required base: the blank weight may be too small or the API load too high for this mold.")
	}

	return notes
}

// Summary joins the step lines into a single human-readable block, used by
// the audit log.
func (e *Explainer) Summary(f model.Formulation, r model.CalculationResult) string {
	return strings.Join(e.Steps(f, r), "\n")
}

const coachingEpsilon = 1e-9

func nearlyEqual(a, b float64) bool {
	diff := a - b
	return diff < coachingEpsilon && diff > -coachingEpsilon
}
