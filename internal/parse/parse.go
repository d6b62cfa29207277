// Package parse recovers a formulation from the one-line chat shorthand,
// e.g. "N=12; blank 1.8 g; base 0.95; API: Drug A 150 mg, rho 1.2".
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pharmlab/suppository-service/internal/domain/model"
)

var (
	countRe = regexp.MustCompile(`(?i)\bN\s*=\s*(\d+)`)
	blankRe = regexp.MustCompile(`(?i)blank[^0-9]*(\d+(?:\.\d+)?)\s*g\b`)
	baseRe  = regexp.MustCompile(`(?i)base[^0-9]*(\d+(?:\.\d+)?)(?:\s*g/?m?l)?`)

	// Named clause: "API: Drug A 150 mg, rho 1.2" (the "API:" prefix is optional).
	namedAPIRe = regexp.MustCompile(`(?i)(?:API:)?\s*([A-Za-z][A-Za-z0-9 _\-]*?)\s*(\d+(?:\.\d+)?)\s*(mg|g)\s*,?\s*(?:rho|density)\s*[:=]?\s*(\d+(?:\.\d+)?)`)

	// Anonymous clause: "API: 200 mg (rho=3.0)".
	anonAPIRe = regexp.MustCompile(`(?i)API\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*(mg|g)\s*\(?(?:rho|density)\s*[:=]?\s*(\d+(?:\.\d+)?)\)?`)
)

// Result is the outcome of parsing one line of text. Missing lists the
// inputs the text did not carry; the formulation is complete and ready for
// calculation only when Missing is empty.
type Result struct {
	Input   model.Formulation
	Missing []string
}

// Complete reports whether every required input was recovered.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// Formulation parses free text into a formulation. Named API clauses with
// the same name collapse, last value winning; anonymous clauses are
// numbered in order of appearance.
func Formulation(text string) Result {
	var f model.Formulation

	if m := countRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.Count = n
		}
	}
	if m := blankRe.FindStringSubmatch(text); m != nil {
		f.BlankWeightG = parseFloat(m[1])
	}
	if m := baseRe.FindStringSubmatch(text); m != nil {
		f.BaseDensity = parseFloat(m[1])
	}

	f.Ingredients = parseIngredients(text)

	var missing []string
	if f.Count == 0 {
		missing = append(missing, "N")
	}
	if f.BlankWeightG == 0 {
		missing = append(missing, "blank weight per unit (g)")
	}
	if f.BaseDensity == 0 {
		missing = append(missing, "base density (g/mL)")
	}
	if len(f.Ingredients) == 0 {
		missing = append(missing, "at least one API with amount and density")
	}

	return Result{Input: f, Missing: missing}
}

// parseIngredients extracts named and anonymous API clauses.
func parseIngredients(text string) []model.Ingredient {
	var ingredients []model.Ingredient

	for _, m := range namedAPIRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if skipClauseName(name) {
			continue
		}
		ing := model.Ingredient{
			Name:    name,
			Amount:  parseFloat(m[2]),
			Unit:    model.Unit(strings.ToLower(m[3])),
			Density: parseFloat(m[4]),
		}
		if idx := findByName(ingredients, ing.Name); idx >= 0 {
			ingredients[idx] = ing
		} else {
			ingredients = append(ingredients, ing)
		}
	}

	for _, m := range anonAPIRe.FindAllStringSubmatch(text, -1) {
		ingredients = append(ingredients, model.Ingredient{
			Name:    "API " + strconv.Itoa(len(ingredients)+1),
			Amount:  parseFloat(m[1]),
			Unit:    model.Unit(strings.ToLower(m[2])),
			Density: parseFloat(m[3]),
		})
	}

	return ingredients
}

// skipClauseName filters captures where the "name" is actually the blank
// or base clause leaking into the ingredient regex.
func skipClauseName(name string) bool {
	lower := strings.ToLower(name)
	return lower == "" || lower == "api" ||
		strings.Contains(lower, "blank") || strings.Contains(lower, "base")
}

func findByName(ingredients []model.Ingredient, name string) int {
	for i, ing := range ingredients {
		if strings.EqualFold(strings.TrimSpace(ing.Name), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
