package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestTranslator_Translate tests message lookup and fallback behavior.
func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english error message",
			key:      ErrKeyUnknownBase,
			locale:   "en",
			expected: "Unknown base name, not present in the catalog",
		},
		{
			name:     "portuguese error message",
			key:      ErrKeyInvalidRequest,
			locale:   "pt",
			expected: "Requisição inválida",
		},
		{
			name:     "dutch error message",
			key:      ErrKeyRateLimitExceeded,
			locale:   "nl",
			expected: "Te veel verzoeken, probeer het later opnieuw",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyTimeout,
			locale:   "",
			expected: "Request timeout",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      ErrKeyUnauthorized,
			locale:   "fr",
			expected: "Unauthorized",
		},
		{
			name:     "unknown key returns the key itself",
			key:      "error.nonexistent",
			locale:   "en",
			expected: "error.nonexistent",
		},
		{
			name:     "warning text in english",
			key:      WarnKeySuspectedRatioInversion,
			locale:   "en",
			expected: "The declared density ratio looks inverted: use rho(API)/rho(base), not rho(base)/rho(API)",
		},
		{
			name:     "warning text in portuguese",
			key:      WarnKeyNegativeRequiredBase,
			locale:   "pt",
			expected: "Base necessária negativa: o peso do molde pode ser pequeno demais ou a carga de ativos alta demais",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

// TestTranslator_WarningKeysCovered verifies every warning code key has a
// message in every supported locale.
func TestTranslator_WarningKeysCovered(t *testing.T) {
	keys := []string{
		WarnKeyNegativeRequiredBase,
		WarnKeyDisplacementExceedsBlank,
		WarnKeySuspectedRatioInversion,
	}

	for locale := range getDefaultMessages() {
		for _, key := range keys {
			msg := NewTranslator().Translate(key, locale)
			assert.NotEqual(t, key, msg, "locale %s is missing %s", locale, key)
		}
	}
}

// TestGetLocale tests Accept-Language parsing.
func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header defaults to english", header: "", expected: "en"},
		{name: "simple locale", header: "pt", expected: "pt"},
		{name: "locale with region", header: "pt-BR", expected: "pt"},
		{name: "quality list picks first", header: "nl,en;q=0.8", expected: "nl"},
		{name: "uppercase locale", header: "PT", expected: "pt"},
		{name: "unsupported locale defaults to english", header: "de-DE", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

// TestGetTranslator tests the singleton accessor.
func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
