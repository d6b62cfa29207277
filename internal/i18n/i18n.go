// Package i18n provides internationalization support for the suppository
// service. It handles translation of user-facing error messages and the
// advisory warning texts attached to calculation results.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context. Checks the
// Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid username or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.unknown_base":         "Unknown base name, not present in the catalog",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timeout",

			// Advisory warning texts
			"warning.negative_required_base":     "Required base is negative: the blank weight may be too small or the API load too high for this mold",
			"warning.displacement_exceeds_blank": "Displaced base exceeds the estimated blank weight, check amounts and densities",
			"warning.suspected_ratio_inversion":  "The declared density ratio looks inverted: use rho(API)/rho(base), not rho(base)/rho(API)",
		},
		"pt": {
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.invalid_credentials":  "Usuário ou senha inválidos",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.not_found":            "Não encontrado",
			"error.unknown_base":         "Nome de base desconhecido, ausente do catálogo",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
			"error.timeout":              "Tempo limite da requisição excedido",

			"warning.negative_required_base":     "Base necessária negativa: o peso do molde pode ser pequeno demais ou a carga de ativos alta demais",
			"warning.displacement_exceeds_blank": "A base deslocada excede o peso estimado dos moldes, verifique quantidades e densidades",
			"warning.suspected_ratio_inversion":  "A razão de densidade declarada parece invertida: use rho(API)/rho(base), não rho(base)/rho(API)",
		},
		"nl": {
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.unauthorized":         "Niet geautoriseerd",
			"error.invalid_credentials":  "Ongeldige gebruikersnaam of wachtwoord",
			"error.api_key_required":     "API-sleutel is vereist",
			"error.invalid_api_key":      "Ongeldige API-sleutel",
			"error.not_found":            "Niet gevonden",
			"error.unknown_base":         "Onbekende basisnaam, niet aanwezig in de catalogus",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_token":        "Ongeldig of verlopen token",
			"error.token_required":       "Authenticatietoken is vereist",
			"error.timeout":              "Time-out van het verzoek",

			"warning.negative_required_base":     "Benodigde basis is negatief: het blancogewicht is mogelijk te klein of de API-belasting te hoog voor deze mal",
			"warning.displacement_exceeds_blank": "Verplaatste basis overschrijdt het geschatte blancogewicht, controleer hoeveelheden en dichtheden",
			"warning.suspected_ratio_inversion":  "De opgegeven dichtheidsverhouding lijkt omgekeerd: gebruik rho(API)/rho(base), niet rho(base)/rho(API)",
		},
	}
}
