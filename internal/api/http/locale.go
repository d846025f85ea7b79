package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/i18n"
)

const languageKey = "request_language"

// LocaleMiddleware resolves the request language from the lang query
// parameter, then the Accept-Language header, then the configured default,
// and stores it for handlers.
func LocaleMiddleware(defaultLang i18n.Language) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("lang")
		if raw == "" {
			raw = primaryLanguageTag(c.Get(fiber.HeaderAcceptLanguage))
		}
		c.Locals(languageKey, i18n.ParseLanguage(raw, defaultLang))
		return c.Next()
	}
}

// RequestLanguage returns the language resolved by LocaleMiddleware,
// defaulting to French when the middleware did not run.
func RequestLanguage(c *fiber.Ctx) i18n.Language {
	if lang, ok := c.Locals(languageKey).(i18n.Language); ok {
		return lang
	}
	return i18n.LanguageFrench
}

// primaryLanguageTag reduces an Accept-Language value to its first base tag:
// "fr-FR,fr;q=0.9,en;q=0.8" yields "fr".
func primaryLanguageTag(header string) string {
	if header == "" {
		return ""
	}
	first := header
	if idx := strings.IndexAny(first, ",;"); idx >= 0 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)
	if idx := strings.Index(first, "-"); idx >= 0 {
		first = first[:idx]
	}
	return strings.ToLower(first)
}
