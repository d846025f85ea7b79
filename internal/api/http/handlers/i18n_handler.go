package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/i18n"
)

// I18nHandler serves localization bundles to the dashboards. A Translator
// holds the service-wide default language; Toggle flips it, mirroring the
// language switch in the dashboard header.
type I18nHandler struct {
	translator *i18n.Translator
	resolve    func(*fiber.Ctx) i18n.Language
}

// NewI18nHandler constructs handler. The resolver maps a request to its
// negotiated language; nil falls back to the current default for every
// request.
func NewI18nHandler(defaultLang i18n.Language, resolve func(*fiber.Ctx) i18n.Language) *I18nHandler {
	return &I18nHandler{translator: i18n.NewTranslator(defaultLang), resolve: resolve}
}

// Messages GET /i18n/:lang/messages returns the full message table for a
// language. Unknown languages fall back to the current default.
func (h *I18nHandler) Messages(c *fiber.Ctx) error {
	lang := i18n.ParseLanguage(c.Params("lang"), h.translator.Language())
	return h.respond(c, lang)
}

// Bundle GET /i18n/messages returns the table for the request's negotiated
// language (lang query parameter, then Accept-Language header).
func (h *I18nHandler) Bundle(c *fiber.Ctx) error {
	lang := h.translator.Language()
	if h.resolve != nil {
		lang = h.resolve(c)
	}
	return h.respond(c, lang)
}

// Toggle POST /i18n/toggle flips the default language between French and
// English and returns the new value.
func (h *I18nHandler) Toggle(c *fiber.Ctx) error {
	h.translator.Toggle()
	return c.JSON(fiber.Map{"language": string(h.translator.Language())})
}

func (h *I18nHandler) respond(c *fiber.Ctx, lang i18n.Language) error {
	return c.JSON(fiber.Map{
		"language": string(lang),
		"messages": i18n.Table(lang),
	})
}
