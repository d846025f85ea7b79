package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/support-desk/ticket-dashboard/internal/i18n"
)

type bundlePayload struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

func i18nTestApp(handler *I18nHandler) *fiber.App {
	app := fiber.New()
	app.Get("/i18n/messages", handler.Bundle)
	app.Get("/i18n/:lang/messages", handler.Messages)
	app.Post("/i18n/toggle", handler.Toggle)
	return app
}

func fetchBundle(t *testing.T, app *fiber.App, target string) bundlePayload {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload bundlePayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestMessagesServesRequestedLanguage(t *testing.T) {
	app := i18nTestApp(NewI18nHandler(i18n.LanguageFrench, nil))

	payload := fetchBundle(t, app, "/i18n/en/messages")
	assert.Equal(t, "en", payload.Language)
	assert.Equal(t, "Title", payload.Messages["ticket.title"])

	payload = fetchBundle(t, app, "/i18n/fr/messages")
	assert.Equal(t, "fr", payload.Language)
	assert.Equal(t, "Titre", payload.Messages["ticket.title"])
}

func TestMessagesUnknownLanguageFallsBackToDefault(t *testing.T) {
	app := i18nTestApp(NewI18nHandler(i18n.LanguageFrench, nil))

	payload := fetchBundle(t, app, "/i18n/de/messages")
	assert.Equal(t, "fr", payload.Language)
}

func TestToggleFlipsDefaultLanguage(t *testing.T) {
	app := i18nTestApp(NewI18nHandler(i18n.LanguageFrench, nil))

	resp, err := app.Test(httptest.NewRequest("POST", "/i18n/toggle", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var toggled struct {
		Language string `json:"language"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toggled))
	assert.Equal(t, "en", toggled.Language)

	// The new default now backs the fallback for unknown languages.
	payload := fetchBundle(t, app, "/i18n/de/messages")
	assert.Equal(t, "en", payload.Language)
}

func TestBundleUsesResolver(t *testing.T) {
	resolver := func(*fiber.Ctx) i18n.Language { return i18n.LanguageEnglish }
	app := i18nTestApp(NewI18nHandler(i18n.LanguageFrench, resolver))

	payload := fetchBundle(t, app, "/i18n/messages")
	assert.Equal(t, "en", payload.Language)
}
