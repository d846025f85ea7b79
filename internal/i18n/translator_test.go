package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageFrench, ParseLanguage("fr", LanguageEnglish))
	assert.Equal(t, LanguageEnglish, ParseLanguage("en", LanguageFrench))
	assert.Equal(t, LanguageFrench, ParseLanguage("de", LanguageFrench))
	assert.Equal(t, LanguageFrench, ParseLanguage("", LanguageFrench))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Titre", Lookup(LanguageFrench, "ticket.title"))
	assert.Equal(t, "Title", Lookup(LanguageEnglish, "ticket.title"))
}

func TestLookupUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Lookup(LanguageFrench, "no.such.key"))
	assert.Equal(t, "no.such.key", Lookup(LanguageEnglish, "no.such.key"))
}

func TestTranslationTablesAreSymmetric(t *testing.T) {
	fr := translations[LanguageFrench]
	en := translations[LanguageEnglish]
	require.Equal(t, len(fr), len(en))
	for key := range fr {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from english table", key)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table(LanguageEnglish)
	table["ticket.title"] = "mutated"
	assert.Equal(t, "Title", Lookup(LanguageEnglish, "ticket.title"))
}

func TestTranslatorDefaultsToFrench(t *testing.T) {
	tr := NewTranslator("")
	assert.Equal(t, LanguageFrench, tr.Language())
	assert.Equal(t, "Titre", tr.T("ticket.title"))
}

func TestTranslatorToggle(t *testing.T) {
	tr := NewTranslator(LanguageFrench)

	tr.Toggle()
	assert.Equal(t, LanguageEnglish, tr.Language())
	assert.Equal(t, "Title", tr.T("ticket.title"))

	tr.Toggle()
	assert.Equal(t, LanguageFrench, tr.Language())
	assert.Equal(t, "Titre", tr.T("ticket.title"))
}
