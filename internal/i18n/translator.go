// Package i18n provides the bilingual text lookup used by the dashboards.
// The translator is an explicit value handed to whoever needs localized
// text; there is no package-level language state.
package i18n

import "sync"

// Language identifies one of the two supported UI languages.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// ParseLanguage maps a raw string to a supported language, falling back to
// the given default for anything unrecognized.
func ParseLanguage(raw string, fallback Language) Language {
	switch Language(raw) {
	case LanguageFrench, LanguageEnglish:
		return Language(raw)
	default:
		return fallback
	}
}

// Table returns a copy of the full message table for a language, used to
// ship the localization bundle to the dashboards.
func Table(lang Language) map[string]string {
	table := translations[lang]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Lookup resolves key under the given language table. An unknown key
// degrades to the key itself so missing entries stay visible rather than
// failing.
func Lookup(lang Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		return key
	}
	if text, ok := table[key]; ok {
		return text
	}
	return key
}

// Translator holds the active language for a session. Safe for concurrent
// use.
type Translator struct {
	mu   sync.Mutex
	lang Language
}

// NewTranslator creates a translator starting in the given language;
// an unsupported or empty value starts in French, the default.
func NewTranslator(lang Language) *Translator {
	return &Translator{lang: ParseLanguage(string(lang), LanguageFrench)}
}

// Language returns the active language.
func (t *Translator) Language() Language {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lang
}

// Toggle flips between the two supported languages.
func (t *Translator) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lang == LanguageFrench {
		t.lang = LanguageEnglish
	} else {
		t.lang = LanguageFrench
	}
}

// T resolves key under the active language.
func (t *Translator) T(key string) string {
	return Lookup(t.Language(), key)
}
