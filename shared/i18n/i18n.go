package i18n

import (
	"context"
	"strings"
)

// Language is one of the two display languages of the site. English is the
// primary language; Hindi content falls back to English wherever a
// translation is missing, so a partially translated row never renders blank.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	Default = English
)

type contextKey struct{}

// Parse maps a raw query or Accept-Language value to a supported Language.
// Region subtags ("hi-IN", "en_US") are tolerated; anything unrecognized is
// the default language.
func Parse(raw string) Language {
	raw = strings.ToLower(strings.TrimSpace(raw))

	if idx := strings.IndexAny(raw, "-_,;"); idx >= 0 {
		raw = raw[:idx]
	}

	switch Language(raw) {
	case Hindi:
		return Hindi
	case English:
		return English
	default:
		return Default
	}
}

// Resolve picks the display value of a stored bilingual field pair. The
// primary language always gets the primary value; the secondary language gets
// the translation when it is non-empty and the primary value otherwise.
func Resolve(lang Language, primary, translated string) string {
	if lang == Hindi && translated != "" {
		return translated
	}

	return primary
}

// T applies the same selection rule to a literal phrase pair, for UI strings
// that are not backed by stored rows.
func T(lang Language, en, hi string) string {
	return Resolve(lang, en, hi)
}

// NewContext returns a context carrying the request language.
func NewContext(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the request language, or the default when none was set.
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(contextKey{}).(Language); ok {
		return lang
	}

	return Default
}
