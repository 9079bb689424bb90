package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"daawat/shared/i18n"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected i18n.Language
	}{
		{name: "hindi", input: "hi", expected: i18n.Hindi},
		{name: "hindi with region", input: "hi-IN", expected: i18n.Hindi},
		{name: "hindi uppercase", input: "HI", expected: i18n.Hindi},
		{name: "english", input: "en", expected: i18n.English},
		{name: "accept-language list", input: "hi-IN,hi;q=0.9,en;q=0.8", expected: i18n.Hindi},
		{name: "unknown falls back to default", input: "fr", expected: i18n.English},
		{name: "empty falls back to default", input: "", expected: i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.Parse(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		lang       i18n.Language
		primary    string
		translated string
		expected   string
	}{
		{
			name:       "english always returns primary",
			lang:       i18n.English,
			primary:    "Butter Chicken",
			translated: "बटर चिकन",
			expected:   "Butter Chicken",
		},
		{
			name:       "hindi returns translation when present",
			lang:       i18n.Hindi,
			primary:    "Butter Chicken",
			translated: "बटर चिकन",
			expected:   "बटर चिकन",
		},
		{
			name:       "hindi falls back to primary when translation is empty",
			lang:       i18n.Hindi,
			primary:    "Butter Chicken",
			translated: "",
			expected:   "Butter Chicken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.Resolve(tt.lang, tt.primary, tt.translated))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Our Menu", i18n.T(i18n.English, "Our Menu", "हमारा मेनू"))
	assert.Equal(t, "हमारा मेनू", i18n.T(i18n.Hindi, "Our Menu", "हमारा मेनू"))
	assert.Equal(t, "Our Menu", i18n.T(i18n.Hindi, "Our Menu", ""))
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, i18n.Default, i18n.FromContext(ctx))

	ctx = i18n.NewContext(ctx, i18n.Hindi)
	assert.Equal(t, i18n.Hindi, i18n.FromContext(ctx))
}
