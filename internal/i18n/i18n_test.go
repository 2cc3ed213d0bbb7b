package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocales(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "找不到商品", T("zh_TW", KeyProductNotFound))
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))
	assert.ElementsMatch(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}

func TestFallbacks(t *testing.T) {
	i := &I18n{translations: map[string]map[string]string{}, defaultLang: "en"}
	fsys := fstest.MapFS{
		"loc/en.json": {Data: []byte(`{"a": "A", "b": "B %d"}`)},
		"loc/fr.json": {Data: []byte(`{"a": "Ah"}`)},
	}
	require.NoError(t, i.LoadTranslations(fsys, "loc"))

	assert.Equal(t, "Ah", i.T("fr", "a"))
	assert.Equal(t, "B 2", i.T("fr", "b", 2))
	assert.Equal(t, "missing", i.T("fr", "missing"))
	assert.Equal(t, "A", i.T("de", "a"))
}

func TestBrokenLocaleFile(t *testing.T) {
	i := &I18n{translations: map[string]map[string]string{}, defaultLang: "en"}
	fsys := fstest.MapFS{"loc/en.json": {Data: []byte(`{`)}}

	assert.Error(t, i.LoadTranslations(fsys, "loc"))
}
