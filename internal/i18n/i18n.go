package i18n

import (
	"fmt"
	"strings"
)

// Default is the baseline language used when a user has no stored preference
// or a catalog is missing a key.
const Default = "en"

// Catalog maps template keys to display strings. Placeholders use {name}
// syntax and are filled by T.
type Catalog map[string]string

var catalogs = map[string]Catalog{
	"en": en,
	"fr": fr,
	"ar": ar,
}

// Languages lists supported codes in display order.
func Languages() []string {
	return []string{"en", "fr", "ar"}
}

// Supported reports whether code is a known language.
func Supported(code string) bool {
	_, ok := catalogs[code]
	return ok
}

// T renders a template in the given language. args are alternating name/value
// pairs substituted into {name} placeholders. Unknown languages and keys fall
// back to the default catalog, then to the key itself.
func T(lang, key string, args ...any) string {
	text, ok := lookup(lang, key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return text
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok {
			continue
		}
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func lookup(lang, key string) (string, bool) {
	if c, ok := catalogs[lang]; ok {
		if text, ok := c[key]; ok {
			return text, true
		}
	}
	text, ok := catalogs[Default][key]
	return text, ok
}
