package i18n

import (
	"strings"
	"testing"
)

func TestTSubstitutesPlaceholders(t *testing.T) {
	got := T("en", "results_header", "filter", "Under $10K", "count", 3)
	if !strings.Contains(got, "Under $10K") || !strings.Contains(got, "3") {
		t.Fatalf("rendered = %q, want filter and count substituted", got)
	}
	if strings.Contains(got, "{") {
		t.Fatalf("rendered = %q, placeholder left behind", got)
	}
}

func TestTFallsBackToDefaultLanguage(t *testing.T) {
	if got := T("de", "menu_add"); got != en["menu_add"] {
		t.Fatalf("unknown lang = %q, want english text", got)
	}
	if got := T("fr", "no_such_key"); got != "no_such_key" {
		t.Fatalf("missing key = %q, want key itself", got)
	}
}

func TestSupported(t *testing.T) {
	for _, code := range Languages() {
		if !Supported(code) {
			t.Fatalf("%q should be supported", code)
		}
	}
	if Supported("xx") {
		t.Fatalf("xx should not be supported")
	}
}

func TestCatalogsCoverFlowKeys(t *testing.T) {
	keys := []string{
		"welcome", "help", "cancelled", "rate_limited", "storage_error",
		"ask_model", "ask_year", "ask_price", "ask_mileage", "ask_location",
		"ask_condition", "ask_phone", "ask_photo",
		"invalid_model", "invalid_year_format", "invalid_year_range",
		"invalid_price", "invalid_mileage", "invalid_condition",
		"invalid_photo", "photo_failed", "add_success",
		"tier_under_10k", "tier_under_20k", "tier_under_30k", "tier_all",
	}
	for _, lang := range Languages() {
		for _, key := range keys {
			if _, ok := catalogs[lang][key]; !ok {
				t.Fatalf("catalog %q missing key %q", lang, key)
			}
		}
	}
}
