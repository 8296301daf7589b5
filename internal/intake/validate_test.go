package intake

import (
	"errors"
	"testing"
)

func TestParseModel(t *testing.T) {
	if _, err := ParseModel("   "); !errors.Is(err, ErrModelEmpty) {
		t.Fatalf("blank model: err = %v, want ErrModelEmpty", err)
	}
	got, err := ParseModel("  Toyota Corolla ")
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if got != "Toyota Corolla" {
		t.Fatalf("model = %q, want trimmed", got)
	}
}

func TestParseYear(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"1990", 1990, nil},
		{"2025", 2025, nil},
		{"2020", 2020, nil},
		{" 2020 ", 2020, nil},
		{"1989", 0, ErrYearRange},
		{"2026", 0, ErrYearRange},
		{"0500", 0, ErrYearRange},
		{"abcd", 0, ErrYearFormat},
		{"20 20", 0, ErrYearFormat},
		{"202", 0, ErrYearFormat},
		{"20201", 0, ErrYearFormat},
		{"+200", 0, ErrYearFormat},
		{"٢٠٢٠", 0, ErrYearFormat}, // non-ASCII digits
		{"", 0, ErrYearFormat},
	}
	for _, tc := range cases {
		got, err := ParseYear(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("ParseYear(%q) err = %v, want %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseYear(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"45", 45, true},
		{"1", 1, true},
		{"007", 7, true},
		{"+5", 5, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"12.5", 0, false},
		{"cheap", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParsePrice(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseMileage(t *testing.T) {
	if got, err := ParseMileage("0"); err != nil || got != 0 {
		t.Fatalf("mileage 0: got %d err %v", got, err)
	}
	if got, err := ParseMileage("120000"); err != nil || got != 120000 {
		t.Fatalf("mileage: got %d err %v", got, err)
	}
	for _, in := range []string{"-1", "many", "1.5", ""} {
		if _, err := ParseMileage(in); !errors.Is(err, ErrMileageInvalid) {
			t.Fatalf("ParseMileage(%q) err = %v, want ErrMileageInvalid", in, err)
		}
	}
}

func TestParseCondition(t *testing.T) {
	for in, want := range map[string]int{"1": 1, "10": 10, "7": 7} {
		got, err := ParseCondition(in)
		if err != nil || got != want {
			t.Fatalf("ParseCondition(%q) = %d, %v", in, got, err)
		}
	}
	for _, in := range []string{"0", "11", "-2", "good", ""} {
		if _, err := ParseCondition(in); !errors.Is(err, ErrConditionInvalid) {
			t.Fatalf("ParseCondition(%q) err = %v, want ErrConditionInvalid", in, err)
		}
	}
}

func TestParseLocation(t *testing.T) {
	if got := ParseLocation("  Baku  "); got != "Baku" {
		t.Fatalf("location = %q", got)
	}
	if got := ParseLocation("   "); got != "" {
		t.Fatalf("blank location = %q, want empty", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+994 (55) 123-45-67": "+994551234567",
		"0555123456":          "0555123456",
		"call me":             "",
		"ext. 12+34":          "12+34",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
