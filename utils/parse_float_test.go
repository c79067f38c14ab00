package utils

import "testing"

func TestParseOptionalFloat(t *testing.T) {
	if v := ParseOptionalFloat("12.5"); v == nil || *v != 12.5 {
		t.Errorf("expected 12.5, got %v", v)
	}
	if v := ParseOptionalFloat(" 3 "); v == nil || *v != 3 {
		t.Errorf("expected 3, got %v", v)
	}

	// Absent, blank and malformed all mean "no bound", never zero.
	for _, raw := range []string{"", "   ", "abc", "12,5"} {
		if v := ParseOptionalFloat(raw); v != nil {
			t.Errorf("ParseOptionalFloat(%q) = %v, want nil", raw, *v)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	if v := ParsePositiveInt("3", 8); v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
	for _, raw := range []string{"", "0", "-2", "abc", "2.5"} {
		if v := ParsePositiveInt(raw, 8); v != 8 {
			t.Errorf("ParsePositiveInt(%q) = %d, want default 8", raw, v)
		}
	}
}
