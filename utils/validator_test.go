package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"somchai@example.com", "a.b+tag@school.ac.th"}
	invalid := []string{"", "somchai", "somchai@", "@example.com", "somchai@example"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("secret1"); ok {
		t.Error("7-character password accepted")
	}
	if ok, msg := ValidatePassword("secret12"); !ok {
		t.Errorf("8-character password rejected: %s", msg)
	}
}

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"1234567890121", true},
		{" 1234567890121 ", true},
		{"1234567890120", false}, // wrong check digit
		{"123456789012", false},  // too short
		{"12345678901211", false},
		{"12345678901a1", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateNationalID(tt.id); got != tt.want {
			t.Errorf("ValidateNationalID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  สมชาย\x00  "); got != "สมชาย" {
		t.Errorf("SanitizeInput() = %q", got)
	}
}
