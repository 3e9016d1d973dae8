package cu

import "testing"

func TestIsLineNumber(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"1", true},
		{"25", true},
		{"99", true},
		{" 7 ", true},
		{"0", false},
		{"100", false},
		{"682499392", false}, // Bates number, not a margin numeral
		{"1994", false},
		{"Q.", false},
		{"", false},
		{"-3", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			if got := isLineNumber(tt.content); got != tt.want {
				t.Errorf("isLineNumber(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"·", true},
		{"•", true},
		{"∙", true},
		{"-", true},
		{".", true},
		{"a", false},
		{"1", false},
		{"..", false},
		{"Q.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			if got := isNoise(tt.content); got != tt.want {
				t.Errorf("isNoise(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "Susan Michaud, sworn.", "Susan Michaud, sworn."},
		{"trimmed", "  testified as follows.  ", "testified as follows."},
		{"comment", "<!-- PageHeader --> INDEX", "INDEX"},
		{"inline tag", "sworn by the <b>Notary</b> Public", "sworn by the Notary Public"},
		{"break", "DIRECT<br>EXAMINATION", "DIRECTEXAMINATION"},
		{"nested", "<sub>EXHIBITS:</sub> <i>EVIDENCE</i>", "EXHIBITS: EVIDENCE"},
		{"comment only", "<!-- PageFooter -->", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripMarkup(tt.content); got != tt.want {
				t.Errorf("stripMarkup(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
