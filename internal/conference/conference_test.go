package conference

import "testing"

func TestGenerateID(t *testing.T) {
	id1 := GenerateID("PyCon US 2026", "2026-05-13", "https://us.pycon.org")
	id2 := GenerateID("PyCon US 2026", "2026-05-13", "https://us.pycon.org")

	if id1 != id2 {
		t.Errorf("GenerateID should be deterministic, got %s vs %s", id1, id2)
	}
	if len(id1) != 12 {
		t.Errorf("expected ID length of 12, got %d", len(id1))
	}

	other := GenerateID("PyCon US 2026", "2026-05-14", "https://us.pycon.org")
	if other == id1 {
		t.Error("different start dates should yield different IDs")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "casing and whitespace",
			input:    "  PyCon   US ",
			expected: "pycon us",
		},
		{
			name:     "trailing parenthetical stripped",
			input:    "PyCon US 2026 (PyCon)",
			expected: "pycon us",
		},
		{
			name:     "year token removed",
			input:    "PyCon US 2026",
			expected: "pycon us",
		},
		{
			name:     "punctuation removed",
			input:    "Node.js Conf!",
			expected: "node js conf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name     string
		conf     Conference
		expected string
	}{
		{
			name:     "from start date",
			conf:     Conference{Name: "PyCon US", StartDate: "2026-05-13"},
			expected: "2026",
		},
		{
			name:     "from name when date missing",
			conf:     Conference{Name: "PyCon US 2026"},
			expected: "2026",
		},
		{
			name:     "start date wins over name",
			conf:     Conference{Name: "PyCon US 2025", StartDate: "2026-05-13"},
			expected: "2026",
		},
		{
			name:     "unknown",
			conf:     Conference{Name: "PyCon US"},
			expected: "",
		},
		{
			name:     "malformed date falls back to name",
			conf:     Conference{Name: "PyCon US 2026", StartDate: "sometime"},
			expected: "2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Year(); got != tt.expected {
				t.Errorf("Year() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Conference{Name: "KubeCon Europe", Source: "test", StartDate: "2026-04-01"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}

	missing := Conference{Source: "test"}
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	badDate := Conference{Name: "X", Source: "test", StartDate: "April 2026"}
	if err := badDate.Validate(); err == nil {
		t.Error("expected error for malformed start date")
	}

	badDomain := Conference{Name: "X", Source: "test", Domain: "golfing"}
	if err := badDomain.Validate(); err == nil {
		t.Error("expected error for domain outside the enumeration")
	}

	tooManyTags := Conference{Name: "X", Source: "test", Tags: []string{"a", "b", "c", "d", "e", "f"}}
	if err := tooManyTags.Validate(); err == nil {
		t.Error("expected error for more than five tags")
	}

	badCFP := Conference{Name: "X", Source: "test", CFP: &CFP{EndDate: "2026-01-01"}}
	if err := badCFP.Validate(); err == nil {
		t.Error("expected error for CFP without URL")
	}
}
