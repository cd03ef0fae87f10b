package phonetic

import "testing"

func TestSoundex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"classic Robert", "Robert", "R163"},
		{"classic Rupert", "Rupert", "R163"},
		{"Tymczak", "Tymczak", "T522"},
		{"Honeyman", "Honeyman", "H555"},
		{"short name is padded", "Lee", "L000"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Soundex(tt.in); got != tt.want {
				t.Errorf("Soundex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSoundexAlwaysFourChars(t *testing.T) {
	names := []string{"Smith", "Smyth", "Schmidt", "Li", "Washington", "O'Brien"}
	for _, name := range names {
		code := Soundex(name)
		if len(code) != 4 {
			t.Errorf("Soundex(%q) = %q, want exactly 4 characters", name, code)
		}
	}
}

func TestSoundexCaseInsensitive(t *testing.T) {
	if Soundex("SMITH") != Soundex("smith") {
		t.Error("Soundex should be case-insensitive")
	}
}

func TestDoubleMetaphone(t *testing.T) {
	t.Run("equal-sounding names share a primary", func(t *testing.T) {
		smithPrimary, _ := DoubleMetaphone("Smith")
		smythPrimary, _ := DoubleMetaphone("Smyth")
		if smithPrimary != smythPrimary {
			t.Errorf("Smith (%q) and Smyth (%q) should share a primary code", smithPrimary, smythPrimary)
		}
	})

	t.Run("ambiguous name yields alternate", func(t *testing.T) {
		// Smith has the classic XMT/SMT primary/alternate pair.
		primary, alternate := DoubleMetaphone("Smith")
		if primary == "" {
			t.Fatal("Expected non-empty primary code for Smith")
		}
		if alternate == "" || alternate == primary {
			t.Errorf("Expected a distinct alternate code for Smith, got primary=%q alternate=%q", primary, alternate)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		primary, alternate := DoubleMetaphone("")
		if primary != "" || alternate != "" {
			t.Errorf("Expected empty codes for empty input, got (%q, %q)", primary, alternate)
		}
	})
}

func TestSoundexCodes(t *testing.T) {
	codes := SoundexCodes("Mary", "Ann", "MaryAnn")
	if len(codes) == 0 {
		t.Fatal("Expected at least one code")
	}

	// Duplicates collapse: first and full forms of a one-word name encode
	// identically.
	codes = SoundexCodes("Lee", "Lee")
	if len(codes) != 1 {
		t.Errorf("Expected duplicate codes to collapse, got %v", codes)
	}

	// Empty forms contribute nothing.
	codes = SoundexCodes("", "", "")
	if len(codes) != 0 {
		t.Errorf("Expected no codes for empty forms, got %v", codes)
	}
}

func TestMetaphoneKeys(t *testing.T) {
	keys := MetaphoneKeys("Smith")
	if len(keys) != 2 {
		t.Errorf("Expected primary and alternate keys for Smith, got %v", keys)
	}

	if keys := MetaphoneKeys(""); len(keys) != 0 {
		t.Errorf("Expected no keys for empty input, got %v", keys)
	}
}

func TestAnyCodeMatches(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want bool
	}{
		{"shared code", []string{"R163", "S530"}, []string{"S530"}, true},
		{"disjoint", []string{"R163"}, []string{"S530"}, false},
		{"empty a", []string{}, []string{"S530"}, false},
		{"both empty", []string{}, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyCodeMatches(tt.a, tt.b); got != tt.want {
				t.Errorf("AnyCodeMatches(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
