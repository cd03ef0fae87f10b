package trigram

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"punctuation only", "---", []string{}},
		{"short word is padded", "jo", []string{"  j", " jo", "jo "}},
		{"single word", "cat", []string{"  c", " ca", "cat", "at "}},
		{"case ignored", "CAT", []string{"  c", " ca", "cat", "at "}},
		{"punctuation splits words", "C.A.T", []string{"  c", " c ", "  a", " a ", "  t", " t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) has %d trigrams %v, want %d", tt.in, len(got), got, len(tt.want))
			}
			for _, trigram := range tt.want {
				if _, ok := got[trigram]; !ok {
					t.Errorf("Extract(%q) missing trigram %q", tt.in, trigram)
				}
			}
		})
	}
}

func TestExtractSplitsPerWord(t *testing.T) {
	// "mary ann" must produce word-boundary padding for both words, so the
	// trigram "y a" (crossing the space) must NOT exist.
	set := Extract("Mary Ann")
	if _, ok := set["y a"]; ok {
		t.Error("Extract should not produce trigrams crossing word boundaries")
	}
	if _, ok := set["  a"]; !ok {
		t.Error("Extract should pad the second word as its own boundary")
	}
}

func TestSimilarity(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		if got := Similarity("Johnson", "Johnson"); got != 1.0 {
			t.Errorf("Similarity(x, x) = %v, want 1.0", got)
		}
	})

	t.Run("disjoint strings near zero", func(t *testing.T) {
		if got := Similarity("abc", "xyz"); got != 0 {
			t.Errorf("Similarity(abc, xyz) = %v, want 0", got)
		}
	})

	t.Run("empty strings", func(t *testing.T) {
		if got := Similarity("", ""); got != 0 {
			t.Errorf("Similarity of empty strings = %v, want 0", got)
		}
		if got := Similarity("", "smith"); got != 0 {
			t.Errorf("Similarity(\"\", smith) = %v, want 0", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := "Jean-Pierre Dubois", "Jeanpierre Dubois"
		if Similarity(a, b) != Similarity(b, a) {
			t.Errorf("Similarity is not symmetric for (%q, %q)", a, b)
		}
	})

	t.Run("in unit range", func(t *testing.T) {
		pairs := [][2]string{
			{"Smith", "Smyth"},
			{"MacDonald", "Mc Donald"},
			{"a", "averylongname"},
		}
		for _, p := range pairs {
			sim := Similarity(p[0], p[1])
			if sim < 0 || sim > 1 {
				t.Errorf("Similarity(%q, %q) = %v, outside [0,1]", p[0], p[1], sim)
			}
		}
	})

	t.Run("monotonic in shared trigrams", func(t *testing.T) {
		closer := Similarity("johnson", "jonson")
		farther := Similarity("johnson", "jackson")
		if closer <= farther {
			t.Errorf("Expected Similarity(johnson, jonson)=%v > Similarity(johnson, jackson)=%v", closer, farther)
		}
	})
}

func TestWordSimilarity(t *testing.T) {
	// Querying a single surname against a full name should score well on the
	// word-anchored measure even though whole-string similarity is diluted.
	whole := Similarity("Dubois", "Jean-Pierre Dubois")
	word := WordSimilarity("Dubois", "Jean-Pierre Dubois")

	if word != 1.0 {
		t.Errorf("WordSimilarity(Dubois, Jean-Pierre Dubois) = %v, want 1.0", word)
	}
	if word < whole {
		t.Errorf("WordSimilarity (%v) must never be below Similarity (%v)", word, whole)
	}

	if got := WordSimilarity("", "Smith"); got != 0 {
		t.Errorf("WordSimilarity with empty query = %v, want 0", got)
	}
}
