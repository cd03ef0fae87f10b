package normalizer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t ", ""},
		{"lowercases", "Mary", "mary"},
		{"removes inner space", "Mary Ann", "maryann"},
		{"removes all whitespace kinds", " Mary\tAnn \n", "maryann"},
		{"keeps apostrophe", "D'Souza", "d'souza"},
		{"keeps hyphen", "Jean-Pierre", "jean-pierre"},
		{"already normalized", "maryann", "maryann"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"", "Mary Ann", "D'Souza", "Jean-Pierre Dubois", "  VAN der Berg "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestStripApostrophes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"D'Souza", "dsouza"},
		{"O'Brien", "obrien"},
		{"DSouza", "dsouza"},
		{"Mary Ann", "maryann"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripApostrophes(tt.in); got != tt.want {
			t.Errorf("StripApostrophes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAlphanumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jean-Pierre Dubois", "jeanpierredubois"},
		{"JeanPierre Dubois", "jeanpierredubois"},
		{"D'Souza", "dsouza"},
		{"St. James", "stjames"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Alphanumeric(tt.in); got != tt.want {
			t.Errorf("Alphanumeric(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "Mary", []string{"mary"}},
		{"two words", "Mary Ann", []string{"mary", "ann"}},
		{"hyphen splits", "Jean-Pierre Dubois", []string{"jean", "pierre", "dubois"}},
		{"apostrophe splits", "D'Souza", []string{"d", "souza"}},
		{"case change does not split", "MacDonald", []string{"macdonald"}},
		{"punctuation noise", " St.  James! ", []string{"st", "james"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
