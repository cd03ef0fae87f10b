package store

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// specialNames are name variations that exercise the fuzzy strategies:
// split/joined compounds, apostrophes, hyphens, and honorific forms. They
// are seeded first so their IDs are stable across runs.
var specialNames = [][2]string{
	{"Mary", "Ann"},
	{"MaryAnn", "Smith"},
	{"John", "D'Souza"},
	{"John", "DSouza"},
	{"Mirage Air", "Craft"},
	{"Mirage", "AirCraft"},
	{"Jean-Pierre", "Dubois"},
	{"JeanPierre", "Dubois"},
	{"O'Brien", "Patrick"},
	{"OBrien", "Patrick"},
	{"Anne-Marie", "Johnson"},
	{"AnneMarie", "Johnson"},
	{"Mac", "Donald"},
	{"MacDonald", "James"},
	{"De La", "Cruz"},
	{"DeLa", "Cruz"},
	{"Van Der", "Berg"},
	{"VanDer", "Berg"},
	{"St.", "James"},
	{"Saint", "James"},
}

// SeedSample fills the store with the special variant names plus generated
// people until total records are present. Roughly 10% of the generated names
// carry a compound, apostrophe, or multi-part variation so the fuzzy
// strategies always have something to chew on. Generation is deterministic
// for a given seed.
func SeedSample(s *PersonStore, total int, seed int64) {
	faker := gofakeit.New(seed)

	for _, pair := range specialNames {
		addPerson(s, pair[0], pair[1])
		if s.Len() >= total {
			return
		}
	}

	for s.Len() < total {
		firstName := faker.FirstName()
		lastName := faker.LastName()

		if faker.Number(1, 10) == 1 {
			switch faker.Number(0, 2) {
			case 0: // compound first name
				firstName = firstName + faker.FirstName()
			case 1: // apostrophe surname
				prefixes := []string{"O'", "D'", "L'"}
				lastName = prefixes[faker.Number(0, 2)] + lastName
			default: // multi-part first name
				second := faker.FirstName()
				if len(second) > 3 {
					second = second[:3]
				}
				firstName = firstName + " " + second
			}
		}

		addPerson(s, firstName, lastName)
	}
}

func addPerson(s *PersonStore, firstName, lastName string) {
	s.Add(firstName, lastName, sampleEmail(firstName, lastName))
}

// sampleEmail derives the address the same way the corpus seeding always
// has: lowercase, spaces and apostrophes dropped.
func sampleEmail(firstName, lastName string) string {
	clean := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "'", "")
		return strings.ReplaceAll(s, ".", "")
	}
	return fmt.Sprintf("%s.%s@example.com", clean(firstName), clean(lastName))
}
