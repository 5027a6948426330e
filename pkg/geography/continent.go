package geography

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Continent] = Continent("")

// Continent is one of the seven continental landmasses.
type Continent string

// The seven continents
const (
	Africa       Continent = "Africa"
	Antarctica   Continent = "Antarctica"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "NorthAmerica"
	Oceania      Continent = "Oceania"
	SouthAmerica Continent = "SouthAmerica"
)

var continents = map[Continent]struct{}{
	Africa: {}, Antarctica: {}, Asia: {}, Europe: {},
	NorthAmerica: {}, Oceania: {}, SouthAmerica: {},
}

// ParseContinent returns the Continent named by s, or ErrUnknownContinent.
func ParseContinent(s string) (Continent, error) {
	c := Continent(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownContinent, s)
	}
	return c, nil
}

// IsValid reports whether the value names one of the seven continents.
func (c Continent) IsValid() bool {
	_, ok := continents[c]
	return ok
}

// Equals reports whether two values name the same continent.
func (c Continent) Equals(other Continent) bool { return c == other }

// String returns the continent name.
func (c Continent) String() string { return string(c) }

// MarshalJSON implements json.Marshaler interface.
func (c Continent) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (c *Continent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseContinent(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
