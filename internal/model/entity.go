package model

// Attribute names a field that guesses are scored on
type Attribute string

// Comparison attributes, in display order
const (
	AttrDebutYear      Attribute = "debut_year"
	AttrCountryPlaying Attribute = "country_playing"
	AttrCountryBorn    Attribute = "country_born"
	AttrType           Attribute = "type"
	AttrIPLTeam        Attribute = "ipl_team"
)

// Attributes is the fixed set of attributes every guess is compared on
var Attributes = []Attribute{
	AttrDebutYear,
	AttrCountryPlaying,
	AttrCountryBorn,
	AttrType,
	AttrIPLTeam,
}

// Entity is a single cricketer record from the dataset.
// Comparison fields are optional; nil means the source record had no value.
type Entity struct {
	Name           string  `json:"name"`
	DebutYear      *int    `json:"debut_year"`
	CountryPlaying *string `json:"country_playing"`
	CountryBorn    *string `json:"country_born"`
	Type           *string `json:"type"`
	IPLTeam        *string `json:"ipl_team"`
}

// Comparison maps each attribute to whether the guess matched the mystery entity
type Comparison map[Attribute]bool

// AllMatch reports whether every attribute matched
func (c Comparison) AllMatch() bool {
	for _, attr := range Attributes {
		if !c[attr] {
			return false
		}
	}
	return true
}
