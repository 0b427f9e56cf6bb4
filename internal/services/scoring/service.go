package scoring

import (
	"github.com/mcoot/cricle/internal/model"
)

// Compare scores a guess against the mystery entity attribute by attribute.
// Two missing values count as a match. The second return value is true when
// every attribute matched.
func Compare(guessed, mystery *model.Entity) (model.Comparison, bool) {
	cmp := model.Comparison{
		model.AttrDebutYear:      equal(guessed.DebutYear, mystery.DebutYear),
		model.AttrCountryPlaying: equal(guessed.CountryPlaying, mystery.CountryPlaying),
		model.AttrCountryBorn:    equal(guessed.CountryBorn, mystery.CountryBorn),
		model.AttrType:           equal(guessed.Type, mystery.Type),
		model.AttrIPLTeam:        equal(guessed.IPLTeam, mystery.IPLTeam),
	}
	return cmp, cmp.AllMatch()
}

func equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// MatchCount returns how many attributes matched
func MatchCount(cmp model.Comparison) int {
	n := 0
	for _, attr := range model.Attributes {
		if cmp[attr] {
			n++
		}
	}
	return n
}
