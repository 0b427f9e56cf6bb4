package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cricle/internal/model"
)

type ScoringSuite struct {
	suite.Suite
	dhoni  *model.Entity
	kohli  *model.Entity
	stokes *model.Entity
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ScoringSuite) SetupTest() {
	s.dhoni = &model.Entity{
		Name:           "MS Dhoni",
		DebutYear:      ptr(2004),
		CountryPlaying: ptr("India"),
		CountryBorn:    ptr("India"),
		Type:           ptr("Wicketkeeper"),
		IPLTeam:        ptr("Chennai Super Kings"),
	}
	s.kohli = &model.Entity{
		Name:           "Virat Kohli",
		DebutYear:      ptr(2008),
		CountryPlaying: ptr("India"),
		CountryBorn:    ptr("India"),
		Type:           ptr("Batsman"),
		IPLTeam:        ptr("Royal Challengers Bengaluru"),
	}
	s.stokes = &model.Entity{
		Name:           "Ben Stokes",
		DebutYear:      ptr(2011),
		CountryPlaying: ptr("England"),
		CountryBorn:    ptr("New Zealand"),
		Type:           ptr("All-rounder"),
	}
}

func (s *ScoringSuite) TestCompareSelfMatchesEverything() {
	for _, e := range []*model.Entity{s.dhoni, s.kohli, s.stokes} {
		cmp, all := Compare(e, e)
		s.True(all, e.Name)
		s.Len(cmp, len(model.Attributes))
		s.Equal(len(model.Attributes), MatchCount(cmp))
	}
}

func (s *ScoringSuite) TestComparePartialMatch() {
	cmp, all := Compare(s.kohli, s.dhoni)

	s.False(all)
	s.False(cmp[model.AttrDebutYear])
	s.True(cmp[model.AttrCountryPlaying])
	s.True(cmp[model.AttrCountryBorn])
	s.False(cmp[model.AttrType])
	s.False(cmp[model.AttrIPLTeam])
	s.Equal(2, MatchCount(cmp))
}

func (s *ScoringSuite) TestCompareUsesValuesNotPointers() {
	copyOfDhoni := &model.Entity{
		Name:           "Someone Else",
		DebutYear:      ptr(2004),
		CountryPlaying: ptr("India"),
		CountryBorn:    ptr("India"),
		Type:           ptr("Wicketkeeper"),
		IPLTeam:        ptr("Chennai Super Kings"),
	}

	// allMatch depends only on compared fields, not the name
	_, all := Compare(copyOfDhoni, s.dhoni)
	s.True(all)
}

func (s *ScoringSuite) TestCompareNilAgainstNilIsMatch() {
	other := &model.Entity{Name: "Steve Smith", DebutYear: ptr(2010)}
	cmp, _ := Compare(s.stokes, other)

	// Neither has an IPL team
	s.True(cmp[model.AttrIPLTeam])
	s.False(cmp[model.AttrCountryPlaying])
}

func (s *ScoringSuite) TestCompareNilAgainstValueIsMismatch() {
	cmp, all := Compare(s.stokes, s.dhoni)
	s.False(cmp[model.AttrIPLTeam])
	s.False(all)

	cmp, _ = Compare(s.dhoni, s.stokes)
	s.False(cmp[model.AttrIPLTeam])
}

func (s *ScoringSuite) TestCompareEmptyEntitiesMatch() {
	_, all := Compare(&model.Entity{Name: "A"}, &model.Entity{Name: "B"})
	s.True(all)
}
