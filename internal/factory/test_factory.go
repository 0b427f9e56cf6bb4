package factory

import (
	"time"

	"github.com/mcoot/cricle/internal/dependencies/mocks"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/storage/memory"
	"github.com/mcoot/cricle/internal/testutil"
)

// TestLocation is a fixed +05:30 zone matching Asia/Kolkata without
// depending on the host's tz database
var TestLocation = time.FixedZone("IST", 5*60*60+30*60)

// TestStartTime is 2024-03-10 noon in TestLocation. Day 70 of 2024, so
// the mystery for the default test dataset is index (70+2024)%4 == 2.
var TestStartTime = time.Date(2024, 3, 10, 12, 0, 0, 0, TestLocation)

// TestMysteryName is the mystery cricketer at TestStartTime
const TestMysteryName = "Joe Root"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the default test dataset
func NewTestApp() *TestApp {
	return NewTestAppWithDataset(dataset.New(TestEntities(), testutil.NopLogger()))
}

// NewTestAppWithDataset creates a test App playing against the given dataset
func NewTestAppWithDataset(data *dataset.Dataset) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(TestStartTime)
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, data, TestLocation, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestEntities returns a small fixed dataset
func TestEntities() []model.Entity {
	str := func(s string) *string { return &s }
	year := func(y int) *int { return &y }

	return []model.Entity{
		{Name: "Virat Kohli", DebutYear: year(2008), CountryPlaying: str("India"), CountryBorn: str("India"), Type: str("Batsman"), IPLTeam: str("Royal Challengers Bangalore")},
		{Name: "MS Dhoni", DebutYear: year(2004), CountryPlaying: str("India"), CountryBorn: str("India"), Type: str("Wicketkeeper"), IPLTeam: str("Chennai Super Kings")},
		{Name: "Joe Root", DebutYear: year(2012), CountryPlaying: str("England"), CountryBorn: str("England"), Type: str("Batsman")},
		{Name: "Ben Stokes", DebutYear: year(2011), CountryPlaying: str("England"), CountryBorn: str("New Zealand"), Type: str("All-rounder")},
	}
}
