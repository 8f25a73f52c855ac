package nutrition

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func findRecord(t *testing.T, records []NutrientRecord, group, key string) NutrientRecord {
	t.Helper()
	for _, rec := range records {
		if rec.Group == group && rec.Key == key {
			return rec
		}
	}
	t.Fatalf("record %s/%s not found", group, key)
	return NutrientRecord{}
}

func noLookup(t *testing.T) FoodLookup {
	return func(id uuid.UUID) (*ServingProfile, error) {
		t.Fatalf("unexpected lookup for %s", id)
		return nil, nil
	}
}

func TestAnalyzeUsesSnapshots(t *testing.T) {
	snap := ZeroProfile()
	snap.Vitamins["c"] = 45
	snap.Minerals["iron"] = 9
	snap.Sodium = 800
	snap.Potassium = 2000
	snap.Fat.Saturated = 11
	snap.Fat.Total = 20
	snap.Cholesterol = 150

	meals := []AnalyzerMeal{
		{Date: day(1), Items: []AnalyzerItem{{FoodID: uuid.New(), Amount: 100, Unit: "g", Snapshot: &snap}}},
		{Date: day(2), Items: []AnalyzerItem{{FoodID: uuid.New(), Amount: 100, Unit: "g", Snapshot: &snap}}},
	}

	report, err := Analyze(day(1), day(2), meals, noLookup(t))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Range.TrackedDays)

	vitC := findRecord(t, report.Summary, "vitamins", "c")
	assert.Equal(t, 90.0, vitC.Total)
	assert.Equal(t, 45.0, vitC.PerDay)
	require.NotNil(t, vitC.Percentage)
	assert.Equal(t, 50.0, *vitC.Percentage) // 45 of 90mg RDA

	// lipid total has no RDA and never classifies
	fatTotal := findRecord(t, report.Summary, "lipids", "total")
	assert.Nil(t, fatTotal.RDA)
	assert.Nil(t, fatTotal.Percentage)
}

func TestAnalyzeDistinctDates(t *testing.T) {
	snap := ZeroProfile()
	snap.Vitamins["c"] = 30

	// Two meals on the same calendar date count as one tracked day.
	sameDay := day(5).Add(6 * time.Hour)
	meals := []AnalyzerMeal{
		{Date: day(5), Items: []AnalyzerItem{{FoodID: uuid.New(), Snapshot: &snap}}},
		{Date: sameDay, Items: []AnalyzerItem{{FoodID: uuid.New(), Snapshot: &snap}}},
	}

	report, err := Analyze(day(5), day(5), meals, noLookup(t))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Range.TrackedDays)

	vitC := findRecord(t, report.Summary, "vitamins", "c")
	assert.Equal(t, 60.0, vitC.PerDay)
}

func TestAnalyzeNoMealsDividesByOne(t *testing.T) {
	report, err := Analyze(day(1), day(7), nil, noLookup(t))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Range.TrackedDays)
	vitC := findRecord(t, report.Summary, "vitamins", "c")
	assert.Equal(t, 0.0, vitC.PerDay)
	require.NotNil(t, vitC.Percentage)
	assert.Equal(t, 0.0, *vitC.Percentage)
}

func TestAnalyzeFallsBackToLookup(t *testing.T) {
	foodID := uuid.New()
	food := ZeroProfile()
	food.Vitamins["c"] = 90
	food.Calories = 100

	calls := 0
	lookup := func(id uuid.UUID) (*ServingProfile, error) {
		calls++
		assert.Equal(t, foodID, id)
		return &ServingProfile{ServingAmount: 100, ServingUnit: "g", Nutrition: food}, nil
	}

	// Macro-only snapshot forces a recompute; three items share one food so
	// the lookup is memoized.
	macroOnly := ZeroProfile()
	macroOnly.Calories = 50

	meals := []AnalyzerMeal{
		{Date: day(1), Items: []AnalyzerItem{
			{FoodID: foodID, Amount: 50, Unit: "g", Snapshot: &macroOnly},
			{FoodID: foodID, Amount: 100, Unit: "g", Snapshot: nil},
			{FoodID: foodID, Amount: 50, Unit: "g", Snapshot: &macroOnly},
		}},
	}

	report, err := Analyze(day(1), day(1), meals, lookup)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	vitC := findRecord(t, report.Summary, "vitamins", "c")
	assert.Equal(t, 180.0, vitC.Total) // 45 + 90 + 45
}

func TestAnalyzeSkipsMissingFoods(t *testing.T) {
	lookup := func(id uuid.UUID) (*ServingProfile, error) {
		return nil, nil
	}

	meals := []AnalyzerMeal{
		{Date: day(1), Items: []AnalyzerItem{{FoodID: uuid.New(), Amount: 100, Unit: "g"}}},
	}

	report, err := Analyze(day(1), day(1), meals, lookup)
	require.NoError(t, err)

	vitC := findRecord(t, report.Summary, "vitamins", "c")
	assert.Equal(t, 0.0, vitC.Total)
}

func TestAnalyzeClassificationBoundaries(t *testing.T) {
	// One day of meals; per-day equals total.
	snap := ZeroProfile()
	snap.Vitamins["c"] = 72         // exactly 80% of 90mg: not a deficiency
	snap.Minerals["iron"] = 10      // 55.6%: deficiency
	snap.Sodium = 1500              // exactly 100%: not an excess
	snap.Fat.Saturated = 21         // 105%: excess (upper-limit key)
	snap.Fat.Monounsaturated = 24   // exactly 120%: not an excess
	snap.Fat.Polyunsaturated = 24.2 // 121%: excess
	snap.Potassium = 3000           // 63.8%: deficiency despite electrolyte group

	meals := []AnalyzerMeal{
		{Date: day(1), Items: []AnalyzerItem{{FoodID: uuid.New(), Snapshot: &snap}}},
	}

	report, err := Analyze(day(1), day(1), meals, noLookup(t))
	require.NoError(t, err)

	deficient := map[string]bool{}
	for _, rec := range report.Deficiencies {
		deficient[rec.Group+"/"+rec.Key] = true
	}
	excess := map[string]bool{}
	for _, rec := range report.Excesses {
		excess[rec.Group+"/"+rec.Key] = true
	}

	assert.False(t, deficient["vitamins/c"], "80%% exactly is not a deficiency")
	assert.True(t, deficient["minerals/iron"])
	assert.True(t, deficient["electrolytes/potassium"])

	assert.False(t, excess["electrolytes/sodium"], "100%% exactly is not an excess")
	assert.True(t, excess["lipids/saturated"])
	assert.False(t, excess["lipids/monounsaturated"], "120%% exactly is not an excess")
	assert.True(t, excess["lipids/polyunsaturated"])
}
