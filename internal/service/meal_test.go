package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/nutrition"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/testhelpers"
	"github.com/diettrack/backend/internal/types"
)

type mealFixture struct {
	db      *gorm.DB
	meals   *service.MealService
	foods   *service.FoodService
	user    *models.User
	oats    *models.FoodItem
	chicken *models.FoodItem
}

func setupMealTest(t *testing.T) *mealFixture {
	t.Helper()
	db := testhelpers.SetupInMemoryDatabase(t)
	foodSvc := service.NewFoodService(db)
	user := createTestUser(t, db, "Meal User", "meals@example.com")

	oats := createTestFood(t, db, foodSvc, oatsRequest())
	chicken := createTestFood(t, db, foodSvc, &types.CreateFoodRequest{
		Name: "Chicken Breast", Category: "proteins",
		ServingAmount: 100, ServingUnit: "g",
		Nutrition: nutrition.Profile{
			Calories: 165, Protein: 31,
			Fat:         nutrition.Fat{Total: 3.6, Saturated: 1},
			Cholesterol: 85, Sodium: 74, Potassium: 256,
		},
		IsCommon: true, IsVerified: true,
	})

	return &mealFixture{
		db:      db,
		meals:   service.NewMealService(db),
		foods:   foodSvc,
		user:    user,
		oats:    oats,
		chicken: chicken,
	}
}

func (f *mealFixture) logMeal(t *testing.T, mealType string, date time.Time, items ...types.MealItemRequest) *models.Meal {
	t.Helper()
	meal, err := f.meals.Create(f.user.ID, &types.CreateMealRequest{
		MealType: mealType,
		Date:     &date,
		Items:    items,
	})
	require.NoError(t, err)
	return meal
}

func TestCreateMealFreezesSnapshots(t *testing.T) {
	f := setupMealTest(t)

	meal := f.logMeal(t, "breakfast", time.Now(),
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 50, Unit: "g"})
	require.Len(t, meal.Items, 1)
	assert.Equal(t, 194.5, meal.Items[0].Nutrition.Calories)
	assert.Equal(t, 194.5, meal.TotalNutrition.Calories)

	// A later catalog edit must not change the logged snapshot
	newProfile := f.oats.Nutrition
	newProfile.Calories = 9999
	_, err := f.foods.Update(f.user.ID, f.oats.ID, &types.UpdateFoodRequest{Nutrition: &newProfile})
	require.NoError(t, err)

	loaded, err := f.meals.GetByID(f.user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 194.5, loaded.Items[0].Nutrition.Calories)
	assert.Equal(t, 194.5, loaded.TotalNutrition.Calories)
}

func TestCreateMealUnknownFood(t *testing.T) {
	f := setupMealTest(t)

	_, err := f.meals.Create(f.user.ID, &types.CreateMealRequest{
		MealType: "lunch",
		Items:    []types.MealItemRequest{{FoodID: uuid.New(), Amount: 100, Unit: "g"}},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetMealScopedToOwner(t *testing.T) {
	f := setupMealTest(t)
	meal := f.logMeal(t, "dinner", time.Now(),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})

	other := createTestUser(t, f.db, "Other", "other@example.com")
	_, err := f.meals.GetByID(other.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateMealReplacesItems(t *testing.T) {
	f := setupMealTest(t)
	meal := f.logMeal(t, "lunch", time.Now(),
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 100, Unit: "g"})
	assert.Equal(t, 389.0, meal.TotalNutrition.Calories)

	newItems := []types.MealItemRequest{
		{FoodID: f.chicken.ID, Amount: 100, Unit: "g"},
		{FoodID: f.oats.ID, Amount: 50, Unit: "g"},
	}
	updated, err := f.meals.Update(f.user.ID, meal.ID, &types.UpdateMealRequest{Items: &newItems})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, 165.0+194.5, updated.TotalNutrition.Calories)

	// The old item rows are gone
	var count int64
	require.NoError(t, f.db.Model(&models.MealItem{}).Where("meal_id = ?", meal.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	loaded, err := f.meals.GetByID(f.user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", loaded.Items[0].Name)
	assert.Equal(t, "Oats", loaded.Items[1].Name)
}

func TestUpdateMealFieldsOnly(t *testing.T) {
	f := setupMealTest(t)
	meal := f.logMeal(t, "snack", time.Now(),
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 100, Unit: "g"})

	updated, err := f.meals.Update(f.user.ID, meal.ID, &types.UpdateMealRequest{
		Name:       strPtr("Afternoon snack"),
		IsFavorite: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Afternoon snack", updated.Name)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, 389.0, updated.TotalNutrition.Calories)
}

func TestDeleteMeal(t *testing.T) {
	f := setupMealTest(t)
	meal := f.logMeal(t, "dinner", time.Now(),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})

	other := createTestUser(t, f.db, "Other", "otherdel@example.com")
	assert.ErrorIs(t, f.meals.Delete(other.ID, meal.ID), service.ErrNotFound)

	require.NoError(t, f.meals.Delete(f.user.ID, meal.ID))
	_, err := f.meals.GetByID(f.user.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListMeals(t *testing.T) {
	f := setupMealTest(t)
	now := time.Now()
	f.logMeal(t, "breakfast", now.AddDate(0, 0, -2),
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "lunch", now.AddDate(0, 0, -1),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "lunch", now,
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 150, Unit: "g"})

	page, err := f.meals.List(f.user.ID, types.MealListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	// Newest first
	assert.Equal(t, 247.5, page.Meals[0].TotalNutrition.Calories)

	lunchOnly, err := f.meals.List(f.user.ID, types.MealListFilter{MealType: "lunch"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), lunchOnly.Total)

	start := now.AddDate(0, 0, -1)
	ranged, err := f.meals.List(f.user.ID, types.MealListFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ranged.Total)
}

func TestDailySummaryGroupsByDay(t *testing.T) {
	f := setupMealTest(t)
	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	f.logMeal(t, "breakfast", day,
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "lunch", day.Add(5*time.Hour),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "dinner", day.AddDate(0, 0, 1),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 200, Unit: "g"})

	start := day.AddDate(0, 0, -1)
	end := day.AddDate(0, 0, 2)
	summary, err := f.meals.GetDailySummary(f.user.ID, &start, &end)
	require.NoError(t, err)
	require.Len(t, summary.Summary, 2)

	// Newest day first
	assert.Equal(t, "2026-03-11", summary.Summary[0].Date)
	assert.Equal(t, 330.0, summary.Summary[0].TotalCalories)

	assert.Equal(t, "2026-03-10", summary.Summary[1].Date)
	assert.Equal(t, 389.0+165.0, summary.Summary[1].TotalCalories)
	assert.Equal(t, 16.9+31.0, summary.Summary[1].TotalProtein)
	require.Len(t, summary.Summary[1].Meals, 2)
}

func TestMealTypeBreakdown(t *testing.T) {
	f := setupMealTest(t)
	now := time.Now()

	f.logMeal(t, "lunch", now.AddDate(0, 0, -1),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "lunch", now,
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "breakfast", now,
		types.MealItemRequest{FoodID: f.oats.ID, Amount: 100, Unit: "g"})

	breakdown, err := f.meals.GetMealTypeBreakdown(f.user.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, breakdown.Breakdown, 2)

	// Canonical order: breakfast before lunch
	assert.Equal(t, "breakfast", breakdown.Breakdown[0].MealType)
	assert.Equal(t, 1, breakdown.Breakdown[0].MealCount)
	assert.Equal(t, "lunch", breakdown.Breakdown[1].MealType)
	assert.Equal(t, 2, breakdown.Breakdown[1].MealCount)
	assert.Equal(t, 330.0, breakdown.Breakdown[1].TotalCalories)
}

func TestMicronutrientSummary(t *testing.T) {
	f := setupMealTest(t)
	now := time.Now()

	f.logMeal(t, "dinner", now,
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})
	f.logMeal(t, "dinner", now.AddDate(0, 0, -1),
		types.MealItemRequest{FoodID: f.chicken.ID, Amount: 100, Unit: "g"})

	report, err := f.meals.GetMicronutrientSummary(f.user.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Range.TrackedDays)
	assert.Equal(t, 148.0, report.Totals.Electrolytes["sodium"])
	assert.Equal(t, 512.0, report.Totals.Electrolytes["potassium"])
	assert.Equal(t, 170.0, report.Totals.Lipids["cholesterol"])
	assert.NotEmpty(t, report.Summary)
}
