package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logMealViaAPI(t *testing.T, env *testEnv, token, foodID string) string {
	t.Helper()
	body := fmt.Sprintf(`{
		"meal_type": "breakfast",
		"items": [{"food_id": %q, "amount": 50, "unit": "g"}]
	}`, foodID)
	w := env.request(t, "POST", "/api/v1/meals", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.ID
}

func TestCreateAndGetMeal(t *testing.T) {
	env := setupAPITest(t)
	adminToken := env.registerUser(t, "Admin", "admin@diettrack.com")
	foodID := createFoodViaAPI(t, env, adminToken, oatsJSON)
	token := env.registerUser(t, "Eater", "eater@example.com")

	mealID := logMealViaAPI(t, env, token, foodID)

	w := env.request(t, "GET", "/api/v1/meals/"+mealID, token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var meal struct {
		MealType       string `json:"meal_type"`
		TotalNutrition struct {
			Calories float64 `json:"calories"`
		} `json:"total_nutrition"`
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&meal))
	assert.Equal(t, "breakfast", meal.MealType)
	assert.Equal(t, 194.5, meal.TotalNutrition.Calories)
	require.Len(t, meal.Items, 1)
	assert.Equal(t, "Oats", meal.Items[0].Name)
}

func TestMealOwnershipScoping(t *testing.T) {
	env := setupAPITest(t)
	adminToken := env.registerUser(t, "Admin", "admin@diettrack.com")
	foodID := createFoodViaAPI(t, env, adminToken, oatsJSON)
	owner := env.registerUser(t, "Owner", "owner@example.com")
	stranger := env.registerUser(t, "Stranger", "stranger@example.com")

	mealID := logMealViaAPI(t, env, owner, foodID)

	w := env.request(t, "GET", "/api/v1/meals/"+mealID, stranger, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.request(t, "DELETE", "/api/v1/meals/"+mealID, stranger, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, "DELETE", "/api/v1/meals/"+mealID, owner, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateMealValidation(t *testing.T) {
	env := setupAPITest(t)
	token := env.registerUser(t, "Eater", "mealvalid@example.com")

	// Items are required
	w := env.request(t, "POST", "/api/v1/meals", token, `{"meal_type": "lunch", "items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown meal type
	w = env.request(t, "POST", "/api/v1/meals", token, `{
		"meal_type": "brunch",
		"items": [{"food_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "amount": 50, "unit": "g"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown food
	w = env.request(t, "POST", "/api/v1/meals", token, `{
		"meal_type": "lunch",
		"items": [{"food_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "amount": 50, "unit": "g"}]
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealSummariesEndpoints(t *testing.T) {
	env := setupAPITest(t)
	adminToken := env.registerUser(t, "Admin", "admin@diettrack.com")
	foodID := createFoodViaAPI(t, env, adminToken, oatsJSON)
	token := env.registerUser(t, "Eater", "summary@example.com")
	logMealViaAPI(t, env, token, foodID)

	w := env.request(t, "GET", "/api/v1/meals/summary/daily", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var daily struct {
		Summary []struct {
			Date          string  `json:"date"`
			TotalCalories float64 `json:"total_calories"`
		} `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&daily))
	require.Len(t, daily.Summary, 1)
	assert.Equal(t, 194.5, daily.Summary[0].TotalCalories)

	w = env.request(t, "GET", "/api/v1/meals/summary/meal-types", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var breakdown struct {
		Breakdown []struct {
			MealType  string `json:"meal_type"`
			MealCount int    `json:"meal_count"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&breakdown))
	require.Len(t, breakdown.Breakdown, 1)
	assert.Equal(t, "breakfast", breakdown.Breakdown[0].MealType)

	w = env.request(t, "GET", "/api/v1/meals/summary/micronutrients", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Malformed dates are rejected
	w = env.request(t, "GET", "/api/v1/meals/summary/daily?start_date=yesterday", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealPhotoWithoutStorage(t *testing.T) {
	env := setupAPITest(t)
	adminToken := env.registerUser(t, "Admin", "admin@diettrack.com")
	foodID := createFoodViaAPI(t, env, adminToken, oatsJSON)
	token := env.registerUser(t, "Eater", "photo@example.com")
	mealID := logMealViaAPI(t, env, token, foodID)

	w := env.request(t, "POST", "/api/v1/meals/"+mealID+"/photo", token, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "photo storage is not configured", decodeError(t, w))
}
