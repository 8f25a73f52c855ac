package nutrition

import "math"

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Calculators in this file return nil when a required input is missing
// instead of an error, so callers can pass the result straight through to a
// JSON response as null.

func weightKg(w *Measurement) float64 {
	if w.Unit == "kg" {
		return w.Value
	}
	return w.Value * 0.453592 // lbs
}

func heightMeters(h *Measurement) float64 {
	if h.Unit == "cm" {
		return h.Value / 100
	}
	return h.Value * 0.3048 // ft
}

func heightCm(h *Measurement) float64 {
	if h.Unit == "cm" {
		return h.Value
	}
	return h.Value * 30.48 // ft
}

// BMI computes body mass index rounded to 1 decimal place, or nil when
// weight or height is missing.
func BMI(weight, height *Measurement) *float64 {
	if weight == nil || height == nil {
		return nil
	}
	m := heightMeters(height)
	bmi := round1(weightKg(weight) / (m * m))
	return &bmi
}

// BMICategory maps a BMI value to its category. Nil in, nil out.
func BMICategory(bmi *float64) *string {
	if bmi == nil {
		return nil
	}
	var category string
	switch {
	case *bmi < 18.5:
		category = "Underweight"
	case *bmi < 25:
		category = "Normal weight"
	case *bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return &category
}

// CalorieInputs holds the profile fields needed for the daily calorie
// computation. Pointer fields are optional.
type CalorieInputs struct {
	Weight        *Measurement
	Height        *Measurement
	Age           *int
	Gender        string
	ActivityLevel string
	FitnessGoal   string
}

// DailyCalories computes the daily calorie target from BMR (Mifflin-St Jeor)
// times the activity multiplier, adjusted for the fitness goal and floored
// at 1200. Returns nil when weight, height, age, gender, or a recognized
// activity level is missing. Every gender value other than "male" uses the
// female constant.
func DailyCalories(in CalorieInputs) *int {
	if in.Weight == nil || in.Height == nil || in.Age == nil || in.Gender == "" {
		return nil
	}
	mult, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		return nil
	}

	bmr := 10*weightKg(in.Weight) + 6.25*heightCm(in.Height) - 5*float64(*in.Age)
	if in.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * mult

	switch in.FitnessGoal {
	case "weight_loss":
		tdee -= 500
	case "weight_gain":
		tdee += 500
	case "muscle_building":
		tdee += 250
	}

	tdee = math.Max(tdee, 1200)

	calories := int(math.Round(tdee))
	return &calories
}

// MacroSplit is a daily macronutrient target in grams.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroGoals splits a calorie target into protein, fat, and carb grams.
// Protein is weight-based (g per kg), fat is a fraction of calories, and
// carbs absorb the remainder. Carbs are derived from the rounded fat
// calories intermediate, not re-derived from fat grams, so the three values
// reproduce the stored goals exactly. Returns nil when calories or weight
// is missing.
func MacroGoals(calories *int, weight *Measurement, fitnessGoal string) *MacroSplit {
	if calories == nil || weight == nil {
		return nil
	}

	var proteinPerKg, fatFraction float64
	switch fitnessGoal {
	case "weight_loss":
		proteinPerKg, fatFraction = 2.2, 0.25
	case "muscle_building":
		proteinPerKg, fatFraction = 2.2, 0.25
	case "weight_gain":
		proteinPerKg, fatFraction = 1.8, 0.30
	default: // maintenance
		proteinPerKg, fatFraction = 1.6, 0.25
	}

	proteinGrams := math.Round(weightKg(weight) * proteinPerKg)
	proteinCalories := proteinGrams * 4

	fatCalories := math.Round(float64(*calories) * fatFraction)
	fatGrams := math.Round(fatCalories / 9)

	carbGrams := math.Round((float64(*calories) - proteinCalories - fatCalories) / 4)

	return &MacroSplit{
		Protein: int(proteinGrams),
		Carbs:   int(carbGrams),
		Fat:     int(fatGrams),
	}
}
