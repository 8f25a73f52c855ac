package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBMI(t *testing.T) {
	weight := &Measurement{Value: 70, Unit: "kg"}
	height := &Measurement{Value: 175, Unit: "cm"}

	bmi := BMI(weight, height)
	require.NotNil(t, bmi)
	assert.Equal(t, 22.9, *bmi)

	assert.Nil(t, BMI(nil, height))
	assert.Nil(t, BMI(weight, nil))
}

func TestBMIUnitConversion(t *testing.T) {
	// 154.3 lbs ~= 70 kg, 5.74 ft ~= 175 cm
	bmi := BMI(&Measurement{Value: 154.3, Unit: "lbs"}, &Measurement{Value: 5.74, Unit: "ft"})
	require.NotNil(t, bmi)
	assert.InDelta(t, 22.9, *bmi, 0.2)
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi      float64
		expected string
	}{
		{16.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{42.0, "Obese"},
	}

	for _, tc := range cases {
		got := BMICategory(&tc.bmi)
		require.NotNil(t, got)
		assert.Equal(t, tc.expected, *got, "bmi %.1f", tc.bmi)
	}

	assert.Nil(t, BMICategory(nil))
}

func TestDailyCaloriesMaintenance(t *testing.T) {
	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; TDEE = 1648.75*1.55
	calories := DailyCalories(CalorieInputs{
		Weight:        &Measurement{Value: 70, Unit: "kg"},
		Height:        &Measurement{Value: 175, Unit: "cm"},
		Age:           intPtr(30),
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   "maintenance",
	})
	require.NotNil(t, calories)
	assert.Equal(t, 2556, *calories)
}

func TestDailyCaloriesGoalAdjustments(t *testing.T) {
	base := CalorieInputs{
		Weight:        &Measurement{Value: 70, Unit: "kg"},
		Height:        &Measurement{Value: 175, Unit: "cm"},
		Age:           intPtr(30),
		Gender:        "male",
		ActivityLevel: "moderate",
	}

	maintenance := DailyCalories(base)
	require.NotNil(t, maintenance)

	loss := base
	loss.FitnessGoal = "weight_loss"
	gain := base
	gain.FitnessGoal = "weight_gain"
	muscle := base
	muscle.FitnessGoal = "muscle_building"

	assert.Equal(t, *maintenance-500, *DailyCalories(loss))
	assert.Equal(t, *maintenance+500, *DailyCalories(gain))
	assert.Equal(t, *maintenance+250, *DailyCalories(muscle))
}

func TestDailyCaloriesNonMaleBranch(t *testing.T) {
	male := CalorieInputs{
		Weight:        &Measurement{Value: 60, Unit: "kg"},
		Height:        &Measurement{Value: 165, Unit: "cm"},
		Age:           intPtr(25),
		Gender:        "male",
		ActivityLevel: "light",
	}
	female := male
	female.Gender = "female"
	other := male
	other.Gender = "other"

	// Every non-male gender uses the same constant.
	assert.Equal(t, *DailyCalories(female), *DailyCalories(other))
	assert.NotEqual(t, *DailyCalories(male), *DailyCalories(female))
}

func TestDailyCaloriesFloor(t *testing.T) {
	calories := DailyCalories(CalorieInputs{
		Weight:        &Measurement{Value: 40, Unit: "kg"},
		Height:        &Measurement{Value: 150, Unit: "cm"},
		Age:           intPtr(80),
		Gender:        "female",
		ActivityLevel: "sedentary",
		FitnessGoal:   "weight_loss",
	})
	require.NotNil(t, calories)
	assert.Equal(t, 1200, *calories)
}

func TestDailyCaloriesMissingInputs(t *testing.T) {
	complete := CalorieInputs{
		Weight:        &Measurement{Value: 70, Unit: "kg"},
		Height:        &Measurement{Value: 175, Unit: "cm"},
		Age:           intPtr(30),
		Gender:        "male",
		ActivityLevel: "moderate",
	}

	noWeight := complete
	noWeight.Weight = nil
	assert.Nil(t, DailyCalories(noWeight))

	noAge := complete
	noAge.Age = nil
	assert.Nil(t, DailyCalories(noAge))

	noGender := complete
	noGender.Gender = ""
	assert.Nil(t, DailyCalories(noGender))

	badActivity := complete
	badActivity.ActivityLevel = "extreme"
	assert.Nil(t, DailyCalories(badActivity))
}

func TestMacroGoalsMaintenance(t *testing.T) {
	calories := 2556
	macros := MacroGoals(&calories, &Measurement{Value: 70, Unit: "kg"}, "maintenance")
	require.NotNil(t, macros)

	// protein = round(70*1.6) = 112; fatCalories = round(2556*0.25) = 639;
	// fat = round(639/9) = 71; carbs = round((2556-448-639)/4) = 367
	assert.Equal(t, 112, macros.Protein)
	assert.Equal(t, 71, macros.Fat)
	assert.Equal(t, 367, macros.Carbs)
}

func TestMacroGoalsByGoal(t *testing.T) {
	calories := 2600
	weight := &Measurement{Value: 80, Unit: "kg"}

	loss := MacroGoals(&calories, weight, "weight_loss")
	require.NotNil(t, loss)
	assert.Equal(t, 176, loss.Protein) // 80*2.2

	gain := MacroGoals(&calories, weight, "weight_gain")
	require.NotNil(t, gain)
	assert.Equal(t, 144, gain.Protein) // 80*1.8
	assert.Equal(t, 87, gain.Fat)      // round(round(2600*0.3)/9)
}

func TestMacroGoalsMissingInputs(t *testing.T) {
	calories := 2000
	assert.Nil(t, MacroGoals(nil, &Measurement{Value: 70, Unit: "kg"}, "maintenance"))
	assert.Nil(t, MacroGoals(&calories, nil, "maintenance"))
}
