package nutrition

// Recommendations groups advice lines by theme. Lines are appended in a
// fixed order (BMI category, fitness goal, then health conditions in the
// order the user stored them) with no deduplication or conflict resolution.
type Recommendations struct {
	General  []string `json:"general"`
	Dietary  []string `json:"dietary"`
	Exercise []string `json:"exercise"`
	Warnings []string `json:"warnings"`
}

type adviceSet struct {
	General  []string
	Dietary  []string
	Exercise []string
	Warnings []string
}

// conditionAdvice is the static condition-to-advice table. It is data, not
// logic: unrecognized conditions contribute nothing, and adding a condition
// means adding an entry here.
var conditionAdvice = map[string]adviceSet{
	"diabetes": {
		Dietary: []string{
			"Monitor carbohydrate intake and choose low-GI foods",
			"Avoid sugary drinks and processed foods",
		},
		Warnings: []string{"Consult your doctor before making major dietary changes"},
	},
	"high_blood_pressure": {
		Dietary: []string{
			"Reduce sodium intake (aim for <2300mg/day)",
			"Increase potassium-rich foods (bananas, spinach)",
		},
		Exercise: []string{"Regular aerobic exercise can help lower blood pressure"},
	},
	"high_cholesterol": {
		Dietary: []string{
			"Limit saturated and trans fats",
			"Increase fiber intake with whole grains and vegetables",
			"Include omega-3 fatty acids (fish, nuts)",
		},
	},
	"heart_disease": {
		Dietary: []string{
			"Follow a heart-healthy diet (Mediterranean style)",
			"Limit sodium and saturated fats",
		},
		Warnings: []string{"Consult your cardiologist before starting new exercise"},
	},
	"kidney_issues": {
		Dietary: []string{
			"Monitor protein intake as advised by your doctor",
			"Limit sodium and potassium if recommended",
		},
		Warnings: []string{"Work closely with a renal dietitian"},
	},
	"thyroid_disorders": {
		Dietary: []string{
			"Ensure adequate iodine intake",
			"Consider selenium-rich foods (Brazil nuts, fish)",
		},
	},
	"pcos_pcod": {
		Dietary: []string{
			"Focus on low-GI carbohydrates",
			"Include anti-inflammatory foods",
		},
		Exercise: []string{"Regular exercise can help manage symptoms"},
	},
	"celiac_gluten_free": {
		Dietary: []string{
			"Strictly avoid gluten-containing foods",
			"Choose naturally gluten-free whole foods",
		},
	},
	"lactose_intolerance": {
		Dietary: []string{
			"Choose lactose-free dairy or alternatives",
			"Ensure adequate calcium from other sources",
		},
	},
	"vegetarian": {
		Dietary: []string{
			"Ensure adequate protein from plant sources",
			"Monitor iron and B12 levels",
		},
	},
	"vegan": {
		Dietary: []string{
			"Supplement B12 and consider vitamin D",
			"Include variety of protein sources (legumes, tofu, tempeh)",
			"Monitor iron, calcium, and omega-3 intake",
		},
	},
}

// Recommend builds the advice lists for a user. BMI category and fitness
// goal each contribute a few fixed lines, then each stored health condition
// appends its set from the table.
func Recommend(bmiCategory *string, fitnessGoal string, healthConditions []string) Recommendations {
	rec := Recommendations{
		General:  []string{},
		Dietary:  []string{},
		Exercise: []string{},
		Warnings: []string{},
	}

	if bmiCategory != nil {
		switch *bmiCategory {
		case "Underweight":
			rec.General = append(rec.General, "Focus on nutrient-dense foods to gain weight healthily")
			rec.Dietary = append(rec.Dietary, "Increase calorie intake with healthy fats and proteins")
		case "Overweight", "Obese":
			rec.General = append(rec.General, "Focus on creating a sustainable calorie deficit")
			rec.Dietary = append(rec.Dietary, "Emphasize whole foods, vegetables, and lean proteins")
			rec.Exercise = append(rec.Exercise, "Combine cardio and strength training for best results")
		}
	}

	switch fitnessGoal {
	case "weight_loss":
		rec.Dietary = append(rec.Dietary,
			"Maintain a moderate calorie deficit (500 cal/day)",
			"Prioritize protein to preserve muscle mass")
		rec.Exercise = append(rec.Exercise, "Include both cardio and resistance training")
	case "muscle_building":
		rec.Dietary = append(rec.Dietary,
			"Consume adequate protein (2.2g per kg body weight)",
			"Maintain a slight calorie surplus")
		rec.Exercise = append(rec.Exercise, "Focus on progressive overload in strength training")
	case "weight_gain":
		rec.Dietary = append(rec.Dietary,
			"Increase calorie intake gradually",
			"Focus on nutrient-dense, calorie-rich foods")
	}

	for _, condition := range healthConditions {
		advice, ok := conditionAdvice[condition]
		if !ok {
			continue
		}
		rec.General = append(rec.General, advice.General...)
		rec.Dietary = append(rec.Dietary, advice.Dietary...)
		rec.Exercise = append(rec.Exercise, advice.Exercise...)
		rec.Warnings = append(rec.Warnings, advice.Warnings...)
	}

	return rec
}
