package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diettrack/backend/config"
	"github.com/diettrack/backend/internal/database"
	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/nutrition"
)

const (
	defaultDatasetPath = "indian_food_nutrition_520.csv"
	adminEmail         = "admin@diettrack.com"
	adminPassword      = "admin123"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	log.Println("Database seeded successfully!")
}

func seed(db *gorm.DB) error {
	datasetPath := os.Getenv("FOOD_DATASET_PATH")
	if datasetPath == "" {
		datasetPath = defaultDatasetPath
	}

	csvItems, err := loadCSVFoodItems(datasetPath)
	if err != nil {
		return err
	}

	base := baseFoodItems()
	seen := make(map[string]bool, len(base))
	for _, item := range base {
		seen[strings.ToLower(item.Name)] = true
	}

	items := base
	for _, item := range csvItems {
		key := strings.ToLower(item.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}

	// Replace the whole catalog
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.FoodItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear food items: %w", err)
	}
	log.Println("Cleared existing food items")

	if err := db.CreateInBatches(items, 100).Error; err != nil {
		return fmt.Errorf("failed to insert food items: %w", err)
	}
	log.Printf("Inserted %d food items (base: %d, csv: %d)", len(items), len(base), len(items)-len(base))

	return ensureAdminUser(db)
}

func ensureAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin User",
		Email:        adminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Created default admin user")
	log.Printf("Email: %s", adminEmail)
	log.Printf("Password: %s", adminPassword)
	return nil
}

var csvCategoryMap = map[string]string{
	"regional specialty": "other",
	"fruit":              "fruits",
	"breakfast/tiffin":   "grains",
	"bread/roti":         "grains",
	"salad/side":         "vegetables",
	"beverage":           "beverages",
	"sweets/dessert":     "sweets",
	"snack/street food":  "other",
	"meat/seafood":       "proteins",
	"rice dish":          "grains",
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

func toNumber(value string) float64 {
	cleaned := nonNumeric.ReplaceAllString(strings.TrimSpace(value), "")
	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return 0
	}
	return math.Round(num*100) / 100
}

// loadCSVFoodItems imports the extended dataset. A missing file is not an
// error; the base catalog alone is a valid seed.
func loadCSVFoodItems(path string) ([]models.FoodItem, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Food dataset not found at %s. Skipping CSV import.", path)
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var items []models.FoodItem
	seen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Error parsing CSV row: %v", err)
			continue
		}

		name := field(row, "Item")
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		category := csvCategoryMap[strings.ToLower(field(row, "Category"))]
		if category == "" {
			category = "other"
		}

		servingAmount := toNumber(field(row, "Serving_g"))
		if servingAmount <= 0 {
			servingAmount = 100
		}

		var descParts []string
		if v := field(row, "Key_vitamins_minerals"); v != "" {
			descParts = append(descParts, "Key vitamins/minerals: "+v)
		}
		if v := field(row, "Notes"); v != "" {
			descParts = append(descParts, v)
		}

		profile := nutrition.Profile{
			Calories: toNumber(field(row, "Calories_kcal_per_100g")),
			Protein:  toNumber(field(row, "Protein_g_per_100g")),
			Carbs: nutrition.Carbs{
				Total: toNumber(field(row, "Carbs_g_per_100g")),
				Fiber: toNumber(field(row, "Fiber_g_per_100g")),
				Sugar: toNumber(field(row, "Sugars_g_per_100g")),
			},
			Fat: nutrition.Fat{
				Total: toNumber(field(row, "Fat_g_per_100g")),
			},
			Sodium: toNumber(field(row, "Sodium_mg_per_100g")),
		}

		items = append(items, models.FoodItem{
			Name:               name,
			Description:        strings.Join(descParts, " | "),
			Category:           category,
			ServingAmount:      servingAmount,
			ServingUnit:        "g",
			ServingDescription: "Per 100 g serving",
			Nutrition:          profile,
			SuitableFor:        models.SuitabilityList{},
			NotSuitableFor:     models.SuitabilityList{},
		})
	}

	log.Printf("Loaded %d food items from CSV dataset", len(items))
	return items, nil
}

func tags(pairs ...models.SuitabilityTag) models.SuitabilityList {
	return models.SuitabilityList(pairs)
}

func baseFoodItems() []models.FoodItem {
	return []models.FoodItem{
		{
			Name: "White Rice (Cooked)", Description: "Plain cooked white rice", Category: "grains",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup cooked",
			Nutrition: nutrition.Profile{
				Calories: 130, Protein: 2.7,
				Carbs:  nutrition.Carbs{Total: 28.2, Fiber: 0.4, Sugar: 0.1},
				Fat:    nutrition.Fat{Total: 0.3, Saturated: 0.1},
				Sodium: 1, Potassium: 35,
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Brown Rice (Cooked)", Description: "Whole grain brown rice", Category: "grains",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup cooked",
			Nutrition: nutrition.Profile{
				Calories: 112, Protein: 2.6,
				Carbs:    nutrition.Carbs{Total: 23.5, Fiber: 1.8, Sugar: 0.4},
				Fat:      nutrition.Fat{Total: 0.9, Saturated: 0.2},
				Sodium:   5, Potassium: 43,
				Minerals: map[string]float64{"magnesium": 43, "phosphorus": 83},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Notes: "Better choice than white rice due to lower GI"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Chapati (Whole Wheat)", Description: "Indian whole wheat flatbread", Category: "grains",
			ServingAmount: 40, ServingUnit: "g", ServingDescription: "1 medium chapati",
			Nutrition: nutrition.Profile{
				Calories: 104, Protein: 3.5,
				Carbs:  nutrition.Carbs{Total: 18.0, Fiber: 2.8, Sugar: 0.5},
				Fat:    nutrition.Fat{Total: 2.0, Saturated: 0.4},
				Sodium: 120, Potassium: 115,
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "diabetes"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "celiac_gluten_free", Reason: "Contains gluten"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Oats", Description: "Rolled oats", Category: "grains",
			ServingAmount: 40, ServingUnit: "g", ServingDescription: "1/2 cup dry",
			Nutrition: nutrition.Profile{
				Calories: 150, Protein: 5.3,
				Carbs:    nutrition.Carbs{Total: 27.0, Fiber: 4.0, Sugar: 0.4},
				Fat:      nutrition.Fat{Total: 2.8, Saturated: 0.5},
				Sodium:   2, Potassium: 143,
				Minerals: map[string]float64{"iron": 1.7, "magnesium": 56},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Notes: "Low GI, helps control blood sugar"},
				models.SuitabilityTag{Condition: "high_cholesterol", Notes: "Contains beta-glucan that lowers cholesterol"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Chicken Breast (Cooked)", Description: "Skinless, boneless chicken breast", Category: "proteins",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "3.5 oz",
			Nutrition: nutrition.Profile{
				Calories: 165, Protein: 31.0,
				Fat:         nutrition.Fat{Total: 3.6, Saturated: 1.0},
				Cholesterol: 85, Sodium: 74, Potassium: 256,
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_blood_pressure"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian", Reason: "Contains meat"},
				models.SuitabilityTag{Condition: "vegan", Reason: "Contains meat"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Dal (Cooked Lentils)", Description: "Cooked yellow or red lentils", Category: "proteins",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup cooked",
			Nutrition: nutrition.Profile{
				Calories: 116, Protein: 9.0,
				Carbs:    nutrition.Carbs{Total: 20.0, Fiber: 8.0, Sugar: 1.8},
				Fat:      nutrition.Fat{Total: 0.4, Saturated: 0.1},
				Sodium:   2, Potassium: 369,
				Minerals: map[string]float64{"iron": 3.3, "magnesium": 36},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Notes: "High fiber, low GI"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Paneer", Description: "Indian cottage cheese", Category: "proteins",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "3.5 oz",
			Nutrition: nutrition.Profile{
				Calories: 265, Protein: 18.3,
				Carbs:       nutrition.Carbs{Total: 1.2, Sugar: 1.2},
				Fat:         nutrition.Fat{Total: 20.8, Saturated: 11.2},
				Cholesterol: 56, Sodium: 18,
				Minerals:    map[string]float64{"calcium": 208},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "vegan", Reason: "Contains dairy"},
				models.SuitabilityTag{Condition: "lactose_intolerance", Reason: "Contains lactose"},
				models.SuitabilityTag{Condition: "high_cholesterol", Reason: "High in saturated fat"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Eggs (Boiled)", Description: "Hard boiled chicken eggs", Category: "proteins",
			ServingAmount: 50, ServingUnit: "g", ServingDescription: "1 large egg",
			Nutrition: nutrition.Profile{
				Calories: 78, Protein: 6.3,
				Carbs:       nutrition.Carbs{Total: 0.6, Sugar: 0.6},
				Fat:         nutrition.Fat{Total: 5.3, Saturated: 1.6},
				Cholesterol: 186, Sodium: 62, Potassium: 63,
				Vitamins:    map[string]float64{"a": 270, "d": 41, "b12": 0.6},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "vegan", Reason: "Contains eggs"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Tofu", Description: "Firm tofu", Category: "proteins",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "3.5 oz",
			Nutrition: nutrition.Profile{
				Calories: 76, Protein: 8.0,
				Carbs:    nutrition.Carbs{Total: 1.9, Fiber: 0.3, Sugar: 0.7},
				Fat:      nutrition.Fat{Total: 4.8, Saturated: 0.7},
				Sodium:   7,
				Minerals: map[string]float64{"calcium": 350, "iron": 5.4, "magnesium": 30},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Spinach (Cooked)", Description: "Cooked spinach", Category: "vegetables",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup cooked",
			Nutrition: nutrition.Profile{
				Calories: 23, Protein: 2.9,
				Carbs:    nutrition.Carbs{Total: 3.6, Fiber: 2.2, Sugar: 0.4},
				Fat:      nutrition.Fat{Total: 0.3},
				Sodium:   70, Potassium: 466,
				Vitamins: map[string]float64{"a": 9377, "c": 9.8, "k": 493},
				Minerals: map[string]float64{"iron": 2.7, "calcium": 136, "magnesium": 87},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_blood_pressure"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Broccoli (Cooked)", Description: "Steamed broccoli", Category: "vegetables",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup cooked",
			Nutrition: nutrition.Profile{
				Calories: 35, Protein: 2.4,
				Carbs:    nutrition.Carbs{Total: 7.2, Fiber: 3.3, Sugar: 1.4},
				Fat:      nutrition.Fat{Total: 0.4, Saturated: 0.1},
				Sodium:   41, Potassium: 293,
				Vitamins: map[string]float64{"a": 623, "c": 64.9, "k": 141},
				Minerals: map[string]float64{"calcium": 40, "iron": 0.7},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Tomato", Description: "Fresh raw tomato", Category: "vegetables",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1 medium tomato",
			Nutrition: nutrition.Profile{
				Calories: 18, Protein: 0.9,
				Carbs:    nutrition.Carbs{Total: 3.9, Fiber: 1.2, Sugar: 2.6},
				Fat:      nutrition.Fat{Total: 0.2},
				Sodium:   5, Potassium: 237,
				Vitamins: map[string]float64{"a": 833, "c": 13.7, "k": 7.9},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_blood_pressure"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Banana", Description: "Fresh banana", Category: "fruits",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1 medium banana",
			Nutrition: nutrition.Profile{
				Calories: 89, Protein: 1.1,
				Carbs:    nutrition.Carbs{Total: 22.8, Fiber: 2.6, Sugar: 12.2},
				Fat:      nutrition.Fat{Total: 0.3, Saturated: 0.1},
				Sodium:   1, Potassium: 358,
				Vitamins: map[string]float64{"c": 8.7, "b6": 0.4},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "high_blood_pressure", Notes: "High in potassium"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Reason: "High in natural sugars, consume in moderation"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Apple", Description: "Fresh apple with skin", Category: "fruits",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1 small apple",
			Nutrition: nutrition.Profile{
				Calories: 52, Protein: 0.3,
				Carbs:    nutrition.Carbs{Total: 13.8, Fiber: 2.4, Sugar: 10.4},
				Fat:      nutrition.Fat{Total: 0.2},
				Sodium:   1, Potassium: 107,
				Vitamins: map[string]float64{"c": 4.6},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Notes: "Moderate GI, good fiber content"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Milk (Whole)", Description: "Whole cow's milk", Category: "dairy",
			ServingAmount: 240, ServingUnit: "ml", ServingDescription: "1 cup",
			Nutrition: nutrition.Profile{
				Calories: 149, Protein: 7.7,
				Carbs:       nutrition.Carbs{Total: 11.7, Sugar: 12.3},
				Fat:         nutrition.Fat{Total: 7.9, Saturated: 4.6},
				Cholesterol: 24, Sodium: 105,
				Vitamins:    map[string]float64{"a": 395, "d": 124, "b12": 1.1},
				Minerals:    map[string]float64{"calcium": 276},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "vegan", Reason: "Contains dairy"},
				models.SuitabilityTag{Condition: "lactose_intolerance", Reason: "Contains lactose"},
				models.SuitabilityTag{Condition: "high_cholesterol", Reason: "Contains saturated fat"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Yogurt (Plain)", Description: "Plain low-fat yogurt", Category: "dairy",
			ServingAmount: 100, ServingUnit: "g", ServingDescription: "1/2 cup",
			Nutrition: nutrition.Profile{
				Calories: 63, Protein: 5.3,
				Carbs:       nutrition.Carbs{Total: 7.0, Sugar: 7.0},
				Fat:         nutrition.Fat{Total: 1.6, Saturated: 1.0},
				Cholesterol: 6, Sodium: 70,
				Vitamins:    map[string]float64{"b12": 0.6},
				Minerals:    map[string]float64{"calcium": 183},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "diabetes", Notes: "Choose unsweetened varieties"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "vegan", Reason: "Contains dairy"},
				models.SuitabilityTag{Condition: "lactose_intolerance", Reason: "Contains lactose"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Olive Oil", Description: "Extra virgin olive oil", Category: "fats",
			ServingAmount: 14, ServingUnit: "g", ServingDescription: "1 tablespoon",
			Nutrition: nutrition.Profile{
				Calories: 119,
				Fat:      nutrition.Fat{Total: 13.5, Saturated: 1.9, Monounsaturated: 9.9, Polyunsaturated: 1.4},
				Vitamins: map[string]float64{"e": 1.9, "k": 8.1},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "heart_disease", Notes: "Rich in monounsaturated fats"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Almonds", Description: "Raw almonds", Category: "fats",
			ServingAmount: 28, ServingUnit: "g", ServingDescription: "1 oz (about 23 almonds)",
			Nutrition: nutrition.Profile{
				Calories: 164, Protein: 6.0,
				Carbs:     nutrition.Carbs{Total: 6.1, Fiber: 3.5, Sugar: 1.2},
				Fat:       nutrition.Fat{Total: 14.2, Saturated: 1.1, Monounsaturated: 8.9, Polyunsaturated: 3.5},
				Potassium: 208,
				Vitamins:  map[string]float64{"e": 7.3},
				Minerals:  map[string]float64{"calcium": 76, "iron": 1.1, "magnesium": 76},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Notes: "Low GI, helps control blood sugar"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Green Tea", Description: "Brewed green tea (unsweetened)", Category: "beverages",
			ServingAmount: 240, ServingUnit: "ml", ServingDescription: "1 cup",
			Nutrition: nutrition.Profile{
				Calories: 2, Sodium: 2, Potassium: 19,
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes"},
				models.SuitabilityTag{Condition: "high_cholesterol"},
				models.SuitabilityTag{Condition: "heart_disease"},
				models.SuitabilityTag{Condition: "vegetarian"},
				models.SuitabilityTag{Condition: "vegan"},
				models.SuitabilityTag{Condition: "celiac_gluten_free"},
			),
			IsCommon: true, IsVerified: true,
		},
		{
			Name: "Dark Chocolate (70-85% cocoa)", Description: "Dark chocolate bar", Category: "sweets",
			ServingAmount: 28, ServingUnit: "g", ServingDescription: "1 oz (about 3 squares)",
			Nutrition: nutrition.Profile{
				Calories: 168, Protein: 2.2,
				Carbs:    nutrition.Carbs{Total: 13.0, Fiber: 3.1, Sugar: 6.8},
				Fat:      nutrition.Fat{Total: 12.0, Saturated: 7.0},
				Sodium:   6, Potassium: 200,
				Minerals: map[string]float64{"iron": 3.4, "magnesium": 64},
			},
			SuitableFor: tags(
				models.SuitabilityTag{Condition: "vegetarian"},
			),
			NotSuitableFor: tags(
				models.SuitabilityTag{Condition: "diabetes", Reason: "Contains sugar, consume in moderation"},
			),
			IsCommon: true, IsVerified: true,
		},
	}
}
