package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/nutrition"
)

// FoodCategories is the closed set of catalog categories.
var FoodCategories = []string{
	"grains", "proteins", "vegetables", "fruits", "dairy",
	"fats", "sweets", "beverages", "other",
}

// FoodItem is one entry in the admin-curated nutrition catalog. The
// nutrition profile describes one reference serving.
type FoodItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:50;not null;index" json:"category"`

	ServingAmount      float64 `gorm:"not null" json:"serving_amount"`
	ServingUnit        string  `gorm:"size:20;not null" json:"serving_unit"`
	ServingDescription string  `gorm:"size:100" json:"serving_description"`

	Nutrition nutrition.Profile `gorm:"type:jsonb;not null" json:"nutrition"`

	SuitableFor    SuitabilityList `gorm:"type:jsonb;not null;default:'[]'" json:"suitable_for"`
	NotSuitableFor SuitabilityList `gorm:"type:jsonb;not null;default:'[]'" json:"not_suitable_for"`

	IsCommon   bool `json:"is_common"`
	IsVerified bool `json:"is_verified"`

	AddedBy       *uuid.UUID `gorm:"type:uuid" json:"added_by"`
	LastUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"last_updated_by"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// NutritionForServing scales the reference-serving nutrition to the
// requested amount and unit.
func (f *FoodItem) NutritionForServing(amount float64, unit string) (nutrition.Profile, error) {
	return nutrition.ScaleForServing(f.Nutrition, f.ServingAmount, f.ServingUnit, amount, unit)
}

// IsSuitableFor reports whether the food is marked suitable for a health
// condition. A not-suitable tag takes precedence over a suitable one.
func (f *FoodItem) IsSuitableFor(condition string) bool {
	if f.NotSuitableFor.Contains(condition) {
		return false
	}
	return f.SuitableFor.Contains(condition)
}

// ServingSource adapts the food for the micronutrient analyzer.
func (f *FoodItem) ServingSource() *nutrition.ServingProfile {
	return &nutrition.ServingProfile{
		ServingAmount: f.ServingAmount,
		ServingUnit:   f.ServingUnit,
		Nutrition:     f.Nutrition,
	}
}
