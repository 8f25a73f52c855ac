package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/nutrition"
)

// MealTypes is the closed set of meal type values.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack", "other"}

// MealItem is one logged food inside a meal. Nutrition is a snapshot frozen
// at log time; later edits to the catalog food never change it, so logged
// history stays stable.
type MealItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MealID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null" json:"food_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Unit     string    `gorm:"size:20;not null" json:"unit"`
	Position int       `json:"-"`

	Nutrition nutrition.Profile `gorm:"type:jsonb;not null" json:"nutrition"`

	Notes string `gorm:"size:200" json:"notes"`
}

func (i *MealItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Meal is one logged meal. TotalNutrition is derived from the item
// snapshots and recomputed whenever the item list is replaced.
type Meal struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_meals_user_date" json:"user_id"`
	Name      string         `gorm:"size:50" json:"name"`
	MealType  string         `gorm:"size:20;not null" json:"meal_type"`
	Date      time.Time      `gorm:"not null;index:idx_meals_user_date" json:"date"`

	Items []MealItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"items"`

	TotalNutrition nutrition.Profile `gorm:"type:jsonb;not null" json:"total_nutrition"`

	Notes      string `gorm:"size:500" json:"notes"`
	IsFavorite bool   `json:"is_favorite"`
	IsTemplate bool   `gorm:"index" json:"is_template"`
	ImageURL   string `gorm:"size:255" json:"image_url"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// RecomputeTotals re-sums the item snapshots into TotalNutrition. Callers
// invoke this explicitly after replacing the item list; there is no save
// hook doing it implicitly.
func (m *Meal) RecomputeTotals() {
	profiles := make([]nutrition.Profile, 0, len(m.Items))
	for _, item := range m.Items {
		profiles = append(profiles, item.Nutrition)
	}
	m.TotalNutrition = nutrition.Sum(profiles)
}

// DateString returns the meal date as a calendar day key.
func (m *Meal) DateString() string {
	return m.Date.Format("2006-01-02")
}
