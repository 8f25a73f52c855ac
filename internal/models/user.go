package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/nutrition"
)

// User is an account with an optional body profile. The daily goal fields
// are derived from the profile and recomputed by the write path whenever a
// relevant input changes; they are never edited directly.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"size:50;not null" json:"name"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`

	Age         *int     `json:"age"`
	WeightValue *float64 `gorm:"column:weight_value" json:"-"`
	WeightUnit  string   `gorm:"column:weight_unit;size:8;default:kg" json:"-"`
	HeightValue *float64 `gorm:"column:height_value" json:"-"`
	HeightUnit  string   `gorm:"column:height_unit;size:8;default:cm" json:"-"`

	Gender        string `gorm:"size:20" json:"gender"`
	ActivityLevel string `gorm:"size:20" json:"activity_level"`
	FitnessGoal   string `gorm:"size:20" json:"fitness_goal"`

	HealthConditions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"health_conditions"`

	LocationArea     string `gorm:"size:100" json:"-"`
	LocationLandmark string `gorm:"size:100" json:"-"`
	LocationState    string `gorm:"size:100" json:"-"`
	LocationDistrict string `gorm:"size:100" json:"-"`

	DailyCalorieGoal *int `json:"daily_calorie_goal"`
	DailyProteinGoal *int `json:"daily_protein_goal"`
	DailyCarbsGoal   *int `json:"daily_carbs_goal"`
	DailyFatGoal     *int `json:"daily_fat_goal"`

	IsAdmin   bool       `json:"is_admin"`
	LastLogin *time.Time `json:"last_login"`
}

// BeforeCreate assigns the primary key so inserts work on databases without
// a uuid default.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Location groups the optional address fields for API responses.
type Location struct {
	Area     string `json:"area,omitempty"`
	Landmark string `json:"landmark,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
}

// Location returns the stored address fields.
func (u *User) Location() Location {
	return Location{
		Area:     u.LocationArea,
		Landmark: u.LocationLandmark,
		State:    u.LocationState,
		District: u.LocationDistrict,
	}
}

// Weight returns the stored weight measurement, or nil when unset.
func (u *User) Weight() *nutrition.Measurement {
	if u.WeightValue == nil {
		return nil
	}
	unit := u.WeightUnit
	if unit == "" {
		unit = "kg"
	}
	return &nutrition.Measurement{Value: *u.WeightValue, Unit: unit}
}

// Height returns the stored height measurement, or nil when unset.
func (u *User) Height() *nutrition.Measurement {
	if u.HeightValue == nil {
		return nil
	}
	unit := u.HeightUnit
	if unit == "" {
		unit = "cm"
	}
	return &nutrition.Measurement{Value: *u.HeightValue, Unit: unit}
}

// CalorieInputs bundles the profile fields the calorie calculator needs.
func (u *User) CalorieInputs() nutrition.CalorieInputs {
	return nutrition.CalorieInputs{
		Weight:        u.Weight(),
		Height:        u.Height(),
		Age:           u.Age,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		FitnessGoal:   u.FitnessGoal,
	}
}

// RecomputeGoals refreshes the derived daily goal fields from the current
// profile. Goals are left untouched when the calorie computation has
// missing inputs.
func (u *User) RecomputeGoals() {
	calories := nutrition.DailyCalories(u.CalorieInputs())
	if calories == nil {
		return
	}
	u.DailyCalorieGoal = calories

	macros := nutrition.MacroGoals(calories, u.Weight(), u.FitnessGoal)
	if macros != nil {
		u.DailyProteinGoal = &macros.Protein
		u.DailyCarbsGoal = &macros.Carbs
		u.DailyFatGoal = &macros.Fat
	}
}
