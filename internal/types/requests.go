package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/diettrack/backend/internal/nutrition"
)

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MeasurementRequest is a value with its unit, as submitted by clients.
type MeasurementRequest struct {
	Value float64 `json:"value" binding:"required,gt=0"`
	Unit  string  `json:"unit" binding:"required"`
}

// UpdateProfileRequest is the payload for editing the current user profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name             *string             `json:"name" binding:"omitempty,max=50"`
	Age              *int                `json:"age" binding:"omitempty,gte=13,lte=120"`
	Weight           *MeasurementRequest `json:"weight"`
	Height           *MeasurementRequest `json:"height"`
	Gender           *string             `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel    *string             `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	FitnessGoal      *string             `json:"fitness_goal" binding:"omitempty,oneof=weight_loss weight_gain muscle_building maintenance"`
	HealthConditions *[]string           `json:"health_conditions"`
	Location         *LocationRequest    `json:"location"`
}

// LocationRequest is the optional delivery-style location on a profile.
type LocationRequest struct {
	Area     string `json:"area" binding:"max=100"`
	Landmark string `json:"landmark" binding:"max=100"`
	State    string `json:"state" binding:"max=100"`
	District string `json:"district" binding:"max=100"`
}

// UserListFilter narrows the admin user listing.
type UserListFilter struct {
	Search string
	Page   int
	Limit  int
}

// HealthConditionOption is one selectable health condition.
type HealthConditionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MealItemRequest is one food reference inside a meal create or update.
type MealItemRequest struct {
	FoodID uuid.UUID `json:"food_id" binding:"required"`
	Amount float64   `json:"amount" binding:"required,gt=0"`
	Unit   string    `json:"unit" binding:"required"`
	Notes  string    `json:"notes" binding:"max=200"`
}

// CreateMealRequest is the payload for logging a meal.
type CreateMealRequest struct {
	Name       string            `json:"name" binding:"max=50"`
	MealType   string            `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack other"`
	Items      []MealItemRequest `json:"items" binding:"required,min=1,dive"`
	Date       *time.Time        `json:"date"`
	Notes      string            `json:"notes" binding:"max=500"`
	IsTemplate bool              `json:"is_template"`
}

// UpdateMealRequest is the payload for editing a meal. Nil fields are left
// unchanged; a non-nil Items replaces the whole item list and triggers a
// total recompute.
type UpdateMealRequest struct {
	Name       *string            `json:"name" binding:"omitempty,max=50"`
	MealType   *string            `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	Items      *[]MealItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Date       *time.Time         `json:"date"`
	Notes      *string            `json:"notes" binding:"omitempty,max=500"`
	IsFavorite *bool              `json:"is_favorite"`
	IsTemplate *bool              `json:"is_template"`
}

// MealListFilter narrows a meal listing.
type MealListFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	MealType   string
	IsTemplate *bool
	Page       int
	Limit      int
}

// FoodListFilter narrows a food catalog listing.
type FoodListFilter struct {
	Search         string
	Category       string
	SuitableFor    string
	NotSuitableFor string
	IsCommon       *bool
	IsVerified     *bool
	Page           int
	Limit          int
}

// SuitabilityTagRequest marks a food suitable or unsuitable for a health
// condition.
type SuitabilityTagRequest struct {
	Condition string `json:"condition" binding:"required"`
	Notes     string `json:"notes" binding:"max=200"`
	Reason    string `json:"reason" binding:"max=200"`
}

// CreateFoodRequest is the payload for adding a catalog food. Nutrition
// describes the reference serving given by ServingAmount and ServingUnit.
type CreateFoodRequest struct {
	Name               string                  `json:"name" binding:"required,max=255"`
	Description        string                  `json:"description" binding:"max=1000"`
	Category           string                  `json:"category" binding:"required,oneof=grains proteins vegetables fruits dairy fats sweets beverages other"`
	ServingAmount      float64                 `json:"serving_amount" binding:"required,gt=0"`
	ServingUnit        string                  `json:"serving_unit" binding:"required"`
	ServingDescription string                  `json:"serving_description" binding:"max=100"`
	Nutrition          nutrition.Profile       `json:"nutrition" binding:"required"`
	SuitableFor        []SuitabilityTagRequest `json:"suitable_for" binding:"dive"`
	NotSuitableFor     []SuitabilityTagRequest `json:"not_suitable_for" binding:"dive"`
	IsCommon           bool                    `json:"is_common"`
	IsVerified         bool                    `json:"is_verified"`
}

// UpdateFoodRequest is the payload for editing a catalog food. Nil fields
// are left unchanged.
type UpdateFoodRequest struct {
	Name               *string                  `json:"name" binding:"omitempty,max=255"`
	Description        *string                  `json:"description" binding:"omitempty,max=1000"`
	Category           *string                  `json:"category" binding:"omitempty,oneof=grains proteins vegetables fruits dairy fats sweets beverages other"`
	ServingAmount      *float64                 `json:"serving_amount" binding:"omitempty,gt=0"`
	ServingUnit        *string                  `json:"serving_unit"`
	ServingDescription *string                  `json:"serving_description" binding:"omitempty,max=100"`
	Nutrition          *nutrition.Profile       `json:"nutrition"`
	SuitableFor        *[]SuitabilityTagRequest `json:"suitable_for" binding:"omitempty,dive"`
	NotSuitableFor     *[]SuitabilityTagRequest `json:"not_suitable_for" binding:"omitempty,dive"`
	IsCommon           *bool                    `json:"is_common"`
	IsVerified         *bool                    `json:"is_verified"`
}

// FoodServingRequest identifies one food and serving for a batch nutrition
// computation.
type FoodServingRequest struct {
	FoodID uuid.UUID `json:"food_id" binding:"required"`
	Amount float64   `json:"amount" binding:"required,gt=0"`
	Unit   string    `json:"unit" binding:"required"`
}

// NutritionBatchRequest is the payload for the batch nutrition endpoint.
type NutritionBatchRequest struct {
	Foods []FoodServingRequest `json:"foods" binding:"required,min=1,dive"`
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the payload for the assistant proxy. Either Prompt or
// Messages must be present.
type ChatRequest struct {
	Prompt       string        `json:"prompt"`
	Messages     []ChatMessage `json:"messages"`
	SystemPrompt string        `json:"systemPrompt"`
}
