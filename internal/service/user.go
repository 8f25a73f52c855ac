package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/nutrition"
	"github.com/diettrack/backend/internal/types"
)

// UserService manages profiles, derived metrics and recommendations.
type UserService struct {
	db    *gorm.DB
	email *EmailService
}

func NewUserService(db *gorm.DB, email *EmailService) *UserService {
	return &UserService{db: db, email: email}
}

// ProfileMetrics are the values derived from the body profile on every read.
type ProfileMetrics struct {
	BMI           *float64              `json:"bmi"`
	BMICategory   *string               `json:"bmi_category"`
	DailyCalories *int                  `json:"daily_calories"`
	Macros        *nutrition.MacroSplit `json:"macros"`
}

func computeMetrics(user *models.User) ProfileMetrics {
	bmi := nutrition.BMI(user.Weight(), user.Height())
	calories := nutrition.DailyCalories(user.CalorieInputs())
	return ProfileMetrics{
		BMI:           bmi,
		BMICategory:   nutrition.BMICategory(bmi),
		DailyCalories: calories,
		Macros:        nutrition.MacroGoals(calories, user.Weight(), user.FitnessGoal),
	}
}

// GetProfile loads a user together with their derived metrics.
func (s *UserService) GetProfile(userID uuid.UUID) (*models.User, *ProfileMetrics, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	metrics := computeMetrics(&user)
	return &user, &metrics, nil
}

// UpdateProfile applies the non-nil fields of the request and refreshes the
// derived daily goals when a goal input changed.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, *ProfileMetrics, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	goalsDirty := false

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		user.Age = req.Age
		goalsDirty = true
	}
	if req.Weight != nil {
		value := req.Weight.Value
		user.WeightValue = &value
		user.WeightUnit = req.Weight.Unit
		goalsDirty = true
	}
	if req.Height != nil {
		value := req.Height.Value
		user.HeightValue = &value
		user.HeightUnit = req.Height.Unit
		goalsDirty = true
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
		goalsDirty = true
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = *req.ActivityLevel
		goalsDirty = true
	}
	if req.FitnessGoal != nil {
		user.FitnessGoal = *req.FitnessGoal
		goalsDirty = true
	}
	if req.HealthConditions != nil {
		if err := validateHealthConditions(*req.HealthConditions); err != nil {
			return nil, nil, err
		}
		user.HealthConditions = models.JSONBStringArray(*req.HealthConditions)
	}
	if req.Location != nil {
		user.LocationArea = req.Location.Area
		user.LocationLandmark = req.Location.Landmark
		user.LocationState = req.Location.State
		user.LocationDistrict = req.Location.District
	}

	if goalsDirty {
		user.RecomputeGoals()
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, nil, err
	}

	metrics := computeMetrics(&user)
	return &user, &metrics, nil
}

func validateHealthConditions(conditions []string) error {
	for _, c := range conditions {
		known := false
		for _, opt := range healthConditionOptions {
			if opt.Value == c {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: unknown health condition %q", ErrValidation, c)
		}
	}
	return nil
}

var healthConditionOptions = []types.HealthConditionOption{
	{Value: "diabetes", Label: "Diabetes"},
	{Value: "high_blood_pressure", Label: "High Blood Pressure"},
	{Value: "high_cholesterol", Label: "High Cholesterol"},
	{Value: "obesity", Label: "Obesity"},
	{Value: "pcos_pcod", Label: "PCOS/PCOD"},
	{Value: "thyroid_disorders", Label: "Thyroid Disorders"},
	{Value: "heart_disease", Label: "Heart Disease"},
	{Value: "kidney_issues", Label: "Kidney Issues"},
	{Value: "pregnancy_nursing", Label: "Pregnancy/Nursing"},
	{Value: "celiac_gluten_free", Label: "Celiac/Gluten-Free"},
	{Value: "lactose_intolerance", Label: "Lactose Intolerance"},
	{Value: "vegetarian", Label: "Vegetarian"},
	{Value: "vegan", Label: "Vegan"},
}

// HealthConditionOptions lists the selectable health conditions.
func (s *UserService) HealthConditionOptions() []types.HealthConditionOption {
	return healthConditionOptions
}

// Recommendations builds rule-based advice from the user's BMI category,
// fitness goal and health conditions.
func (s *UserService) Recommendations(userID uuid.UUID) (*nutrition.Recommendations, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bmi := nutrition.BMI(user.Weight(), user.Height())
	category := nutrition.BMICategory(bmi)
	recs := nutrition.Recommend(category, user.FitnessGoal, user.HealthConditions)
	return &recs, nil
}

// SendDietPlan emails the user their goals and recommendations.
func (s *UserService) SendDietPlan(userID uuid.UUID) (string, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	bmi := nutrition.BMI(user.Weight(), user.Height())
	category := nutrition.BMICategory(bmi)
	recs := nutrition.Recommend(category, user.FitnessGoal, user.HealthConditions)

	if err := s.email.SendDietPlanEmail(&user, &recs); err != nil {
		return "", err
	}
	return user.Email, nil
}

// UserListPage is one page of the admin user listing.
type UserListPage struct {
	Users []UserWithMetrics `json:"users"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
}

// UserWithMetrics is a user enriched with derived values for admin views.
type UserWithMetrics struct {
	models.User
	ProfileMetrics
}

// ListUsers returns users who have logged in at least once, most recent
// login first. Search matches name or email, case-insensitively.
func (s *UserService) ListUsers(filter types.UserListFilter) (*UserListPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Model(&models.User{}).Where("last_login IS NOT NULL")
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := query.
		Order("last_login DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	enriched := make([]UserWithMetrics, 0, len(users))
	for i := range users {
		enriched = append(enriched, UserWithMetrics{
			User:           users[i],
			ProfileMetrics: computeMetrics(&users[i]),
		})
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}

	return &UserListPage{
		Users: enriched,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}
