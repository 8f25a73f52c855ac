package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/nutrition"
	"github.com/diettrack/backend/internal/types"
)

// MealService manages logged meals and their summaries. Item nutrition is
// frozen at log time; summaries read the stored snapshots, not the catalog.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// resolveItems turns item requests into snapshot items. Every referenced
// food must exist.
func (s *MealService) resolveItems(items []types.MealItemRequest) ([]models.MealItem, error) {
	resolved := make([]models.MealItem, 0, len(items))
	for i, item := range items {
		var food models.FoodItem
		if err := s.db.First(&food, "id = ?", item.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: food item %s", ErrNotFound, item.FoodID)
			}
			return nil, err
		}

		snapshot, err := food.NutritionForServing(item.Amount, item.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		resolved = append(resolved, models.MealItem{
			FoodID:    food.ID,
			Name:      food.Name,
			Amount:    item.Amount,
			Unit:      item.Unit,
			Position:  i,
			Nutrition: snapshot,
			Notes:     item.Notes,
		})
	}
	return resolved, nil
}

// Create logs a meal, freezing each item's nutrition snapshot.
func (s *MealService) Create(userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error) {
	items, err := s.resolveItems(req.Items)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	meal := models.Meal{
		UserID:     userID,
		Name:       req.Name,
		MealType:   req.MealType,
		Date:       date,
		Items:      items,
		Notes:      req.Notes,
		IsTemplate: req.IsTemplate,
	}
	meal.RecomputeTotals()

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetByID loads a meal owned by the user.
func (s *MealService) GetByID(userID, id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&meal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// MealListPage is one page of the meal listing.
type MealListPage struct {
	Meals []models.Meal `json:"meals"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// List returns the user's meals, newest first.
func (s *MealService) List(userID uuid.UUID, filter types.MealListFilter) (*MealListPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Model(&models.Meal{}).Where("user_id = ?", userID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", endOfDay(*filter.EndDate))
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}
	if filter.IsTemplate != nil {
		query = query.Where("is_template = ?", *filter.IsTemplate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	return &MealListPage{
		Meals: meals,
		Total: total,
		Page:  page,
		Pages: pageCount(total, limit),
	}, nil
}

// Update applies the non-nil fields of the request. A new item list
// replaces the old one entirely and the totals are recomputed.
func (s *MealService) Update(userID, id uuid.UUID, req *types.UpdateMealRequest) (*models.Meal, error) {
	meal, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	var newItems []models.MealItem
	if req.Items != nil {
		newItems, err = s.resolveItems(*req.Items)
		if err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		meal.Name = *req.Name
	}
	if req.MealType != nil {
		meal.MealType = *req.MealType
	}
	if req.Date != nil {
		meal.Date = *req.Date
	}
	if req.Notes != nil {
		meal.Notes = *req.Notes
	}
	if req.IsFavorite != nil {
		meal.IsFavorite = *req.IsFavorite
	}
	if req.IsTemplate != nil {
		meal.IsTemplate = *req.IsTemplate
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Items != nil {
			if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
				return err
			}
			for i := range newItems {
				newItems[i].MealID = meal.ID
			}
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
			meal.Items = newItems
			meal.RecomputeTotals()
		}
		return tx.Omit("Items").Save(meal).Error
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes a meal owned by the user.
func (s *MealService) Delete(userID, id uuid.UUID) error {
	result := s.db.Delete(&models.Meal{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetImageURL records the uploaded photo location on a meal.
func (s *MealService) SetImageURL(userID, id uuid.UUID, url string) (*models.Meal, error) {
	meal, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	meal.ImageURL = url
	if err := s.db.Model(meal).Update("image_url", url).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// DailySummaryEntry is one calendar day's aggregated intake.
type DailySummaryEntry struct {
	Date          string        `json:"date"`
	TotalCalories float64       `json:"total_calories"`
	TotalProtein  float64       `json:"total_protein"`
	TotalCarbs    float64       `json:"total_carbs"`
	TotalFat      float64       `json:"total_fat"`
	Meals         []models.Meal `json:"meals"`
}

// DailySummary is the per-day intake over a date range.
type DailySummary struct {
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	Summary   []DailySummaryEntry `json:"summary"`
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *MealService) mealsInRange(userID uuid.UUID, start, end time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

// GetDailySummary groups stored meal totals by calendar day, newest day
// first. The range defaults to the last 7 days.
func (s *MealService) GetDailySummary(userID uuid.UUID, startDate, endDate *time.Time) (*DailySummary, error) {
	end := time.Now()
	if endDate != nil {
		end = *endDate
	}
	end = endOfDay(end)

	start := time.Now().AddDate(0, 0, -7)
	if startDate != nil {
		start = *startDate
	}

	meals, err := s.mealsInRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailySummaryEntry)
	for _, meal := range meals {
		key := meal.DateString()
		entry, ok := byDay[key]
		if !ok {
			entry = &DailySummaryEntry{Date: key, Meals: []models.Meal{}}
			byDay[key] = entry
		}
		entry.TotalCalories += meal.TotalNutrition.Calories
		entry.TotalProtein += meal.TotalNutrition.Protein
		entry.TotalCarbs += meal.TotalNutrition.Carbs.Total
		entry.TotalFat += meal.TotalNutrition.Fat.Total
		entry.Meals = append(entry.Meals, meal)
	}

	summary := make([]DailySummaryEntry, 0, len(byDay))
	for _, entry := range byDay {
		summary = append(summary, *entry)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Date > summary[j].Date })

	return &DailySummary{
		StartDate: start,
		EndDate:   end,
		Summary:   summary,
	}, nil
}

// MealTypeStat is the aggregated intake for one meal type.
type MealTypeStat struct {
	MealType      string  `json:"meal_type"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	MealCount     int     `json:"meal_count"`
}

// MealTypeBreakdown is the per-meal-type intake over a date range.
type MealTypeBreakdown struct {
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Breakdown []MealTypeStat `json:"breakdown"`
}

// GetMealTypeBreakdown aggregates stored meal totals by meal type. The
// range defaults to the last 30 days.
func (s *MealService) GetMealTypeBreakdown(userID uuid.UUID, startDate, endDate *time.Time) (*MealTypeBreakdown, error) {
	end := time.Now()
	if endDate != nil {
		end = *endDate
	}
	end = endOfDay(end)

	start := time.Now().AddDate(0, 0, -30)
	if startDate != nil {
		start = *startDate
	}

	meals, err := s.mealsInRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*MealTypeStat)
	for _, meal := range meals {
		stat, ok := byType[meal.MealType]
		if !ok {
			stat = &MealTypeStat{MealType: meal.MealType}
			byType[meal.MealType] = stat
		}
		stat.TotalCalories += meal.TotalNutrition.Calories
		stat.TotalProtein += meal.TotalNutrition.Protein
		stat.TotalCarbs += meal.TotalNutrition.Carbs.Total
		stat.TotalFat += meal.TotalNutrition.Fat.Total
		stat.MealCount++
	}

	// Canonical meal type order keeps the response stable
	breakdown := make([]MealTypeStat, 0, len(byType))
	for _, mealType := range models.MealTypes {
		if stat, ok := byType[mealType]; ok {
			breakdown = append(breakdown, *stat)
		}
	}

	return &MealTypeBreakdown{
		StartDate: start,
		EndDate:   end,
		Breakdown: breakdown,
	}, nil
}

// GetMicronutrientSummary analyzes vitamin, mineral, lipid and electrolyte
// intake over the range, defaulting to the last 30 calendar days.
func (s *MealService) GetMicronutrientSummary(userID uuid.UUID, startDate, endDate *time.Time) (*nutrition.Report, error) {
	end := time.Now()
	if endDate != nil {
		end = *endDate
	}
	end = endOfDay(end)

	var start time.Time
	if startDate != nil {
		start = startOfDay(*startDate)
	} else {
		start = startOfDay(end.AddDate(0, 0, -29))
	}

	meals, err := s.mealsInRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	analyzerMeals := make([]nutrition.AnalyzerMeal, 0, len(meals))
	for _, meal := range meals {
		items := make([]nutrition.AnalyzerItem, 0, len(meal.Items))
		for _, item := range meal.Items {
			snapshot := item.Nutrition
			items = append(items, nutrition.AnalyzerItem{
				FoodID:   item.FoodID,
				Amount:   item.Amount,
				Unit:     item.Unit,
				Snapshot: &snapshot,
			})
		}
		analyzerMeals = append(analyzerMeals, nutrition.AnalyzerMeal{
			Date:  meal.Date,
			Items: items,
		})
	}

	lookup := func(foodID uuid.UUID) (*nutrition.ServingProfile, error) {
		var food models.FoodItem
		if err := s.db.First(&food, "id = ?", foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return food.ServingSource(), nil
	}

	report, err := nutrition.Analyze(start, end, analyzerMeals, lookup)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
