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

// FoodService manages the curated nutrition catalog.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func toSuitabilityList(tags []types.SuitabilityTagRequest) models.SuitabilityList {
	list := make(models.SuitabilityList, 0, len(tags))
	for _, tag := range tags {
		list = append(list, models.SuitabilityTag{
			Condition: tag.Condition,
			Notes:     tag.Notes,
			Reason:    tag.Reason,
		})
	}
	return list
}

// Create adds a food to the catalog. Names are unique case-insensitively.
func (s *FoodService) Create(userID uuid.UUID, req *types.CreateFoodRequest) (*models.FoodItem, error) {
	name := strings.TrimSpace(req.Name)

	if err := req.Nutrition.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.FoodItem
	if err := s.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
		return nil, ErrDuplicateFood
	}

	food := models.FoodItem{
		Name:               name,
		Description:        req.Description,
		Category:           req.Category,
		ServingAmount:      req.ServingAmount,
		ServingUnit:        req.ServingUnit,
		ServingDescription: req.ServingDescription,
		Nutrition:          req.Nutrition,
		SuitableFor:        toSuitabilityList(req.SuitableFor),
		NotSuitableFor:     toSuitabilityList(req.NotSuitableFor),
		IsCommon:           req.IsCommon,
		IsVerified:         req.IsVerified,
		AddedBy:            &userID,
		LastUpdatedBy:      &userID,
	}

	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// GetByID loads one food item.
func (s *FoodService) GetByID(id uuid.UUID) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Update applies the non-nil fields of the request.
func (s *FoodService) Update(userID, id uuid.UUID, req *types.UpdateFoodRequest) (*models.FoodItem, error) {
	food, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var existing models.FoodItem
		err := s.db.Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), id).First(&existing).Error
		if err == nil {
			return nil, ErrDuplicateFood
		}
		food.Name = name
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Category != nil {
		food.Category = *req.Category
	}
	if req.ServingAmount != nil {
		food.ServingAmount = *req.ServingAmount
	}
	if req.ServingUnit != nil {
		food.ServingUnit = *req.ServingUnit
	}
	if req.ServingDescription != nil {
		food.ServingDescription = *req.ServingDescription
	}
	if req.Nutrition != nil {
		if err := req.Nutrition.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		food.Nutrition = *req.Nutrition
	}
	if req.SuitableFor != nil {
		food.SuitableFor = toSuitabilityList(*req.SuitableFor)
	}
	if req.NotSuitableFor != nil {
		food.NotSuitableFor = toSuitabilityList(*req.NotSuitableFor)
	}
	if req.IsCommon != nil {
		food.IsCommon = *req.IsCommon
	}
	if req.IsVerified != nil {
		food.IsVerified = *req.IsVerified
	}
	food.LastUpdatedBy = &userID

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a food from the catalog. Meal item snapshots keep their
// frozen nutrition, so logged history is unaffected.
func (s *FoodService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FoodListPage is one page of a catalog listing.
type FoodListPage struct {
	FoodItems []models.FoodItem `json:"food_items"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Pages     int               `json:"pages"`
}

// List returns catalog foods sorted by name. Suitability filters are
// applied in memory after the base query; the catalog is small and the
// tag shape does not index well across databases.
func (s *FoodService) List(filter types.FoodListFilter) (*FoodListPage, error) {
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

	query := s.db.Model(&models.FoodItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsCommon != nil {
		query = query.Where("is_common = ?", *filter.IsCommon)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	suitability := filter.SuitableFor != "" || filter.NotSuitableFor != ""
	if suitability {
		// Fetch the base result and filter tags in memory
		var foods []models.FoodItem
		if err := query.Order("name ASC").Find(&foods).Error; err != nil {
			return nil, err
		}

		filtered := foods[:0]
		for _, food := range foods {
			if filter.SuitableFor != "" && !food.SuitableFor.Contains(filter.SuitableFor) {
				continue
			}
			if filter.NotSuitableFor != "" && !food.NotSuitableFor.Contains(filter.NotSuitableFor) {
				continue
			}
			filtered = append(filtered, food)
		}

		total := int64(len(filtered))
		start := (page - 1) * limit
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}

		return &FoodListPage{
			FoodItems: filtered[start:end],
			Total:     total,
			Page:      page,
			Pages:     pageCount(total, limit),
		}, nil
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var foods []models.FoodItem
	if err := query.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return &FoodListPage{
		FoodItems: foods,
		Total:     total,
		Page:      page,
		Pages:     pageCount(total, limit),
	}, nil
}

func pageCount(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Categories lists the distinct categories present in the catalog.
func (s *FoodService) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.FoodItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ByCategory lists foods in one category sorted by name.
func (s *FoodService) ByCategory(category string, limit int) ([]models.FoodItem, error) {
	if limit < 1 {
		limit = 50
	}
	var foods []models.FoodItem
	err := s.db.Where("category = ?", category).
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// Search finds foods whose name contains the query, case-insensitively.
func (s *FoodService) Search(query string, limit int) ([]models.FoodItem, error) {
	if limit < 1 {
		limit = 10
	}
	var foods []models.FoodItem
	err := s.db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(query))+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// FoodNutritionInfo is the scaled nutrition for one requested serving.
type FoodNutritionInfo struct {
	FoodID    uuid.UUID         `json:"food_id"`
	Name      string            `json:"name"`
	Amount    float64           `json:"amount"`
	Unit      string            `json:"unit"`
	Nutrition nutrition.Profile `json:"nutrition"`
}

// NutritionBatch is the response of the batch nutrition computation.
type NutritionBatch struct {
	Items []FoodNutritionInfo `json:"items"`
	Total nutrition.Profile   `json:"total"`
}

// NutritionForFoods scales each requested serving and sums the results.
// An unknown food fails the whole batch.
func (s *FoodService) NutritionForFoods(req *types.NutritionBatchRequest) (*NutritionBatch, error) {
	items := make([]FoodNutritionInfo, 0, len(req.Foods))
	profiles := make([]nutrition.Profile, 0, len(req.Foods))

	for _, entry := range req.Foods {
		food, err := s.GetByID(entry.FoodID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: food item %s", ErrNotFound, entry.FoodID)
			}
			return nil, err
		}

		scaled, err := food.NutritionForServing(entry.Amount, entry.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		items = append(items, FoodNutritionInfo{
			FoodID:    food.ID,
			Name:      food.Name,
			Amount:    entry.Amount,
			Unit:      entry.Unit,
			Nutrition: scaled,
		})
		profiles = append(profiles, scaled)
	}

	return &NutritionBatch{
		Items: items,
		Total: nutrition.Sum(profiles),
	}, nil
}
