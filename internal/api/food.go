package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diettrack/backend/internal/middleware"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/types"
)

// FoodHandler serves the nutrition catalog. Reads are open to any
// authenticated user; writes require admin.
type FoodHandler struct {
	foods     *service.FoodService
	validator middleware.TokenValidator
}

func NewFoodHandler(foods *service.FoodService, validator middleware.TokenValidator) *FoodHandler {
	return &FoodHandler{foods: foods, validator: validator}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	foods.Use(middleware.AuthMiddleware(h.validator))
	{
		foods.GET("", h.List)
		foods.GET("/categories", h.Categories)
		foods.GET("/category/:category", h.ByCategory)
		foods.GET("/search/:query", h.Search)
		foods.POST("/nutrition", h.NutritionForFoods)
		foods.GET("/:id", h.GetByID)

		admin := foods.Group("", middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *FoodHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.Create(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) List(c *gin.Context) {
	filter := types.FoodListFilter{
		Search:         c.Query("search"),
		Category:       c.Query("category"),
		SuitableFor:    c.Query("suitable_for"),
		NotSuitableFor: c.Query("not_suitable_for"),
		IsCommon:       parseBoolQuery(c, "is_common"),
		IsVerified:     parseBoolQuery(c, "is_verified"),
		Page:           parseIntQuery(c, "page", 1),
		Limit:          parseIntQuery(c, "limit", 20),
	}

	page, err := h.foods.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *FoodHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	food, err := h.foods.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req types.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.Update(userID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.foods.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food item removed"})
}

func (h *FoodHandler) Categories(c *gin.Context) {
	categories, err := h.foods.Categories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *FoodHandler) ByCategory(c *gin.Context) {
	foods, err := h.foods.ByCategory(c.Param("category"), parseIntQuery(c, "limit", 50))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) Search(c *gin.Context) {
	foods, err := h.foods.Search(c.Param("query"), parseIntQuery(c, "limit", 10))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) NutritionForFoods(c *gin.Context) {
	var req types.NutritionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := h.foods.NutritionForFoods(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}
