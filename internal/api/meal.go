package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diettrack/backend/internal/middleware"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/types"
)

const maxMealPhotoSize = 5 << 20 // 5 MiB

// MealHandler serves meal logging and the nutrition summaries.
type MealHandler struct {
	meals     *service.MealService
	uploads   *service.UploadService
	validator middleware.TokenValidator
}

func NewMealHandler(meals *service.MealService, uploads *service.UploadService, validator middleware.TokenValidator) *MealHandler {
	return &MealHandler{meals: meals, uploads: uploads, validator: validator}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	meals.Use(middleware.AuthMiddleware(h.validator))
	{
		meals.POST("", h.Create)
		meals.GET("", h.List)
		meals.GET("/summary/daily", h.DailySummary)
		meals.GET("/summary/meal-types", h.MealTypeBreakdown)
		meals.GET("/summary/micronutrients", h.MicronutrientSummary)
		meals.GET("/:id", h.GetByID)
		meals.PUT("/:id", h.Update)
		meals.DELETE("/:id", h.Delete)
		meals.POST("/:id/photo", h.UploadPhoto)
	}
}

func (h *MealHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.Create(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate, startOK := parseDateParam(c.Query("start_date"))
	endDate, endOK := parseDateParam(c.Query("end_date"))
	if !startOK || !endOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	filter := types.MealListFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		MealType:   c.Query("meal_type"),
		IsTemplate: parseBoolQuery(c, "is_template"),
		Page:       parseIntQuery(c, "page", 1),
		Limit:      parseIntQuery(c, "limit", 10),
	}

	page, err := h.meals.List(userID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *MealHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	meal, err := h.meals.GetByID(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req types.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.Update(userID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.meals.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal removed"})
}

func (h *MealHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxMealPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds the 5MB limit"})
		return
	}

	// Ownership check before touching storage
	if _, err := h.meals.GetByID(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	url, err := h.uploads.UploadMealPhoto(c.Request.Context(), id, fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	meal, err := h.meals.SetImageURL(userID, id, url)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) summaryRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	startDate, startOK := parseDateParam(c.Query("start_date"))
	endDate, endOK := parseDateParam(c.Query("end_date"))
	if !startOK || !endOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return nil, nil, false
	}
	return startDate, endDate, true
}

func (h *MealHandler) DailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	startDate, endDate, ok := h.summaryRange(c)
	if !ok {
		return
	}

	summary, err := h.meals.GetDailySummary(userID, startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *MealHandler) MealTypeBreakdown(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	startDate, endDate, ok := h.summaryRange(c)
	if !ok {
		return
	}

	breakdown, err := h.meals.GetMealTypeBreakdown(userID, startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (h *MealHandler) MicronutrientSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	startDate, endDate, ok := h.summaryRange(c)
	if !ok {
		return
	}

	report, err := h.meals.GetMicronutrientSummary(userID, startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
