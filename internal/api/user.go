package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/diettrack/backend/internal/middleware"
	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/types"
)

// UserHandler serves the profile, recommendations and the admin listing.
type UserHandler struct {
	users     *service.UserService
	validator middleware.TokenValidator
}

func NewUserHandler(users *service.UserService, validator middleware.TokenValidator) *UserHandler {
	return &UserHandler{users: users, validator: validator}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.validator))
	{
		users.GET("/me", h.GetProfile)
		users.PUT("/me", h.UpdateProfile)
		users.GET("/health-conditions", h.HealthConditions)
		users.GET("/recommendations", h.Recommendations)
		users.POST("/send-diet-plan", h.SendDietPlan)
		users.GET("", middleware.AdminMiddleware(), h.ListUsers)
	}
}

func profileResponse(user *models.User, metrics *service.ProfileMetrics) gin.H {
	return gin.H{
		"user":           user,
		"weight":         user.Weight(),
		"height":         user.Height(),
		"location":       user.Location(),
		"bmi":            metrics.BMI,
		"bmi_category":   metrics.BMICategory,
		"daily_calories": metrics.DailyCalories,
		"macros":         metrics.Macros,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, metrics, err := h.users.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user, metrics))
}

// allowedProfileUpdates is the closed set of fields the profile PUT accepts.
var allowedProfileUpdates = map[string]bool{
	"name":              true,
	"age":               true,
	"weight":            true,
	"height":            true,
	"gender":            true,
	"activity_level":    true,
	"fitness_goal":      true,
	"health_conditions": true,
	"location":          true,
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// Reject payloads containing fields outside the allowed set
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	for field := range raw {
		if !allowedProfileUpdates[field] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid updates"})
			return
		}
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, metrics, err := h.users.UpdateProfile(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user, metrics))
}

func (h *UserHandler) HealthConditions(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.HealthConditionOptions())
}

func (h *UserHandler) Recommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recs, err := h.users.Recommendations(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recs)
}

func (h *UserHandler) SendDietPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	email, err := h.users.SendDietPlan(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Diet plan sent successfully to your email!",
		"email":   email,
	})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := h.users.ListUsers(types.UserListFilter{
		Search: c.Query("search"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
