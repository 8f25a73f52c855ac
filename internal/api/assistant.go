package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diettrack/backend/internal/middleware"
	"github.com/diettrack/backend/internal/service"
	"github.com/diettrack/backend/internal/types"
)

// AssistantHandler proxies chat completions. The rate limiter is optional;
// without Redis the endpoint runs unthrottled.
type AssistantHandler struct {
	assistant *service.AssistantService
	limiter   *middleware.RateLimiter
	validator middleware.TokenValidator
}

func NewAssistantHandler(assistant *service.AssistantService, limiter *middleware.RateLimiter, validator middleware.TokenValidator) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, limiter: limiter, validator: validator}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/assistant")
	assistant.Use(middleware.AuthMiddleware(h.validator))
	if h.limiter != nil {
		assistant.Use(h.limiter.RateLimitMiddleware())
	}
	{
		assistant.POST("", h.CreateChatCompletion)
	}
}

func (h *AssistantHandler) CreateChatCompletion(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Prompt == "" && len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either a prompt string or a messages array."})
		return
	}

	reply, err := h.assistant.CreateChatCompletion(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
