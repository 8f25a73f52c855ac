package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/diettrack/backend/config"
	"github.com/diettrack/backend/internal/types"
)

const (
	groqAPIURL         = "https://api.groq.com/openai/v1/chat/completions"
	huggingFaceAPIBase = "https://api-inference.huggingface.co/models/"
)

// AssistantError carries the HTTP status the handler should respond with.
type AssistantError struct {
	Status  int
	Message string
}

func (e *AssistantError) Error() string {
	return e.Message
}

// AssistantService proxies chat completions to Groq, or Hugging Face when
// no Groq key is configured.
type AssistantService struct {
	cfg    *config.Config
	client *http.Client
}

func NewAssistantService(cfg *config.Config) *AssistantService {
	return &AssistantService{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// buildPromptFromMessages flattens a conversation into a single prompt for
// providers without a chat-message API.
func buildPromptFromMessages(messages []types.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	for i, message := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		roleLabel := "User"
		if message.Role == "assistant" {
			roleLabel = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s", roleLabel, message.Content)
	}
	b.WriteString("\nAssistant:")
	return b.String()
}

// CreateChatCompletion forwards the request to the configured provider and
// returns the assistant's reply.
func (s *AssistantService) CreateChatCompletion(ctx context.Context, req *types.ChatRequest) (string, error) {
	effectivePrompt := req.Prompt
	if effectivePrompt == "" {
		effectivePrompt = buildPromptFromMessages(req.Messages)
	}
	if effectivePrompt == "" {
		return "", &AssistantError{Status: http.StatusBadRequest, Message: "Prompt cannot be empty."}
	}

	if s.cfg.GroqAPIKey != "" {
		return s.callGroq(ctx, effectivePrompt, req)
	}

	if s.cfg.HuggingFaceAPIKey == "" {
		return "", &AssistantError{Status: http.StatusServiceUnavailable, Message: "Chat assistant is currently unavailable."}
	}

	return s.callHuggingFace(ctx, effectivePrompt, req.SystemPrompt)
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *AssistantService) callGroq(ctx context.Context, prompt string, req *types.ChatRequest) (string, error) {
	messages := make([]groqMessage, 0, len(req.Messages)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, groqMessage{Role: "system", Content: req.SystemPrompt})
	}
	if len(req.Messages) > 0 {
		for _, message := range req.Messages {
			role := "user"
			if message.Role == "assistant" {
				role = "assistant"
			}
			messages = append(messages, groqMessage{Role: role, Content: message.Content})
		}
	} else {
		messages = append(messages, groqMessage{Role: "user", Content: prompt})
	}

	payload, err := json.Marshal(groqRequest{
		Model:       s.cfg.GroqModelID,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   512,
	})
	if err != nil {
		return "", err
	}

	status, body, err := s.post(ctx, groqAPIURL, s.cfg.GroqAPIKey, payload)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		friendly := "The assistant service returned an unexpected response."
		var parsed groqResponse
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			friendly = parsed.Error.Message
		} else if jsonErr != nil {
			log.Printf("Groq error (unparsed): %s", body)
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			friendly = "Assistant credentials were rejected. Update the Groq API key."
		}
		return "", &AssistantError{Status: status, Message: friendly}
	}

	var parsed groqResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("Unexpected Groq payload: %s", body)
		return "", &AssistantError{Status: http.StatusBadGateway, Message: "The assistant service returned malformed data."}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &AssistantError{Status: http.StatusBadGateway, Message: "No response generated."}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

type huggingFaceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens   int     `json:"max_new_tokens"`
		Temperature    float64 `json:"temperature"`
		ReturnFullText bool    `json:"return_full_text"`
	} `json:"parameters"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type huggingFaceResult struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error"`
}

func (s *AssistantService) callHuggingFace(ctx context.Context, prompt, systemPrompt string) (string, error) {
	combinedPrompt := prompt
	if systemPrompt != "" {
		combinedPrompt = strings.TrimSpace(systemPrompt) + "\n\n" + prompt
	}

	var hfReq huggingFaceRequest
	hfReq.Inputs = combinedPrompt
	hfReq.Parameters.MaxNewTokens = 250
	hfReq.Parameters.Temperature = 0.7
	hfReq.Parameters.ReturnFullText = false
	hfReq.Options.WaitForModel = true

	payload, err := json.Marshal(hfReq)
	if err != nil {
		return "", err
	}

	url := huggingFaceAPIBase + s.cfg.HuggingFaceModelID
	status, body, err := s.post(ctx, url, s.cfg.HuggingFaceAPIKey, payload)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		friendly := "The assistant service returned an unexpected response."
		var parsed huggingFaceResult
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil {
			if status == http.StatusUnauthorized {
				friendly = "Assistant credentials were rejected. Refresh the Hugging Face API key."
			} else if parsed.Error != "" {
				friendly = parsed.Error
			}
		} else {
			log.Printf("Hugging Face error (unparsed): %s", body)
		}
		return "", &AssistantError{Status: status, Message: friendly}
	}

	// The inference API returns either a single object or a one-element array
	var results []huggingFaceResult
	if err := json.Unmarshal(body, &results); err != nil {
		var single huggingFaceResult
		if err := json.Unmarshal(body, &single); err != nil {
			log.Printf("Unexpected Hugging Face payload: %s", body)
			return "", &AssistantError{Status: http.StatusBadGateway, Message: "The assistant service returned malformed data."}
		}
		results = []huggingFaceResult{single}
	}

	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", &AssistantError{Status: http.StatusBadGateway, Message: "No response generated."}
	}

	return strings.TrimSpace(results[0].GeneratedText), nil
}

func (s *AssistantService) post(ctx context.Context, url, apiKey string, payload []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
