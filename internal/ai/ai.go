package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// ErrDisabled reports that no API key was configured. Callers relay the
// failure as message text instead of treating it as fatal.
var ErrDisabled = errors.New("GEMINI_API_KEY not set, AI suggestions are disabled")

// Service wraps the Gemini client behind the narrow generate interface
// the notification channels consume.
type Service struct {
	client *genai.Client
	model  string
}

// NewService initializes the Gemini client. An empty API key yields a
// disabled service rather than an error; the process must come up even
// without AI credentials.
func NewService(ctx context.Context, apiKey string) (*Service, error) {
	if apiKey == "" {
		return &Service{model: defaultModel}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return &Service{model: defaultModel}, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Service{client: client, model: defaultModel}, nil
}

// Enabled reports whether the service has a usable client.
func (s *Service) Enabled() bool { return s.client != nil }

// Generate asks the model for a conversational response to the prompt.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrDisabled
	}
	model := s.client.GenerativeModel(s.model)
	res, err := model.GenerateContent(ctx,
		genai.Text("You are an inventory management assistant. Respond conversationally to: "+prompt))
	if err != nil {
		return "", fmt.Errorf("error sending message: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "No response.", nil
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "No response.", nil
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (s *Service) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
