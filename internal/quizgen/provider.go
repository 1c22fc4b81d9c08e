package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studyloop/studyloop-api/internal/config"
	"google.golang.org/genai"
)

const (
	geminiModel     = "gemini-2.0-flash"
	maxOutputTokens = 2048
	// Low enough for schema adherence, high enough for question variety.
	samplingTemperature = 0.4
)

// Provider is the AI completion gateway. The returned batch is untrusted and
// must be validated before persistence.
type Provider interface {
	GenerateQuestions(ctx context.Context, system, user string) ([]GeneratedQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) GenerateQuestions(ctx context.Context, system, user string) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](samplingTemperature),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini call failed")
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrContractViolation)
	}

	// Models occasionally wrap the payload in markdown fences despite the
	// instructions; strip them before parsing.
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		log.WithError(err).Errorf("Failed to decode question JSON. Cleaned content:\n%s", clean)
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrContractViolation, err)
	}

	log.Infof("Gateway returned %d candidate questions", len(questions))
	return questions, nil
}
