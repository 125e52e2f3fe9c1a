package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"dealflow/internal/domain/entity"
	"dealflow/pkg/httpx"
	"dealflow/pkg/logx"
)

const (
	defaultModel = "gemini-2.5-flash"

	// MaxAdjustment — граница поправки в обе стороны.
	MaxAdjustment = 10

	descriptionLimit = 500
	logFieldMaxLen   = 4096
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`) //nolint:gochecknoglobals

// ContentGenerator — часть genai.Models, которой пользуется советник.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey string
	Model  string
}

// Gemini оценивает сделку через LLM и возвращает поправку в [-10, 10].
type Gemini struct {
	models ContentGenerator
	model  string
}

func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return NewWithGenerator(client.Models, cfg.Model), nil
}

func NewWithGenerator(models ContentGenerator, model string) *Gemini {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Gemini{models: models, model: model}
}

func (g *Gemini) Model() string {
	return g.model
}

// Adjust реализует scoring.Advisor.
func (g *Gemini) Adjust(ctx context.Context, deal entity.Deal) (int, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(deal)), config)
	if err != nil {
		return 0, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return 0, errors.New("gemini api returned empty response")
	}

	return ParseAdjustment(text)
}

// Prompt строит запрос к модели по данным сделки.
func Prompt(deal entity.Deal) string {
	marketValue := "unknown"
	if deal.MarketValue != nil && !deal.MarketValue.IsZero() {
		marketValue = deal.MarketValue.String()
	}

	description := strings.TrimSpace(deal.Description)
	if description == "" {
		description = "N/A"
	}
	if runes := []rune(description); len(runes) > descriptionLimit {
		description = string(runes[:descriptionLimit])
	}

	var b strings.Builder
	b.WriteString("Analyze this deal and rate it from -10 to +10 based on investment potential:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", deal.Title)
	fmt.Fprintf(&b, "Price: $%s\n", deal.Price.String())
	fmt.Fprintf(&b, "Market Value: $%s\n", marketValue)
	fmt.Fprintf(&b, "Category: %s\n", deal.Category)
	fmt.Fprintf(&b, "Description: %s\n\n", description)
	b.WriteString("Return ONLY a number from -10 to +10. Positive for good deals, negative for bad/risky deals.")

	return b.String()
}

// ParseAdjustment читает целое число в начале ответа и ограничивает его MaxAdjustment.
func ParseAdjustment(text string) (int, error) {
	match := leadingInt.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, fmt.Errorf("unexpected advisor response %q", text)
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi: %w", err)
	}

	return lo.Clamp(n, -MaxAdjustment, MaxAdjustment), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var parts []string
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, "\n")
}
