package generator

import (
	"context"
	"fmt"
	"strings"

	offersRepo "tripdesk/database/repository/offers"
	"tripdesk/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGenerator implements OfferGenerator on top of the Gemini text model.
// A template record from the offer store is embedded in the prompt as a
// structural example when one is available.
type GeminiGenerator struct {
	model  *genai.GenerativeModel
	repo   offersRepo.OfferRepository
	logger *zap.Logger
}

func NewGeminiGenerator(apiKey string, repo offersRepo.OfferRepository, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{
		model:  client.GenerativeModel("models/gemini-1.5-pro"),
		repo:   repo,
		logger: logger,
	}, nil
}

func (g *GeminiGenerator) GenerateFlights(ctx context.Context, origin, destination, date, cabin string, duration, count int) ([]models.FlightOffer, error) {
	template := ""
	if tmpl, err := g.repo.FlightTemplate(ctx, origin, destination); err == nil {
		template = marshalTemplate(tmpl)
	}

	prompt := buildFlightPrompt(origin, destination, date, cabin, duration, count, template)
	raw, err := g.complete(ctx, prompt)
	if err != nil {
		return nil, newGenerationError("flight completion", err)
	}

	offers, err := parseFlightOffers(raw)
	if err != nil {
		g.logger.Warn("generator returned unparseable flight payload", zap.Error(err))
		return nil, newGenerationError("flight parse", err)
	}
	return offers, nil
}

func (g *GeminiGenerator) GenerateHotels(ctx context.Context, cityCode, checkIn, checkOut string, count int) ([]models.HotelOffer, error) {
	template := ""
	if tmpl, err := g.repo.HotelTemplate(ctx, cityCode); err == nil {
		template = marshalTemplate(tmpl)
	}

	prompt := buildHotelPrompt(cityCode, checkIn, checkOut, count, template)
	raw, err := g.complete(ctx, prompt)
	if err != nil {
		return nil, newGenerationError("hotel completion", err)
	}

	offers, err := parseHotelOffers(raw)
	if err != nil {
		g.logger.Warn("generator returned unparseable hotel payload", zap.Error(err))
		return nil, newGenerationError("hotel parse", err)
	}
	return offers, nil
}

func (g *GeminiGenerator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
