package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/clock"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/metrics"
	"tripboard-service/pkg/utils"
	"tripboard-service/templates"
)

// DefaultTextModel is the model used for itinerary generation
const DefaultTextModel = "gemini-2.0-flash"

// MissingParametersMessage is reported when a trip request lacks a required field
const MissingParametersMessage = "Missing required parameters: country, numberOfDays, and userId are required"

// TripGenerator turns a trip request into a stored, AI-generated itinerary
type TripGenerator struct {
	tripRepo repository.TripRepository
	textGen  repository.TextGenerationRepository
	images   repository.ImageRepository
	model    string
	retry    RetryPolicy
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// TripGeneratorOption customizes a TripGenerator
type TripGeneratorOption func(*TripGenerator)

// WithModel overrides the text model name
func WithModel(model string) TripGeneratorOption {
	return func(g *TripGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithRetryPolicy sets the retry policy for the text model and image calls
func WithRetryPolicy(policy RetryPolicy) TripGeneratorOption {
	return func(g *TripGenerator) { g.retry = policy }
}

// WithGeneratorClock sets the clock used for creation timestamps
func WithGeneratorClock(c clock.Clock) TripGeneratorOption {
	return func(g *TripGenerator) { g.clock = c }
}

// NewTripGenerator creates a new trip generator. textGen is nil when no model
// credential is configured; images may be nil to skip enrichment.
func NewTripGenerator(
	tripRepo repository.TripRepository,
	textGen repository.TextGenerationRepository,
	images repository.ImageRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
	opts ...TripGeneratorOption,
) *TripGenerator {
	g := &TripGenerator{
		tripRepo: tripRepo,
		textGen:  textGen,
		images:   images,
		model:    DefaultTextModel,
		clock:    clock.System{},
		metrics:  metrics,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ValidateTripRequest checks the fields a trip cannot be generated without
func ValidateTripRequest(req *entity.TripRequest) error {
	if req == nil || strings.TrimSpace(req.Country) == "" || req.NumberOfDays == 0 || strings.TrimSpace(req.UserID) == "" {
		return validationError(MissingParametersMessage)
	}
	if req.NumberOfDays < entity.MinTripDays || req.NumberOfDays > entity.MaxTripDays {
		return validationError(fmt.Sprintf("numberOfDays must be between %d and %d", entity.MinTripDays, entity.MaxTripDays))
	}
	return nil
}

// GenerateTrip generates, enriches and stores a trip, returning its id.
// Nothing is written unless every step before persistence succeeded.
func (g *TripGenerator) GenerateTrip(ctx context.Context, req *entity.TripRequest) (id string, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			g.metrics.ErrorsCount.WithLabelValues("generate_trip").Inc()
		}
	}()

	if err := ValidateTripRequest(req); err != nil {
		return "", err
	}
	if g.textGen == nil {
		g.logger.Error("Text generation credential is not configured")
		return "", configurationError("AI service not configured")
	}

	prompt, err := templates.TripPrompt(req)
	if err != nil {
		return "", err
	}

	var text string
	err = g.retry.do(ctx, func(ctx context.Context) error {
		out, err := g.textGen.GenerateContent(ctx, g.model, prompt)
		if err != nil {
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		return "", generationError(CodeRequestFailed, "Failed to generate travel itinerary from AI", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", generationError(CodeEmptyResponse, "Failed to generate travel itinerary from AI", nil)
	}

	detail, ok := utils.ExtractFencedJSON(text)
	if !ok {
		g.logger.Warn("Model response has no parseable JSON block", "responseLength", len(text))
		return "", generationError(CodeUnparseableResponse, "Failed to parse AI response into valid JSON", nil)
	}

	record := &entity.TripRecord{
		TripDetail: string(detail),
		CreatedAt:  g.clock.Now().UTC(),
		ImageURLs:  g.fetchImages(ctx, req),
		UserID:     req.UserID,
	}
	if err := g.tripRepo.Create(ctx, record); err != nil {
		return "", persistenceError("store trip", err)
	}

	g.metrics.TripsGenerated.Inc()
	g.metrics.GenerationTime.Observe(time.Since(start).Seconds())
	g.logger.Info("Trip created successfully",
		"tripId", record.ID,
		"userId", record.UserID,
		"country", req.Country,
		"images", len(record.ImageURLs))

	return record.ID, nil
}

// fetchImages never fails: lookup errors yield an empty list
func (g *TripGenerator) fetchImages(ctx context.Context, req *entity.TripRequest) []string {
	urls := []string{}
	if g.images == nil {
		return urls
	}

	query := strings.Join([]string{req.Country, req.Interest, req.TravelStyle}, " ")
	var results []string
	err := g.retry.do(ctx, func(ctx context.Context) error {
		out, err := g.images.SearchPhotos(ctx, query)
		if err != nil {
			return err
		}
		results = out
		return nil
	})
	if err != nil {
		g.metrics.EnrichmentFailures.Inc()
		g.logger.Warn("Failed to fetch trip images", "query", query, "error", err)
		return urls
	}

	if len(results) > entity.MaxTripImages {
		results = results[:entity.MaxTripImages]
	}
	for _, u := range results {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
