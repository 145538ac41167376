package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrAssistantUnavailable signals that the generation service could not
// produce recommendations. Handlers map it to a generic user-facing message.
var ErrAssistantUnavailable = errors.New("recommendation service unavailable")

// RecommendationService calls the external design-recommendation generation
// service. The service is a black box: free-text style description and a
// requested count in, a list of textual recommendations out.
type RecommendationService struct {
	baseURL    string
	httpClient *http.Client
}

// NewRecommendationService creates a client for the generation service at
// baseURL. An empty baseURL disables the feature.
func NewRecommendationService(baseURL string) *RecommendationService {
	return &RecommendationService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether a generation service is configured.
func (s *RecommendationService) Enabled() bool {
	return s.baseURL != ""
}

type recommendationRequest struct {
	ProjectStyleDescription string `json:"projectStyleDescription"`
	DesiredRecommendations  int    `json:"desiredNumberOfRecommendations"`
}

type recommendationResponse struct {
	Recommendations []string `json:"recommendations"`
}

// Generate requests count recommendations for the given style description.
func (s *RecommendationService) Generate(ctx context.Context, styleDescription string, count int) ([]string, error) {
	if !s.Enabled() {
		return nil, ErrAssistantUnavailable
	}

	body, err := json.Marshal(recommendationRequest{
		ProjectStyleDescription: styleDescription,
		DesiredRecommendations:  count,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAssistantUnavailable, resp.StatusCode)
	}

	var parsed recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: bad response body", ErrAssistantUnavailable)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, ErrAssistantUnavailable
	}
	return parsed.Recommendations, nil
}
