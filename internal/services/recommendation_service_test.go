package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecommendationServiceGenerate(t *testing.T) {
	var gotBody recommendationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommendations" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"recommendations": []string{"Use a dark base palette", "Add neon accent colors"},
		})
	}))
	defer server.Close()

	svc := NewRecommendationService(server.URL)
	recommendations, err := svc.Generate(context.Background(), "Dark neon cyberpunk aesthetic with glass panels.", 2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(recommendations) != 2 {
		t.Errorf("Expected 2 recommendations, got %v", recommendations)
	}
	if gotBody.DesiredRecommendations != 2 {
		t.Errorf("Expected count 2 in request, got %d", gotBody.DesiredRecommendations)
	}
	if gotBody.ProjectStyleDescription == "" {
		t.Error("Expected style description in request body")
	}
}

func TestRecommendationServiceDisabled(t *testing.T) {
	svc := NewRecommendationService("")
	if svc.Enabled() {
		t.Error("Expected service with empty URL to be disabled")
	}
	if _, err := svc.Generate(context.Background(), "whatever", 1); !errors.Is(err, ErrAssistantUnavailable) {
		t.Errorf("Expected ErrAssistantUnavailable, got %v", err)
	}
}

func TestRecommendationServiceUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewRecommendationService(server.URL)
	if _, err := svc.Generate(context.Background(), "some style", 1); !errors.Is(err, ErrAssistantUnavailable) {
		t.Errorf("Expected ErrAssistantUnavailable, got %v", err)
	}
}

func TestRecommendationServiceEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"recommendations": []string{}})
	}))
	defer server.Close()

	svc := NewRecommendationService(server.URL)
	if _, err := svc.Generate(context.Background(), "some style", 1); !errors.Is(err, ErrAssistantUnavailable) {
		t.Errorf("Expected ErrAssistantUnavailable for empty result, got %v", err)
	}
}
