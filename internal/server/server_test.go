package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/catalog"
	"github.com/ayanchyaziz123/career-AI/internal/matcher"
	"github.com/ayanchyaziz123/career-AI/internal/scoring"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	srv := New(0, matcher.New(cat), zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestAnalyzeEndpoint(t *testing.T) {
	ts := testServer(t)

	body := `{"skills": ["Python", "SQL"], "experience": "5-10", "education": "masters"}`
	resp, err := http.Post(ts.URL+AnalyzePath, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Careers []*scoring.ScoredCareer `json:"careers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(payload.Careers) != 5 {
		t.Fatalf("expected 5 careers, got %d", len(payload.Careers))
	}
	for i, c := range payload.Careers {
		if c.ID == "" {
			t.Fatalf("career %d missing id", i)
		}
		if c.MatchScore < 40 || c.MatchScore > 95 {
			t.Fatalf("career %s score %d out of range", c.ID, c.MatchScore)
		}
		if i > 0 && payload.Careers[i-1].MatchScore < c.MatchScore {
			t.Fatalf("careers not sorted by score descending")
		}
	}
}

func TestAnalyzeEndpointAppliesDefaults(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+AnalyzePath, "application/json", strings.NewReader(`{"skills": []}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with empty profile fields, got %d", resp.StatusCode)
	}
}

func TestAnalyzeEndpointRejectsInvalidJSON(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+AnalyzePath, "application/json", strings.NewReader("{nope"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != "invalid JSON" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestStatusEndpoint(t *testing.T) {
	ts := testServer(t)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, ts.URL+AnalyzePath, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode status body: %v", err)
	}
	if body["status"] == "" {
		t.Fatalf("expected a status message, got %v", body)
	}
}
