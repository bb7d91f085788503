package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
	"github.com/clinicore/doctor-chatbot/pkg/config"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// Client calls a hosted zero-shot classification model and implements the
// IntentScorer port. Failures here are the caller's problem to absorb: the
// classifier maps any error to the fallback intent.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a new zero-shot scoring client
func NewClient(cfg *config.HuggingFaceConfig) (*Client, error) {
	if cfg == nil || cfg.Model == "" {
		return nil, errors.New("huggingface model is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "huggingface-zero-shot",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		breaker: breaker,
	}, nil
}

type scoreRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters scoreParameters `json:"parameters"`
}

type scoreParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type scoreResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Score sends text and the candidate label set to the model and returns
// labels ranked best first.
func (c *Client) Score(ctx context.Context, text string, candidateLabels []string) ([]providers.LabelScore, error) {
	if text == "" {
		return nil, errors.New("text is required")
	}
	if len(candidateLabels) == 0 {
		return nil, errors.New("candidate labels are required")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.score(ctx, text, candidateLabels)
	})
	if err != nil {
		return nil, err
	}

	return result.([]providers.LabelScore), nil
}

func (c *Client) score(ctx context.Context, text string, candidateLabels []string) ([]providers.LabelScore, error) {
	body, err := json.Marshal(scoreRequest{
		Inputs: text,
		Parameters: scoreParameters{
			CandidateLabels: candidateLabels,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("zero-shot request failed with status %d", resp.StatusCode)
	}

	var payload scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if len(payload.Labels) == 0 || len(payload.Labels) != len(payload.Scores) {
		return nil, errors.New("zero-shot response is malformed")
	}

	scores := make([]providers.LabelScore, len(payload.Labels))
	for i, label := range payload.Labels {
		scores[i] = providers.LabelScore{Label: label, Score: payload.Scores[i]}
	}

	return scores, nil
}
