package complexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiEstimator calls the Gemini generateContent API for a structured
// complexity guess. One attempt per solution, no retries.
type GeminiEstimator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGeminiEstimator creates a Gemini-backed estimator
func NewGeminiEstimator(apiKey, model string, timeout time.Duration, logger *zap.Logger) *GeminiEstimator {
	return &GeminiEstimator{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Estimate asks the model for time/space complexity of the given code.
// Returns (nil, nil) when the model response is unusable, and an error
// only when the HTTP call itself fails.
func (g *GeminiEstimator) Estimate(ctx context.Context, code, language string) (*Estimate, error) {
	prompt := fmt.Sprintf(
		"Analyze the time and space complexity of the following %s code.\nCode:\n%s\n\n"+
			"Return ONLY a JSON object with keys \"timeComplexity\" and \"spaceComplexity\". "+
			"Example: { \"timeComplexity\": \"O(n)\", \"spaceComplexity\": \"O(1)\" } "+
			"Do not include any markdown formatting or backticks.",
		language, code,
	)

	body, err := json.Marshal(geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("Complexity estimation request rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, nil
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	var estimate Estimate
	if err := json.Unmarshal([]byte(parsed.Candidates[0].Content.Parts[0].Text), &estimate); err != nil {
		g.logger.Warn("Complexity estimation returned unparseable text", zap.Error(err))
		return nil, nil
	}
	if estimate.TimeComplexity == "" && estimate.SpaceComplexity == "" {
		return nil, nil
	}
	return &estimate, nil
}
