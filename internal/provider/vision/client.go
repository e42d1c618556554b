// Package vision calls the Google Cloud Vision images:annotate endpoint to
// pull raw text off a nutrition-label photo. When no API key is configured
// the scan flow falls back to the canned demo labels below instead of
// failing.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://vision.googleapis.com"

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// DetectText runs TEXT_DETECTION on a base64-encoded image and returns the
// full detected text block.
func (c *Client) DetectText(ctx context.Context, base64Image string) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("missing vision API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	reqBody := annotateRequest{
		Requests: []annotateItem{
			{
				Image:    annotateImage{Content: base64Image},
				Features: []annotateFeature{{Type: "TEXT_DETECTION", MaxResults: 1}},
			},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal vision payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1/images:annotate?key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute vision request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read vision response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("vision request failed with status %d", resp.StatusCode)
	}

	var parsed annotateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}
	if len(parsed.Responses) == 0 || len(parsed.Responses[0].TextAnnotations) == 0 {
		return "", fmt.Errorf("no text detected in image")
	}
	return parsed.Responses[0].TextAnnotations[0].Description, nil
}

type annotateRequest struct {
	Requests []annotateItem `json:"requests"`
}

type annotateItem struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
	} `json:"responses"`
}

// MockLabelTexts are real-looking label transcriptions used in demo mode.
var MockLabelTexts = []string{
	`Nutrition Facts
Serving Size 1 cup (240ml)
Servings Per Container 2

Amount Per Serving
Calories 150
Total Fat 8g 12%
Saturated Fat 5g 25%
Trans Fat 0g
Cholesterol 30mg 10%
Sodium 200mg 8%
Total Carbohydrate 12g 4%
Dietary Fiber 0g 0%
Sugars 12g
Protein 8g

Vitamin A 10% - Vitamin C 4%
Calcium 30% - Iron 0%`,

	`Nutrition Information
Per 100g
Energy: 450kJ / 107kcal
Fat: 3.2g
of which saturates: 1.8g
Carbohydrate: 18.5g
of which sugars: 4.2g
Protein: 3.1g
Salt: 0.6g`,

	`Nutrition Facts
Serving Size: 1 piece (85g)
Calories: 220
Total Fat: 12g
Saturated Fat: 2g
Cholesterol: 0mg
Sodium: 150mg
Total Carbohydrate: 25g
Dietary Fiber: 3g
Sugars: 8g
Protein: 6g`,

	`Nutritional Information
Per serving (50g)
Energy: 890kJ / 213kcal
Protein: 4.5g
Carbohydrates: 45g
of which sugars: 12g
Fat: 2.1g
of which saturates: 0.8g
Fibre: 2.5g
Sodium: 0.3g`,
}

// MockLabelText picks one of the canned labels.
func MockLabelText() string {
	return MockLabelTexts[rand.Intn(len(MockLabelTexts))]
}
