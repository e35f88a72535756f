package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"valuationbackend/types"
)

var once sync.Once

var GEMINI_API_URL = ""
var GEMINI_API_KEY = ""

func init() {
	once.Do(func() {
		godotenv.Load()
		GEMINI_API_URL = os.Getenv("GEMINI_API_URL")
		GEMINI_API_KEY = os.Getenv("GEMINI_API_KEY")
	})
}

// InsightProvider is the injected AI capability used by the SWOT
// engine and the data validator. Implementations may fail freely; the
// callers absorb every error and fall back to deterministic output.
type InsightProvider interface {
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}

// geminiProvider calls the Gemini generateContent REST API.
type geminiProvider struct{}

var GeminiProvider InsightProvider = &geminiProvider{}

func (g *geminiProvider) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if GEMINI_API_URL == "" || GEMINI_API_KEY == "" {
		return "", fmt.Errorf("gemini API not configured")
	}

	requestData := types.GeminiRequest{
		Contents: []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		}{
			{
				Parts: []struct {
					Text string `json:"text"`
				}{
					{
						Text: prompt,
					},
				},
			},
		},
		GenerationConfig: map[string]interface{}{
			"maxOutputTokens": 200000,
		},
	}
	requestBody, err := json.Marshal(requestData)
	if err != nil {
		return "", err
	}

	apiEndpoint := GEMINI_API_URL + "?key=" + GEMINI_API_KEY
	req, err := http.NewRequestWithContext(ctx, "POST", apiEndpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var rawResponse types.APIResponse
	err = json.NewDecoder(resp.Body).Decode(&rawResponse)
	if err != nil {
		return "", err
	}

	if len(rawResponse.Candidates) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}

	content := rawResponse.Candidates[0].Content
	if len(content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no content parts")
	}

	generatedText := content.Parts[0].Text
	cleanedText := strings.TrimPrefix(generatedText, "```json")
	cleanedText = strings.TrimSuffix(cleanedText, "```")
	cleanedText = strings.TrimSpace(cleanedText)
	return cleanedText, nil
}
