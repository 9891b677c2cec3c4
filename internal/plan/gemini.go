package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/util"
	"go.uber.org/zap"
)

// fallbackModel is used when no model is configured.
const fallbackModel = "gemini-1.5-pro"

// GeminiClient calls the generateContent endpoint of Google's generative
// language API over plain HTTP.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewGeminiClient(cfg config.GeminiConfig, logger *zap.SugaredLogger) *GeminiClient {
	// For unit test
	if logger == nil {
		logger = util.NewTestLogger()
	}

	model := cfg.MODEL
	if model == "" {
		model = fallbackModel
	}

	return &GeminiClient{
		apiKey:  cfg.API_KEY,
		model:   model,
		baseURL: strings.TrimRight(cfg.BASE_URL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func buildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("You are a renovation planning assistant. Create a structured renovation plan.\n\n")
	fmt.Fprintf(&sb, "Building type: %s\n", req.BuildingType)
	fmt.Fprintf(&sb, "Renovation type: %s\n", req.RenovationType)
	fmt.Fprintf(&sb, "Budget: %.2f EUR\n", req.Budget)
	if req.AdditionalDetails != "" {
		fmt.Fprintf(&sb, "Additional details: %s\n", req.AdditionalDetails)
	}
	sb.WriteString("\nProvide phases, rough cost allocation within the budget, and a realistic timeline.")

	return sb.String()
}

// GeneratePlan sends the prompt and validates the provider's response against
// the fixed schema. Whatever extra structure the provider returns is ignored;
// an empty or missing plan text is an error, never silently passed through.
func (c *GeminiClient) GeneratePlan(ctx context.Context, req Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(req)}}},
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("plan generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	c.logger.Debugf("Gemini generateContent took %s, status %d", time.Since(start), resp.StatusCode)

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("plan generation returned malformed JSON: %w", err)
	}

	if parsed.Error != nil {
		return nil, fmt.Errorf("plan generation provider error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plan generation returned status %d", resp.StatusCode)
	}

	planText := extractPlanText(parsed)
	if planText == "" {
		return nil, errors.New("plan generation returned no usable plan text")
	}

	return &Response{
		Plan:           planText,
		BuildingType:   req.BuildingType,
		Budget:         req.Budget,
		RenovationType: req.RenovationType,
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

func extractPlanText(parsed geminiResponse) string {
	var sb strings.Builder
	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			sb.WriteString(part.Text)
		}
		// Only the first candidate is used.
		break
	}

	return strings.TrimSpace(sb.String())
}
