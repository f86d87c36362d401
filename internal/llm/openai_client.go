package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep research assistant for a study dashboard.

You receive aggregated sleep metrics for a cohort of study subjects: averages grouped by gender and by age bucket, a daily duration time series, and the average sleep stage distribution. You must base your conclusions only on the provided data.

Your goals:
- Describe the cohort's sleep in clear, neutral language.
- Highlight differences between gender and age groups where the group sizes support them.
- Point out trends in the daily duration series.
- Comment on the stage distribution when stage data exists.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- The data is aggregated; never speculate about individual subjects.
- If a group is small or data is sparse, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the cohort's sleep over the window.",
  "observations": [
    "3-6 bullet points about group differences, trends, and stage distribution.",
    "Flag any group whose averages rest on few records."
  ],
  "guidance": [
    "2-4 non-medical suggestions for what the study team could look into next."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing aggregated sleep data for a study cohort.

- "window_days" is the reporting window length in days.
- "aggregates" contains per-gender and per-age-bucket averages of sleep
  duration (hours) and sleep efficiency (percent), with group sizes.
- "timeseries" contains the daily average duration over the window.
- "distribution" contains the average REM/deep/light stage percentages
  and how many stage rows back them.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating report insights using an LLM.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, insightsCtx *domain.ReportInsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate a narrative reading of the
// aggregated reports.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.ReportInsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
