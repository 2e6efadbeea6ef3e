package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Upstream timeout so a hung model API cannot stall review writes.
const classifyTimeout = 20 * time.Second

const systemPrompt = "You are a strict sentiment classifier for movie reviews.\n" +
	"Read the review and return ONLY valid JSON, nothing else.\n" +
	"The JSON must be exactly of the form:\n" +
	`{"label": "positive|neutral|negative", "score": NUMBER}` + "\n" +
	"Where score is between -1.0 and 1.0 (negative = very negative, " +
	"positive = very positive, 0 = neutral)."

// OpenAIClassifier calls the chat-completions API and validates its JSON
// output. Any failure on that path is absorbed: the caller always gets a
// result, computed locally if the upstream misbehaves.
type OpenAIClassifier struct {
	client *resty.Client
	apiKey string
	model  string
	local  *LocalClassifier
	log    *zap.Logger
}

func NewOpenAIClassifier(config utils.SentimentConfig, log *zap.Logger) *OpenAIClassifier {
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(classifyTimeout)

	return &OpenAIClassifier{
		client: client,
		apiKey: config.APIKey,
		model:  config.Model,
		local:  NewLocalClassifier(),
		log:    log.With(zap.String("classifier", "openai")),
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) Result {
	if c.apiKey == "" {
		c.log.Debug("OpenAI API key not configured, using local heuristic")
		return c.local.Classify(ctx, text)
	}

	result, err := c.classifyRemote(ctx, text)
	if err != nil {
		c.log.Warn("OpenAI sentiment call failed, falling back to local heuristic",
			zap.Error(err))
		return c.local.Classify(ctx, text)
	}

	return result
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type classification struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}

func (c *OpenAIClassifier) classifyRemote(ctx context.Context, text string) (Result, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		// pushes the model towards strict JSON output
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v1/chat/completions")
	if err != nil {
		return Result{}, fmt.Errorf("chat completions request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return Result{}, fmt.Errorf("chat completions status %d", resp.StatusCode())
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return Result{}, fmt.Errorf("decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return Result{}, fmt.Errorf("no choices returned from OpenAI")
	}

	// choices[0].message.content should itself be JSON like
	// {"label": "negative", "score": -0.8}
	var parsed classification
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &parsed); err != nil {
		return Result{}, fmt.Errorf("decode classification payload: %w", err)
	}

	label := Label(strings.ToLower(parsed.Label))
	switch label {
	case LabelPositive, LabelNeutral, LabelNegative:
	default:
		return Result{}, fmt.Errorf("invalid label from OpenAI: %q", parsed.Label)
	}

	if parsed.Score == nil {
		return Result{}, fmt.Errorf("missing score in classification payload")
	}

	return Result{
		Label: label,
		Score: clampScore(*parsed.Score),
	}, nil
}
