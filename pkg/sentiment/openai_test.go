package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClassifier(baseURL, apiKey string) *OpenAIClassifier {
	return NewOpenAIClassifier(utils.SentimentConfig{
		Provider: utils.ProviderOpenAI,
		APIKey:   apiKey,
		Model:    "gpt-4.1-mini",
		BaseURL:  baseURL,
	}, zap.NewNop())
}

// completionBody builds a chat-completions response whose first choice
// carries the given content string.
func completionBody(content string) string {
	body := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	encoded, _ := json.Marshal(body)
	return string(encoded)
}

func TestOpenAIClassifier_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4.1-mini", payload["model"])

		fmt.Fprint(w, completionBody(`{"label": "negative", "score": -0.8}`))
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, "test-key")
	result := classifier.Classify(context.Background(), "hated every minute")

	assert.Equal(t, LabelNegative, result.Label)
	assert.InDelta(t, -0.8, result.Score, 1e-9)
}

func TestOpenAIClassifier_LabelCaseInsensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`{"label": "Positive", "score": 0.9}`))
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, "test-key")
	result := classifier.Classify(context.Background(), "loved it")

	assert.Equal(t, LabelPositive, result.Label)
}

func TestOpenAIClassifier_ScoreClamped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`{"label": "positive", "score": 3.5}`))
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, "test-key")
	result := classifier.Classify(context.Background(), "loved it")

	assert.Equal(t, 1.0, result.Score)
}

func TestOpenAIClassifier_FallsBackToLocal(t *testing.T) {
	text := "I love the visuals but hate the pacing"
	local := NewLocalClassifier().Classify(context.Background(), text)

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"upstream 500",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"upstream 429",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			"body is not JSON",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json at all")
			},
		},
		{
			"no choices",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices": []}`)
			},
		},
		{
			"content is not JSON",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, completionBody("the movie was fine I guess"))
			},
		},
		{
			"invalid label",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, completionBody(`{"label": "meh", "score": 0.0}`))
			},
		},
		{
			"missing score",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, completionBody(`{"label": "positive"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			classifier := newTestClassifier(server.URL, "test-key")
			result := classifier.Classify(context.Background(), text)

			// Failure of any kind must yield exactly the local result
			assert.Equal(t, local, result)
		})
	}
}

func TestOpenAIClassifier_NoAPIKeySkipsRemote(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, completionBody(`{"label": "positive", "score": 1.0}`))
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, "")
	text := "what a boring film"
	result := classifier.Classify(context.Background(), text)

	assert.Equal(t, NewLocalClassifier().Classify(context.Background(), text), result)
	assert.Zero(t, calls.Load(), "remote must not be called without a key")
}

func TestNewClassifier_ProviderSelection(t *testing.T) {
	log := zap.NewNop()

	local := NewClassifier(utils.SentimentConfig{Provider: utils.ProviderLocal}, log)
	assert.IsType(t, &LocalClassifier{}, local)

	remote := NewClassifier(utils.SentimentConfig{Provider: utils.ProviderOpenAI}, log)
	assert.IsType(t, &OpenAIClassifier{}, remote)
}
