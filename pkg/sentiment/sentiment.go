package sentiment

import (
	"context"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Result holds one classification outcome. Score is in [-1.0, 1.0],
// negative meaning very negative and positive very positive.
type Result struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Classifier turns review text into a sentiment result. Implementations
// never fail outward: review writes must not be blocked by a flaky
// upstream, so every internal error degrades to the local heuristic.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// NewClassifier picks the strategy configured at startup.
func NewClassifier(config utils.SentimentConfig, log *zap.Logger) Classifier {
	switch config.Provider {
	case utils.ProviderOpenAI:
		return NewOpenAIClassifier(config, log)
	default:
		return NewLocalClassifier()
	}
}

// clampScore bounds a score to [-1.0, 1.0]
func clampScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}
	return score
}

// labelForScore derives a label from a single-review score.
// Thresholds: > 0.1 positive, < -0.1 negative, else neutral.
func labelForScore(score float64) Label {
	switch {
	case score > 0.1:
		return LabelPositive
	case score < -0.1:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
