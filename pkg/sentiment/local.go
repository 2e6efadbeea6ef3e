package sentiment

import (
	"context"
	"strings"
)

var positiveWords = []string{
	"good",
	"great",
	"amazing",
	"awesome",
	"love",
	"loved",
	"excellent",
	"fantastic",
	"enjoyed",
	"liked",
}

var negativeWords = []string{
	"bad",
	"boring",
	"terrible",
	"awful",
	"hate",
	"hated",
	"disappointing",
	"disappointed",
	"slow",
	"did not like",
	"didn't like",
	"worst",
}

// LocalClassifier is a keyword heuristic that needs no network. It is pure
// and total, which makes it the guaranteed fallback for every other
// strategy.
type LocalClassifier struct{}

func NewLocalClassifier() *LocalClassifier {
	return &LocalClassifier{}
}

// Classify scores the text by keyword hits: +0.2 per positive word,
// -0.25 per negative word, clamped to [-1, 1].
func (c *LocalClassifier) Classify(_ context.Context, text string) Result {
	lowered := strings.ToLower(text)
	score := 0.0

	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			score += 0.2
		}
	}

	for _, word := range negativeWords {
		if strings.Contains(lowered, word) {
			score -= 0.25
		}
	}

	score = clampScore(score)

	return Result{
		Label: labelForScore(score),
		Score: score,
	}
}
