package sentiment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalClassifier_ScoreStaysInBounds(t *testing.T) {
	classifier := NewLocalClassifier()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"all positive words", strings.Join(positiveWords, " ")},
		{"all negative words", strings.Join(negativeWords, " ")},
		{"everything at once", strings.Join(append(append([]string{}, positiveWords...), negativeWords...), " ")},
		{"repeated positives", strings.Repeat("good great amazing awesome excellent fantastic ", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(context.Background(), tt.text)

			assert.GreaterOrEqual(t, result.Score, -1.0)
			assert.LessOrEqual(t, result.Score, 1.0)
			assert.Equal(t, labelForScore(result.Score), result.Label)
		})
	}
}

func TestLocalClassifier_KeywordScoring(t *testing.T) {
	classifier := NewLocalClassifier()

	t.Run("single positive word", func(t *testing.T) {
		result := classifier.Classify(context.Background(), "that was a good movie")

		assert.InDelta(t, 0.2, result.Score, 1e-9)
		assert.Equal(t, LabelPositive, result.Label)
	})

	t.Run("single negative word", func(t *testing.T) {
		result := classifier.Classify(context.Background(), "what a boring film")

		assert.InDelta(t, -0.25, result.Score, 1e-9)
		assert.Equal(t, LabelNegative, result.Label)
	})

	t.Run("love and hate cancel to neutral", func(t *testing.T) {
		result := classifier.Classify(context.Background(), "I love the visuals but hate the pacing")

		assert.InDelta(t, -0.05, result.Score, 1e-9)
		assert.Equal(t, LabelNeutral, result.Label)
	})

	t.Run("no keywords is neutral zero", func(t *testing.T) {
		result := classifier.Classify(context.Background(), "a film about trains")

		assert.Zero(t, result.Score)
		assert.Equal(t, LabelNeutral, result.Label)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		upper := classifier.Classify(context.Background(), "ABSOLUTELY TERRIBLE")
		lower := classifier.Classify(context.Background(), "absolutely terrible")

		assert.Equal(t, lower, upper)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := classifier.Classify(context.Background(), "loved it, truly excellent")
		second := classifier.Classify(context.Background(), "loved it, truly excellent")

		assert.Equal(t, first, second)
	})
}

func TestLocalClassifier_Clamping(t *testing.T) {
	classifier := NewLocalClassifier()

	// Six positive hits would be 1.2 unclamped
	result := classifier.Classify(context.Background(), "good great amazing awesome excellent fantastic")
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, LabelPositive, result.Label)

	// Five negative hits would be -1.25 unclamped
	result = classifier.Classify(context.Background(), "bad boring terrible awful worst")
	assert.Equal(t, -1.0, result.Score)
	assert.Equal(t, LabelNegative, result.Label)
}

func TestLabelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{0.0, LabelNeutral},
		{0.1, LabelNeutral},
		{0.1000001, LabelPositive},
		{-0.1, LabelNeutral},
		{-0.1000001, LabelNegative},
		{1.0, LabelPositive},
		{-1.0, LabelNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, labelForScore(tt.score), "score %v", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 1.0, clampScore(3.7))
	assert.Equal(t, -1.0, clampScore(-2.0))
	assert.Equal(t, 0.42, clampScore(0.42))
}
