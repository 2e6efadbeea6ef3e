package usecase

import (
	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/sentiment"
)

// ReviewAggregate summarizes a collection of reviews. Pointer fields stay
// nil when there is nothing to average. It is never stored: underlying
// reviews change between calls, so callers recompute it on every query.
type ReviewAggregate struct {
	Count                 int
	AverageRating         *float64
	OverallSentiment      *string
	AverageSentimentScore *float64
}

// AggregateReviews computes count, mean rating, mean sentiment score over
// the classified reviews, and the overall label derived from that mean.
func AggregateReviews(reviews []*entity.Review) ReviewAggregate {
	agg := ReviewAggregate{Count: len(reviews)}
	if len(reviews) == 0 {
		return agg
	}

	ratingSum := 0
	scoreSum := 0.0
	scored := 0

	for _, review := range reviews {
		ratingSum += review.Rating
		if review.SentimentScore != nil {
			scoreSum += *review.SentimentScore
			scored++
		}
	}

	averageRating := float64(ratingSum) / float64(len(reviews))
	agg.AverageRating = &averageRating

	if scored == 0 {
		return agg
	}

	averageScore := scoreSum / float64(scored)
	agg.AverageSentimentScore = &averageScore

	label := string(overallLabel(averageScore))
	agg.OverallSentiment = &label

	return agg
}

// overallLabel uses wider thresholds than the single-review rule:
// > 0.2 positive, < -0.2 negative, else neutral.
func overallLabel(averageScore float64) sentiment.Label {
	switch {
	case averageScore > 0.2:
		return sentiment.LabelPositive
	case averageScore < -0.2:
		return sentiment.LabelNegative
	default:
		return sentiment.LabelNeutral
	}
}
