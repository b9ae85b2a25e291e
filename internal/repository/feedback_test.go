package repository

import (
	"testing"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

func TestFillSentiments(t *testing.T) {
	tests := []struct {
		name    string
		buckets []models.SentimentBucket
		want    [3]int64 // positive, neutral, negative
	}{
		{"nil input zero-fills all labels", nil, [3]int64{0, 0, 0}},
		{
			"partial input keeps missing labels at zero",
			[]models.SentimentBucket{{Sentiment: sentiment.Positive, Count: 4}},
			[3]int64{4, 0, 0},
		},
		{
			"full input reordered to positive/neutral/negative",
			[]models.SentimentBucket{
				{Sentiment: sentiment.Negative, Count: 1},
				{Sentiment: sentiment.Positive, Count: 2},
				{Sentiment: sentiment.Neutral, Count: 3},
			},
			[3]int64{2, 3, 1},
		},
	}

	order := []sentiment.Label{sentiment.Positive, sentiment.Neutral, sentiment.Negative}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fillSentiments(tt.buckets)
			if len(got) != 3 {
				t.Fatalf("fillSentiments() returned %d buckets, want 3", len(got))
			}
			for i, label := range order {
				if got[i].Sentiment != label {
					t.Errorf("bucket %d label = %q, want %q", i, got[i].Sentiment, label)
				}
				if got[i].Count != tt.want[i] {
					t.Errorf("bucket %q count = %d, want %d", label, got[i].Count, tt.want[i])
				}
			}
		})
	}
}
