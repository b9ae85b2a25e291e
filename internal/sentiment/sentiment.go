// Package sentiment labels feedback text as positive, neutral or negative by
// counting hits against two fixed keyword lists. It is a heuristic: negation
// and ties are not handled, which is a known limitation of the approach.
package sentiment

import "strings"

// Label is the sentiment assigned to a piece of feedback text.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

var positiveWords = []string{
	"great", "amazing", "excellent", "love", "awesome",
	"wonderful", "perfect", "best", "brilliant", "fantastic",
}

var negativeWords = []string{
	"bad", "awful", "terrible", "hate", "worst",
	"horrible", "poor", "disappointing", "useless", "waste",
}

// Classify scores text by substring presence of each keyword,
// case-insensitive. More positive hits than negative wins positive, the
// reverse wins negative, and everything else (including empty text) is
// neutral.
func Classify(text string) Label {
	lower := strings.ToLower(text)

	var positiveCount, negativeCount int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positiveCount++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negativeCount++
		}
	}

	switch {
	case positiveCount > negativeCount:
		return Positive
	case negativeCount > positiveCount:
		return Negative
	default:
		return Neutral
	}
}
