package sentiment

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"empty text", "", Neutral},
		{"no keywords", "it works as described", Neutral},
		{"single positive", "great idea", Positive},
		{"single negative", "bad experience", Negative},
		{"uppercase keywords", "GREAT and AMAZING", Positive},
		{"mixed, positive wins", "great and awesome but bad", Positive},
		{"mixed, negative wins", "great but awful and useless", Negative},
		{"tie falls back to neutral", "great but terrible", Neutral},
		{"keyword inside larger word", "the bestseller list", Positive},
		{"negation not handled", "not great", Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "a wonderful but disappointing launch"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify(%q) = %q on run %d, want %q", text, got, i, first)
		}
	}
}
