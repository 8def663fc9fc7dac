package nlp

import (
	"GoNLP/internal/analysis"
	"GoNLP/internal/lexicon"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	// labelThreshold is the margin a score must strictly exceed to be
	// labelled positive or negative.
	labelThreshold = 0.05
)

var whitespace = analysis.NewWhitespaceAnalyzer()

// Sentiment is the polarity of a text. Score lies in [-1, 1].
type Sentiment struct {
	Score float64
	Label string
}

// AnalyzeSentiment scores text as (positive hits - negative hits) divided
// by the number of whitespace tokens.
func AnalyzeSentiment(text string) Sentiment {
	tokens := whitespace.Analyze(text)
	if len(tokens) == 0 {
		return Sentiment{Score: 0, Label: LabelNeutral}
	}

	var positive, negative int
	for _, tok := range tokens {
		word := analysis.LettersOnly(tok.Term)
		if lexicon.IsPositive(word) {
			positive++
		}
		if lexicon.IsNegative(word) {
			negative++
		}
	}

	score := float64(positive-negative) / float64(len(tokens))
	score = max(-1.0, min(1.0, score))
	return Sentiment{Score: score, Label: sentimentLabel(score)}
}

func sentimentLabel(score float64) string {
	switch {
	case score > labelThreshold:
		return LabelPositive
	case score < -labelThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
