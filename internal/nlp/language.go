package nlp

import (
	"GoNLP/internal/analysis"
	"GoNLP/internal/lexicon"
)

const (
	LanguageUnknown = "unknown"

	fallbackLanguage   = "english"
	fallbackConfidence = 0.3
	confidenceScale    = 5
)

// Detection is the outcome of language detection.
type Detection struct {
	Language   string
	Confidence float64
}

// DetectLanguage picks the language whose marker words cover the largest
// share of the whitespace tokens of text.
//
// Languages are scored in lexicon order and a later language only wins on
// a strictly greater score, so ties keep the earlier language. When no
// marker matches at all the result is english at 0.3, which is returned
// as is rather than scaled.
func DetectLanguage(text string) Detection {
	tokens := whitespace.Analyze(text)
	if len(tokens) == 0 {
		return Detection{Language: LanguageUnknown, Confidence: 0}
	}

	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = analysis.LettersOnly(tok.Term)
	}

	best, bestScore := LanguageUnknown, 0.0
	for _, lang := range lexicon.Languages() {
		matches := 0
		for _, w := range words {
			if lang.IsMarker(w) {
				matches++
			}
		}
		score := float64(matches) / float64(len(words))
		if score > bestScore {
			best, bestScore = lang.Name, score
		}
	}

	if bestScore == 0 {
		return Detection{Language: fallbackLanguage, Confidence: fallbackConfidence}
	}
	return Detection{Language: best, Confidence: min(1.0, bestScore*confidenceScale)}
}
