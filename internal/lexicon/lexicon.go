// Package lexicon holds the fixed word lists used by the heuristic
// analyzers. All words are lowercase ASCII. The sets are built once at
// package init and are only ever read.
package lexicon

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

var positiveWords = newWordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "love",
	"happy", "joy", "beautiful", "perfect", "best", "brilliant", "outstanding",
	"superb", "delightful", "pleasant", "impressive", "awesome", "nice",
	"positive", "success", "win", "celebrate", "grateful", "thankful",
)

var negativeWords = newWordSet(
	"bad", "terrible", "awful", "horrible", "hate", "angry", "sad",
	"worst", "ugly", "poor", "disappointing", "dreadful", "miserable",
	"pathetic", "disgusting", "annoying", "frustrating", "painful", "fail",
	"negative", "loss", "disaster", "tragic", "unfortunate", "regret",
)

var stopWords = newWordSet(
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "shall", "can", "need", "dare", "ought",
	"to", "of", "in", "for", "on", "with", "at", "by", "from", "as",
	"into", "through", "during", "before", "after", "above", "below",
	"between", "out", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "each",
	"every", "both", "few", "more", "most", "other", "some", "such", "no",
	"not", "only", "own", "same", "so", "than", "too", "very", "just",
	"because", "but", "and", "or", "if", "while", "that", "this", "it",
	"i", "me", "my", "we", "our", "you", "your", "he", "him", "his",
	"she", "her", "they", "them", "their", "what", "which", "who",
)

// IsPositive reports whether w is a positive sentiment word.
func IsPositive(w string) bool { return positiveWords.has(w) }

// IsNegative reports whether w is a negative sentiment word.
func IsNegative(w string) bool { return negativeWords.has(w) }

// IsStopWord reports whether w is excluded from keyword extraction.
func IsStopWord(w string) bool { return stopWords.has(w) }
