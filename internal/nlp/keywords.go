package nlp

import (
	"cmp"
	"slices"

	"GoNLP/internal/analysis"
	"GoNLP/internal/lexicon"
)

// minKeywordLen is the shortest token kept as a keyword candidate.
const minKeywordLen = 3

var alnum = analysis.NewAlnumAnalyzer()

// TermCount is a distinct term and its number of occurrences.
type TermCount struct {
	Term  string
	Count int
}

// TermFrequencies counts the keyword candidates of text. Candidates are
// alphanumeric tokens longer than two bytes that are not stop words. The
// result is in first-occurrence order.
func TermFrequencies(text string) []TermCount {
	var counts []TermCount
	index := make(map[string]int)
	for _, tok := range alnum.Analyze(text) {
		if len(tok.Term) < minKeywordLen || lexicon.IsStopWord(tok.Term) {
			continue
		}
		if i, ok := index[tok.Term]; ok {
			counts[i].Count++
			continue
		}
		index[tok.Term] = len(counts)
		counts = append(counts, TermCount{Term: tok.Term, Count: 1})
	}
	return counts
}

// RankTerms returns the term frequencies of text sorted by descending
// count. Equal counts keep first-occurrence order.
func RankTerms(text string) []TermCount {
	counts := TermFrequencies(text)
	slices.SortStableFunc(counts, func(a, b TermCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return counts
}

// ExtractKeywords returns up to maxKeywords of the most frequent terms of
// text. A non-positive maxKeywords yields an empty, non-nil slice.
func ExtractKeywords(text string, maxKeywords int64) []string {
	if maxKeywords <= 0 {
		return []string{}
	}
	ranked := RankTerms(text)
	if int64(len(ranked)) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	keywords := make([]string, len(ranked))
	for i, tc := range ranked {
		keywords[i] = tc.Term
	}
	return keywords
}
