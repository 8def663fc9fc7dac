// Package analysis splits text into lower-cased tokens. It provides the
// two tokenization policies shared by the text analyzers.
package analysis

import (
	"strings"
	"unicode"
)

// Token represents a single token produced by an analyzer.
// Offsets index into the lower-cased input.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer processes text into a stream of tokens.
// Implementations are stateless and safe for concurrent use.
type Analyzer interface {
	// Analyze lower-cases and tokenizes the input, left to right.
	Analyze(text string) []Token
}

// Terms returns the term of each token in order.
func Terms(tokens []Token) []string {
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	return terms
}

// LettersOnly strips every byte outside [a-z] from term.
func LettersOnly(term string) string {
	for i := 0; i < len(term); i++ {
		if !isLower(term[i]) {
			return filterLetters(term)
		}
	}
	return term
}

func filterLetters(term string) string {
	b := make([]byte, 0, len(term))
	for i := 0; i < len(term); i++ {
		if isLower(term[i]) {
			b = append(b, term[i])
		}
	}
	return string(b)
}

// lower lower-cases text with the full case mapping, under which U+0130
// becomes "i" followed by U+0307 rather than a bare "i".
func lower(text string) string {
	if strings.ContainsRune(text, '\u0130') {
		text = strings.ReplaceAll(text, "\u0130", "i\u0307")
	}
	return strings.ToLower(text)
}

// isSpace reports whether r is whitespace in the sense of the ECMAScript
// \s class: U+FEFF counts, U+0085 does not.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAlnum(c byte) bool {
	return isLower(c) || (c >= '0' && c <= '9')
}
