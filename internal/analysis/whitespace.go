package analysis

import "unicode/utf8"

// WhitespaceAnalyzer lower-cases text and splits it on runs of whitespace.
type WhitespaceAnalyzer struct{}

// NewWhitespaceAnalyzer creates a new WhitespaceAnalyzer.
func NewWhitespaceAnalyzer() *WhitespaceAnalyzer {
	return &WhitespaceAnalyzer{}
}

// Analyze splits the lower-cased input on whitespace, keeping punctuation
// attached to its token.
func (a *WhitespaceAnalyzer) Analyze(text string) []Token {
	text = lower(text)

	var tokens []Token
	pos := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isSpace(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if isSpace(r) {
				break
			}
			i += size
		}

		tokens = append(tokens, Token{
			Term:      text[start:i],
			Position:  pos,
			StartByte: start,
			EndByte:   i,
		})
		pos++
	}

	return tokens
}
