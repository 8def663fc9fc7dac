package analysis

// AlnumAnalyzer lower-cases text and emits maximal runs of [a-z0-9].
// Every other byte, including all non-ASCII letters, separates tokens.
type AlnumAnalyzer struct{}

// NewAlnumAnalyzer creates a new AlnumAnalyzer.
func NewAlnumAnalyzer() *AlnumAnalyzer {
	return &AlnumAnalyzer{}
}

// Analyze tokenizes the lower-cased input into alphanumeric runs.
func (a *AlnumAnalyzer) Analyze(text string) []Token {
	text = lower(text)

	var tokens []Token
	pos := 0
	i := 0
	for i < len(text) {
		// Skip separators.
		if !isAlnum(text[i]) {
			i++
			continue
		}

		start := i
		for i < len(text) && isAlnum(text[i]) {
			i++
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
