package lexicon

// Language is a detectable language and its marker words.
type Language struct {
	Name    string
	markers wordSet
}

// IsMarker reports whether w is one of the language's marker words.
func (l Language) IsMarker(w string) bool { return l.markers.has(w) }

// MarkerCount returns the number of distinct marker words.
func (l Language) MarkerCount() int { return len(l.markers) }

// The order is significant: detection keeps the earliest language on a
// tied score.
var languages = []Language{
	{Name: "english", markers: newWordSet("the", "is", "are", "was", "were", "have", "has", "been", "will", "would", "could", "should")},
	{Name: "spanish", markers: newWordSet("el", "la", "los", "las", "es", "son", "tiene", "hacer", "como", "pero", "que", "por")},
	{Name: "french", markers: newWordSet("le", "la", "les", "est", "sont", "avoir", "faire", "comme", "mais", "que", "pour", "dans")},
	{Name: "german", markers: newWordSet("der", "die", "das", "ist", "sind", "haben", "werden", "nicht", "aber", "und", "ein", "eine")},
}

// Languages returns the detectable languages in detection order:
// english, spanish, french, german. The returned slice is a copy.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
