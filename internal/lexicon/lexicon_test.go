package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentSetsAreDisjoint(t *testing.T) {
	for w := range positiveWords {
		assert.False(t, IsNegative(w), "%q is in both sentiment sets", w)
	}
	assert.True(t, IsPositive("good"))
	assert.True(t, IsNegative("bad"))
	assert.False(t, IsPositive("Good"), "lookups are case sensitive")
}

func TestStopWords(t *testing.T) {
	for _, w := range []string{"a", "the", "which", "because"} {
		assert.True(t, IsStopWord(w), w)
	}
	assert.False(t, IsStopWord("cat"))
}

func TestLanguages_Order(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 4)

	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
		assert.Equal(t, 12, l.MarkerCount(), l.Name)
	}
	assert.Equal(t, []string{"english", "spanish", "french", "german"}, names)

	assert.True(t, langs[0].IsMarker("the"))
	assert.True(t, langs[1].IsMarker("la"))
	assert.True(t, langs[2].IsMarker("la"))
	assert.False(t, langs[3].IsMarker("la"))
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	langs := Languages()
	langs[0] = Language{Name: "klingon"}
	assert.Equal(t, "english", Languages()[0].Name)
}
