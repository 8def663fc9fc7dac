package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int64
		want []string
	}{
		{"top two", "cat dog cat bird dog cat", 2, []string{"cat", "dog"}},
		{"only stop words", "a an the", 5, []string{}},
		{"max above distinct count", "cat dog cat", 10, []string{"cat", "dog"}},
		{"zero max", "cat dog cat", 0, []string{}},
		{"negative max", "cat dog cat", -3, []string{}},
		{"empty text", "", 3, []string{}},
		{"ties keep first occurrence", "zebra apple zebra apple mango", 3, []string{"zebra", "apple", "mango"}},
		{"case and punctuation", "Hello, HELLO world!", 5, []string{"hello", "world"}},
		{"short tokens dropped", "ox ox ox go cat", 5, []string{"cat"}},
		{"digits kept", "abc123 abc123 42 x9z", 5, []string{"abc123", "x9z"}},
		{"non-ascii splits", "naïveté naïveté", 5, []string{"vet"}},
		{"dotted capital I is not a stop word", "THİS thing thing", 5, []string{"thing", "thi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, tt.max)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTermFrequencies_FirstOccurrenceOrder(t *testing.T) {
	got := TermFrequencies("bird cat the bird dog cat bird")
	assert.Equal(t, []TermCount{
		{Term: "bird", Count: 3},
		{Term: "cat", Count: 2},
		{Term: "dog", Count: 1},
	}, got)
}

func TestRankTerms_Stable(t *testing.T) {
	got := RankTerms("one two three two four three five")
	assert.Equal(t, []TermCount{
		{Term: "two", Count: 2},
		{Term: "three", Count: 2},
		{Term: "one", Count: 1},
		{Term: "four", Count: 1},
		{Term: "five", Count: 1},
	}, got)
}
