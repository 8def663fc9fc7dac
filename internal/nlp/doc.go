// Package nlp implements three deterministic, word-list based text
// analyzers and exposes each of them as a module.Definition:
//
//   - AnalyzeSentiment scores polarity from fixed positive and negative
//     word sets.
//   - DetectLanguage scores text against english, spanish, french and
//     german marker words.
//   - ExtractKeywords ranks filtered tokens by term frequency.
//
// Every function is pure. The word lists are read-only, so analyzers may
// run concurrently without locking.
package nlp
