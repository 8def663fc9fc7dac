// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"GoNLP/internal/module"
	"GoNLP/internal/nlp"
	"GoNLP/internal/value"
)

// Namespace is the namespace used by test registries.
const Namespace = "nlp.sentiment"

// TextInput returns the {text: String} input value.
func TextInput(text string) value.Value {
	return value.NewProduct(map[string]value.Value{
		"text": value.NewString(text),
	})
}

// KeywordsInput returns the {text: String, maxKeywords: Int} input value.
func KeywordsInput(text string, maxKeywords int64) value.Value {
	return value.NewProduct(map[string]value.Value{
		"text":        value.NewString(text),
		"maxKeywords": value.NewInt(maxKeywords),
	})
}

// NewRegistry returns a registry with every analyzer registered.
func NewRegistry(t testing.TB) *module.Registry {
	t.Helper()
	r, err := nlp.NewRegistry(Namespace)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return r
}

// Logger returns a zap logger that writes through t.
func Logger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}

// ValueDiff returns a human-readable diff between two values, or "" if
// they are equal.
func ValueDiff(want, got value.Value) string {
	return cmp.Diff(want, got, cmp.AllowUnexported(value.Product{}, value.List{}, value.Type{}))
}
