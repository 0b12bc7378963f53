package executor

import (
	"testing"

	language "github.com/hanpama/bloggraph/internal/language"
	registry "github.com/hanpama/bloggraph/internal/registry"
	store "github.com/hanpama/bloggraph/internal/store"
)

// mustParseQuery parses a GraphQL query and fails the test on error.
func mustParseQuery(t *testing.T, q string) *language.QueryDocument {
	t.Helper()
	d, err := language.ParseQuery(q)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return d
}

// newSeedExecutor builds an executor over the built-in seed dataset.
func newSeedExecutor(t *testing.T) *Executor {
	t.Helper()
	return New(registry.New(store.Seed()))
}
