package executor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollect_AliasesAndOrder(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `{ first: user(id: 1) { userName: name } second: user(id: 2) { userName: name } }`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil)

	wantRes := &ExecutionResult{
		Data: map[string]any{
			"first":  map[string]any{"userName": "Alice"},
			"second": map[string]any{"userName": "Bob"},
		},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_FragmentSpread(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `
		{ post(id: 101) { ...postFields } }
		fragment postFields on Post { title comments { author } }
	`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil)

	wantRes := &ExecutionResult{
		Data: map[string]any{
			"post": map[string]any{
				"title": "My First Post",
				"comments": []any{
					map[string]any{"author": "Bob"},
					map[string]any{"author": "Carol"},
				},
			},
		},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_InlineFragmentTypeCondition(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `{ user(id: 1) { ... on User { name } ... on Post { title } } }`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil)

	// The Post condition does not match, so its fields are never resolved
	// and no unknown-field error is recorded.
	wantRes := &ExecutionResult{
		Data: map[string]any{
			"user": map[string]any{"name": "Alice"},
		},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_SkipAndInclude(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `
		query ($withEmail: Boolean!) {
			user(id: 1) {
				name
				email @include(if: $withEmail)
				id @skip(if: true)
			}
		}
	`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", map[string]any{"withEmail": false})

	wantRes := &ExecutionResult{
		Data: map[string]any{
			"user": map[string]any{"name": "Alice"},
		},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_DuplicateFieldsMergeSelections(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `{ user(id: 1) { posts { title } posts { id } } }`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil)

	posts := gotRes.Data["user"].(map[string]any)["posts"].([]any)
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %v", posts)
	}
	first := posts[0].(map[string]any)
	if first["title"] != "My First Post" || first["id"] != 101 {
		t.Fatalf("merged selections missing fields: %v", first)
	}
}

func TestCollect_Typename(t *testing.T) {
	exec := newSeedExecutor(t)
	doc := mustParseQuery(t, `{ __typename user(id: 1) { __typename posts { __typename } } }`)

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil)

	if gotRes.Data["__typename"] != "Query" {
		t.Fatalf("root typename: %v", gotRes.Data["__typename"])
	}
	u := gotRes.Data["user"].(map[string]any)
	if u["__typename"] != "User" {
		t.Fatalf("user typename: %v", u["__typename"])
	}
	if u["posts"].([]any)[0].(map[string]any)["__typename"] != "Post" {
		t.Fatalf("post typename: %v", u["posts"])
	}
}
