package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/bloggraph/internal/store"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(store.Seed())
}

func TestRootOperations(t *testing.T) {
	reg := newTestRegistry(t)

	for _, tc := range []struct {
		op       string
		typeName string
		id       int
	}{
		{"user", "User", 1},
		{"post", "Post", 101},
		{"comment", "Comment", 1001},
	} {
		op, ok := reg.Root(tc.op)
		require.True(t, ok, tc.op)
		require.Equal(t, tc.typeName, op.Type)
		require.NotNil(t, op.Lookup(tc.id))
		require.Nil(t, op.Lookup(999999))
	}

	_, ok := reg.Root("users")
	require.False(t, ok)
}

func TestScalarFields(t *testing.T) {
	reg := newTestRegistry(t)

	u := *store.Seed().UserByID(1)
	name, ok := reg.Type("User").ScalarField("name")
	require.True(t, ok)
	require.Equal(t, "Alice", name(u))

	p := *store.Seed().PostByID(202)
	createdAt, ok := reg.Type("Post").ScalarField("createdAt")
	require.True(t, ok)
	require.Equal(t, "2025-05-20T10:00:00Z", createdAt(p))

	userID, ok := reg.Type("Post").ScalarField("userId")
	require.True(t, ok)
	require.Equal(t, 2, userID(p))

	_, ok = reg.Type("Comment").ScalarField("title")
	require.False(t, ok)
}

func TestRelationshipFields(t *testing.T) {
	reg := newTestRegistry(t)
	st := store.Seed()

	posts, ok := reg.Type("User").RelationshipField("posts")
	require.True(t, ok)
	require.Equal(t, "Post", posts.Target)
	require.Equal(t, Many, posts.Cardinality)

	got := posts.ResolveMany(*st.UserByID(1))
	require.Len(t, got, 2)
	require.Equal(t, "My First Post", got[0].(store.Post).Title)
	require.Equal(t, "A Day in the Life", got[1].(store.Post).Title)

	comments, ok := reg.Type("Post").RelationshipField("comments")
	require.True(t, ok)
	require.Equal(t, "Comment", comments.Target)
	require.Empty(t, comments.ResolveMany(*st.PostByID(201)))

	author, ok := reg.Type("Post").RelationshipField("author")
	require.True(t, ok)
	require.Equal(t, One, author.Cardinality)
	require.Equal(t, "Bob", author.ResolveOne(*st.PostByID(201)).(store.User).Name)

	// Comment declares no relationships at all.
	_, ok = reg.Type("Comment").RelationshipField("post")
	require.False(t, ok)
}

func TestDanglingAuthorResolvesToNil(t *testing.T) {
	st, err := store.New(nil, []store.Post{{ID: 1, UserID: 42, Title: "orphan"}}, nil)
	require.NoError(t, err)
	reg := New(st)

	author, ok := reg.Type("Post").RelationshipField("author")
	require.True(t, ok)
	require.Nil(t, author.ResolveOne(*st.PostByID(1)))
}
