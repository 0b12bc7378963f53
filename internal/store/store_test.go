package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupsByID(t *testing.T) {
	s := Seed()

	u := s.UserByID(1)
	require.NotNil(t, u)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, "alice@example.com", u.Email)

	p := s.PostByID(201)
	require.NotNil(t, p)
	require.Equal(t, "Trip to the Zoo", p.Title)
	require.Equal(t, 2, p.UserID)

	c := s.CommentByID(1003)
	require.NotNil(t, c)
	require.Equal(t, "Dave", c.Author)

	require.Nil(t, s.UserByID(999))
	require.Nil(t, s.PostByID(999))
	require.Nil(t, s.CommentByID(999))
}

func TestPostsByUserOrder(t *testing.T) {
	s := Seed()

	posts := s.PostsByUser(1)
	require.Len(t, posts, 2)
	require.Equal(t, "My First Post", posts[0].Title)
	require.Equal(t, "A Day in the Life", posts[1].Title)

	// Unknown user: empty, not nil, not an error.
	require.NotNil(t, s.PostsByUser(999))
	require.Empty(t, s.PostsByUser(999))
}

func TestCommentsByPostOrder(t *testing.T) {
	s := Seed()

	comments := s.CommentsByPost(202)
	require.Len(t, comments, 2)
	require.Equal(t, "Yum!", comments[0].Text)
	require.Equal(t, "Can I have a cookie?", comments[1].Text)

	require.Empty(t, s.CommentsByPost(103))
}

func TestDanglingForeignKey(t *testing.T) {
	s, err := New(
		[]User{{ID: 1, Name: "Solo", Email: "solo@example.com"}},
		[]Post{{ID: 10, UserID: 42, Title: "Orphan", Body: "no author"}},
		nil,
	)
	require.NoError(t, err)

	// The post is reachable even though user 42 does not exist.
	require.NotNil(t, s.PostByID(10))
	require.Empty(t, s.PostsByUser(1))
	require.Len(t, s.PostsByUser(42), 1)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]User{{ID: 1}, {ID: 1}}, nil, nil)
	require.ErrorContains(t, err, "duplicate user id 1")

	_, err = New(nil, []Post{{ID: 7}, {ID: 7}}, nil)
	require.ErrorContains(t, err, "duplicate post id 7")

	_, err = New(nil, nil, []Comment{{ID: 3}, {ID: 3}})
	require.ErrorContains(t, err, "duplicate comment id 3")
}

func TestLoad(t *testing.T) {
	src := `{
		"users": [{"id": 1, "name": "Zed", "email": "zed@example.com"}],
		"posts": [{"id": 2, "userId": 1, "title": "t", "body": "b", "createdAt": "2025-01-01T00:00:00Z"}],
		"comments": [{"id": 3, "postId": 2, "author": "Ann", "text": "hi"}]
	}`
	s, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "Zed", s.UserByID(1).Name)
	require.Len(t, s.PostsByUser(1), 1)
	require.Len(t, s.CommentsByPost(2), 1)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"users": [], "extra": true}`))
	require.Error(t, err)
}
