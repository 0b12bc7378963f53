package store

import (
	"encoding/json"
	"fmt"
	"io"
)

// User is a registered author. Users own posts via Post.UserID.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is an article written by a user. Posts own comments via Comment.PostID.
type Post struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// Comment is a reader reaction attached to a post.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Store holds the three collections and the indexes derived from them.
// It is built once before any request is served and never mutated afterwards,
// so any number of resolutions may read it concurrently without locking.
// The Store is the sole owner of the records; resolvers and adapters only
// hold lookups into it.
type Store struct {
	usersByID    map[int]User
	postsByID    map[int]Post
	commentsByID map[int]Comment

	postsByUser    map[int][]Post
	commentsByPost map[int][]Comment
}

// New builds a Store from the given collections. Index slices preserve the
// insertion order of the input, which is the order relationship resolutions
// report. Referential integrity is assumed, not validated: a dangling foreign
// key simply yields an empty result set at query time.
func New(users []User, posts []Post, comments []Comment) (*Store, error) {
	s := &Store{
		usersByID:      make(map[int]User, len(users)),
		postsByID:      make(map[int]Post, len(posts)),
		commentsByID:   make(map[int]Comment, len(comments)),
		postsByUser:    make(map[int][]Post),
		commentsByPost: make(map[int][]Comment),
	}
	for _, u := range users {
		if _, ok := s.usersByID[u.ID]; ok {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		s.usersByID[u.ID] = u
	}
	for _, p := range posts {
		if _, ok := s.postsByID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate post id %d", p.ID)
		}
		s.postsByID[p.ID] = p
		s.postsByUser[p.UserID] = append(s.postsByUser[p.UserID], p)
	}
	for _, c := range comments {
		if _, ok := s.commentsByID[c.ID]; ok {
			return nil, fmt.Errorf("duplicate comment id %d", c.ID)
		}
		s.commentsByID[c.ID] = c
		s.commentsByPost[c.PostID] = append(s.commentsByPost[c.PostID], c)
	}
	return s, nil
}

// UserByID returns the user with the given id, or nil when absent.
// Absence is a representable result, not an error.
func (s *Store) UserByID(id int) *User {
	if u, ok := s.usersByID[id]; ok {
		return &u
	}
	return nil
}

// PostByID returns the post with the given id, or nil when absent.
func (s *Store) PostByID(id int) *Post {
	if p, ok := s.postsByID[id]; ok {
		return &p
	}
	return nil
}

// CommentByID returns the comment with the given id, or nil when absent.
func (s *Store) CommentByID(id int) *Comment {
	if c, ok := s.commentsByID[id]; ok {
		return &c
	}
	return nil
}

// PostsByUser returns every post whose UserID equals userID, in insertion
// order. The result is never nil.
func (s *Store) PostsByUser(userID int) []Post {
	if ps := s.postsByUser[userID]; ps != nil {
		return ps
	}
	return []Post{}
}

// CommentsByPost returns every comment whose PostID equals postID, in
// insertion order. The result is never nil.
func (s *Store) CommentsByPost(postID int) []Comment {
	if cs := s.commentsByPost[postID]; cs != nil {
		return cs
	}
	return []Comment{}
}

// Dataset is the JSON interchange form consumed by Load and emitted by
// the dump-seed command.
type Dataset struct {
	Users    []User    `json:"users"`
	Posts    []Post    `json:"posts"`
	Comments []Comment `json:"comments"`
}

// Load reads a Dataset from r and builds a Store from it.
func Load(r io.Reader) (*Store, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return New(ds.Users, ds.Posts, ds.Comments)
}
