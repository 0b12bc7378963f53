// Package registry declares the entity types served by the query engine:
// their scalar fields, their relationship fields and the root operations.
//
// The registry is configuration, not request data. It is built once from a
// Store at process start and never mutated, so it may be shared by any number
// of concurrent resolutions. Field declarations are typed through small
// generic adapters; the only runtime string dispatch left is the field-name
// lookup itself, which is exactly where unknown-field errors come from.
//
// The declared relationship graph (User→Post→Comment, Post→User) contains no
// cycle reachable through a growing selection, and the executor relies on
// that: keeping declarations acyclic is this package's responsibility.
package registry

import (
	"github.com/hanpama/bloggraph/internal/store"
)

// Cardinality says whether a relationship yields one entity or a sequence.
type Cardinality int

const (
	One Cardinality = iota
	Many
)

// ScalarFunc extracts a scalar field value from its parent entity.
type ScalarFunc func(parent any) any

// Relationship is a declared, derived edge between entity types, computed on
// demand from store lookups rather than stored on the entity.
type Relationship struct {
	Target      string
	Cardinality Cardinality

	resolveOne  func(parent any) any
	resolveMany func(parent any) []any
}

// ResolveOne resolves a one-cardinality edge. It returns nil when the edge
// points at nothing, which includes dangling foreign keys.
func (r *Relationship) ResolveOne(parent any) any { return r.resolveOne(parent) }

// ResolveMany resolves a many-cardinality edge in store insertion order.
// The result is never nil.
func (r *Relationship) ResolveMany(parent any) []any { return r.resolveMany(parent) }

// Type declares one entity type: its name, scalar fields and relationships.
type Type struct {
	Name string

	scalars       map[string]ScalarFunc
	relationships map[string]*Relationship
}

// ScalarField returns the extraction function declared under name.
func (t *Type) ScalarField(name string) (ScalarFunc, bool) {
	fn, ok := t.scalars[name]
	return fn, ok
}

// RelationshipField returns the relationship declared under name.
func (t *Type) RelationshipField(name string) (*Relationship, bool) {
	rel, ok := t.relationships[name]
	return rel, ok
}

// Root is a named entry point taking a single integer id argument and
// returning an optional single entity.
type Root struct {
	Name string
	Type string

	lookup func(id int) any
}

// Lookup resolves the root argument against the store. A nil result is the
// legitimate "not found" value, not a failure.
func (r *Root) Lookup(id int) any { return r.lookup(id) }

// Registry holds the static type and root operation declarations.
type Registry struct {
	types map[string]*Type
	roots map[string]*Root
}

// Type returns the declared entity type with the given name, or nil.
func (r *Registry) Type(name string) *Type { return r.types[name] }

// Root returns the root operation with the given name.
func (r *Registry) Root(name string) (*Root, bool) {
	op, ok := r.roots[name]
	return op, ok
}

// New declares the schema over the given store.
func New(st *store.Store) *Registry {
	user := newType("User",
		scalars{
			"id":    scalar(func(u store.User) any { return u.ID }),
			"name":  scalar(func(u store.User) any { return u.Name }),
			"email": scalar(func(u store.User) any { return u.Email }),
		},
		relationships{
			"posts": many("Post", func(u store.User) []store.Post { return st.PostsByUser(u.ID) }),
		},
	)
	post := newType("Post",
		scalars{
			"id":        scalar(func(p store.Post) any { return p.ID }),
			"userId":    scalar(func(p store.Post) any { return p.UserID }),
			"title":     scalar(func(p store.Post) any { return p.Title }),
			"body":      scalar(func(p store.Post) any { return p.Body }),
			"createdAt": scalar(func(p store.Post) any { return p.CreatedAt }),
		},
		relationships{
			"author":   one("User", func(p store.Post) *store.User { return st.UserByID(p.UserID) }),
			"comments": many("Comment", func(p store.Post) []store.Comment { return st.CommentsByPost(p.ID) }),
		},
	)
	comment := newType("Comment",
		scalars{
			"id":     scalar(func(c store.Comment) any { return c.ID }),
			"postId": scalar(func(c store.Comment) any { return c.PostID }),
			"author": scalar(func(c store.Comment) any { return c.Author }),
			"text":   scalar(func(c store.Comment) any { return c.Text }),
		},
		nil,
	)

	return &Registry{
		types: map[string]*Type{
			user.Name:    user,
			post.Name:    post,
			comment.Name: comment,
		},
		roots: map[string]*Root{
			"user":    root("user", "User", st.UserByID),
			"post":    root("post", "Post", st.PostByID),
			"comment": root("comment", "Comment", st.CommentByID),
		},
	}
}

type (
	scalars       map[string]ScalarFunc
	relationships map[string]*Relationship
)

func newType(name string, sf scalars, rf relationships) *Type {
	return &Type{Name: name, scalars: sf, relationships: rf}
}

// scalar adapts a typed extraction function to a ScalarFunc. The assertion
// cannot fail at query time: every entity reaching a Type's fields was
// produced by a root or relationship declared with that same entity type.
func scalar[T any](fn func(T) any) ScalarFunc {
	return func(parent any) any { return fn(parent.(T)) }
}

// one adapts a typed single-entity resolver. The pointer result collapses to
// an untyped nil so absence stays explicit downstream.
func one[T, R any](target string, fn func(T) *R) *Relationship {
	return &Relationship{
		Target:      target,
		Cardinality: One,
		resolveOne: func(parent any) any {
			if v := fn(parent.(T)); v != nil {
				return *v
			}
			return nil
		},
	}
}

// many adapts a typed sequence resolver, preserving the store's order.
func many[T, R any](target string, fn func(T) []R) *Relationship {
	return &Relationship{
		Target:      target,
		Cardinality: Many,
		resolveMany: func(parent any) []any {
			rs := fn(parent.(T))
			out := make([]any, len(rs))
			for i := range rs {
				out[i] = rs[i]
			}
			return out
		},
	}
}

func root[R any](name, typeName string, lookup func(int) *R) *Root {
	return &Root{
		Name: name,
		Type: typeName,
		lookup: func(id int) any {
			if v := lookup(id); v != nil {
				return *v
			}
			return nil
		},
	}
}
