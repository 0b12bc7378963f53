package server

import (
	"net/http"
	"strconv"
)

// The REST projections are fixed-shape special cases of the resolution the
// graph endpoint performs: each handler issues one pre-decided lookup against
// the store and serializes the raw records.

type restMessage struct {
	Message string `json:"message"`
}

// handleGetUser serves GET /users/{id}: the flat user record, or 404 when the
// user does not exist.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, s.opt.Pretty)
	if !ok {
		return
	}
	u := s.store.UserByID(id)
	if u == nil {
		writeJSON(w, http.StatusNotFound, restMessage{Message: "User not found"}, s.opt.Pretty)
		return
	}
	writeJSON(w, http.StatusOK, u, s.opt.Pretty)
}

// handleGetUserPosts serves GET /users/{id}/posts. An unknown user is not an
// error here: it has no posts, so the response is an empty array with 200.
func (s *Server) handleGetUserPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, s.opt.Pretty)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.PostsByUser(id), s.opt.Pretty)
}

// handleGetPostComments serves GET /posts/{id}/comments, with the same
// empty-array-not-404 policy.
func (s *Server) handleGetPostComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, s.opt.Pretty)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.CommentsByPost(id), s.opt.Pretty)
}

func pathID(w http.ResponseWriter, r *http.Request, pretty bool) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, restMessage{Message: "invalid id"}, pretty)
		return 0, false
	}
	return id, true
}
