package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	eventbus "github.com/hanpama/bloggraph/internal/eventbus"
	events "github.com/hanpama/bloggraph/internal/events"
	executor "github.com/hanpama/bloggraph/internal/executor"
	language "github.com/hanpama/bloggraph/internal/language"
)

// Request is a GraphQL-style query request: query text, optional operation
// name and variables.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse(nil, &language.Error{Message: "method not allowed"}), s.opt.Pretty)
		return
	}

	// Serve the GraphiQL IDE when enabled and the client expects HTML.
	if r.Method == http.MethodGet && s.opt.GraphiQL && acceptsHTML(r.Header.Get("Accept")) && r.URL.Query().Get("query") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(graphiqlPage)
		return
	}

	req, batch, berr := parseRequest(r, s.opt.MaxBodyBytes)
	if berr != nil {
		status := http.StatusBadRequest
		if berr.Message == errBodyTooLargeMessage {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorResponse(nil, berr), s.opt.Pretty)
		return
	}

	if batch != nil {
		out := make([]any, len(batch))
		for i := range batch {
			out[i] = s.executeOne(r, batch[i])
		}
		writeJSON(w, http.StatusOK, out, s.opt.Pretty)
		return
	}

	writeJSON(w, http.StatusOK, s.executeOne(r, req), s.opt.Pretty)
}

func (s *Server) executeOne(r *http.Request, req Request) any {
	ctx := r.Context()

	doc, err := language.ParseQuery(req.Query)
	if err != nil {
		if pe, ok := err.(*language.Error); ok {
			return errorResponse(nil, pe)
		}
		return errorResponse(nil, &language.Error{Message: err.Error()})
	}

	start := time.Now()
	eventbus.Publish(ctx, events.QueryStart{Query: req.Query, OperationName: req.OperationName})
	result := s.exec.ExecuteRequest(ctx, doc, req.OperationName, req.Variables)
	errs := make([]error, len(result.Errors))
	for i := range result.Errors {
		errs[i] = result.Errors[i]
	}
	eventbus.Publish(ctx, events.QueryFinish{
		Query:         req.Query,
		OperationName: req.OperationName,
		Errors:        errs,
		Duration:      time.Since(start),
	})
	return toSpecResult(result)
}

func parseRequest(r *http.Request, maxBody int64) (Request, []Request, *language.Error) {
	if r.Method == http.MethodGet {
		q := r.URL.Query().Get("query")
		if q == "" {
			return Request{}, nil, &language.Error{Message: "missing 'query'"}
		}
		vars := map[string]any{}
		if v := r.URL.Query().Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &vars); err != nil {
				return Request{}, nil, &language.Error{Message: "invalid 'variables' JSON"}
			}
		}
		op := r.URL.Query().Get("operationName")
		return Request{Query: q, Variables: vars, OperationName: op}, nil, nil
	}

	// POST
	ct := r.Header.Get("Content-Type")
	if ct != "" && ct != "application/json" && !strings.HasPrefix(ct, "application/json;") {
		return Request{}, nil, &language.Error{Message: "unsupported Content-Type"}
	}

	reader := io.Reader(r.Body)
	if maxBody > 0 {
		reader = io.LimitReader(r.Body, maxBody+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return Request{}, nil, &language.Error{Message: "failed to read body"}
	}
	defer r.Body.Close()
	if maxBody > 0 && int64(len(body)) > maxBody {
		return Request{}, nil, &language.Error{Message: errBodyTooLargeMessage}
	}

	// Array body is a batch of requests.
	if len(body) > 0 && body[0] == '[' {
		var arr []Request
		if err := json.Unmarshal(body, &arr); err != nil {
			return Request{}, nil, &language.Error{Message: "invalid JSON"}
		}
		if len(arr) == 0 {
			return Request{}, nil, &language.Error{Message: "empty batch"}
		}
		return Request{}, arr, nil
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Request{}, nil, &language.Error{Message: "invalid JSON"}
	}
	if req.Query == "" {
		return Request{}, nil, &language.Error{Message: "missing 'query'"}
	}
	if req.Variables == nil {
		req.Variables = map[string]any{}
	}
	return req, nil, nil
}

// ------------------ Response formatting ------------------

type specError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type specResult struct {
	Data   any         `json:"data"`
	Errors []specError `json:"errors,omitempty"`
}

func errorResponse(data any, err *language.Error) specResult {
	return specResult{Data: data, Errors: []specError{{Message: err.Message}}}
}

func toSpecResult(res *executor.ExecutionResult) specResult {
	out := specResult{Data: res.Data}
	if len(res.Errors) == 0 {
		return out
	}
	out.Errors = make([]specError, len(res.Errors))
	for i, e := range res.Errors {
		se := specError{Message: e.Message, Extensions: e.Extensions}
		if len(e.Path) > 0 {
			se.Path = make([]any, len(e.Path))
			for j, pe := range e.Path {
				se.Path[j] = pe
			}
		}
		out.Errors[i] = se
	}
	return out
}

const errBodyTooLargeMessage = "body too large"
