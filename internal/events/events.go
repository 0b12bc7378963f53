// Package events defines the lifecycle events published on the bus while
// serving a request: one pair per HTTP exchange and one pair per graph query
// resolved within it.
package events

import (
	"net/http"
	"time"
)

// HTTPStart is emitted when a request reaches the server, before any
// handler runs.
type HTTPStart struct {
	Request *http.Request
}

// HTTPFinish is emitted once the handler has written its response.
type HTTPFinish struct {
	Request  *http.Request
	Status   int
	Duration time.Duration
}

// QueryStart is emitted before resolving a graph query.
type QueryStart struct {
	Query         string
	OperationName string
}

// QueryFinish is emitted after resolving a graph query.
type QueryFinish struct {
	Query         string
	OperationName string
	Errors        []error
	Duration      time.Duration
}
