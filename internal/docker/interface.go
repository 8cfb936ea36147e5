// internal/docker/interface.go
package docker

import (
	"context"
	"strings"
)

// Querier returns the raw ID||Name||Status listing of all containers
// (running + stopped), one container per line. A failed query returns a
// *QueryError.
type Querier interface {
	QueryContainers(ctx context.Context) (string, error)
}

// Varmista että molemmat toteuttavat interfacen
var (
	_ Querier = (*CLI)(nil)
	_ Querier = (*Client)(nil)
)

// QueryError describes why the container runtime could not be queried.
// Message is the diagnostic text recorded in the snapshot log.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// queryFailed wraps msg into a QueryError, substituting the fallback
// text when msg is blank.
func queryFailed(msg string) *QueryError {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = FallbackMessage
	}
	return &QueryError{Message: msg}
}
