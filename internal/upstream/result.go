package upstream

import (
	"encoding/json"
	"errors"

	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// ResultKind tags the outcome of a remote write.
type ResultKind string

const (
	ResultSuccess ResultKind = "SUCCESS"
	ResultFailure ResultKind = "FAILURE"
)

// Result is the normalized outcome of one mutation: the single source of
// truth for whether the toast is positive and whether the drawer closes
// and the list refreshes.
type Result struct {
	Kind    ResultKind      `json:"kind"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	err error
}

// OK reports whether the mutation succeeded.
func (r *Result) OK() bool { return r != nil && r.Kind == ResultSuccess }

// SessionExpired reports whether the failure was a rejected session.
func (r *Result) SessionExpired() bool {
	return r != nil && r.err != nil && errors.Is(r.err, appErrors.ErrSessionExpired)
}

// Err returns the originating error for failures, nil otherwise.
func (r *Result) Err() error { return r.err }

// Success builds a SUCCESS result carrying the upstream data payload.
func Success(data json.RawMessage) *Result {
	return &Result{Kind: ResultSuccess, Data: data}
}

// Failure builds a FAILURE result with the best-effort message.
func Failure(err error) *Result {
	return &Result{Kind: ResultFailure, Message: appErrors.FromError(err).Message, err: err}
}
