package client

import (
	"fmt"

	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

// ValidationError is a rejected create, either by the local check before
// sending or by the server's 400 response.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *ValidationError) Error() string { return e.Message }

// FetchError covers transport failures and unexpected statuses.
type FetchError struct {
	Op     string // "fetch crops", "create crop", ...
	Status int    // 0 when the request never got a response
	Err    error
}

func (e *FetchError) Error() string {
	return "failed to " + e.Op
}

func (e *FetchError) Unwrap() error { return e.Err }

// ShapeError is a response body that does not match the expected record shape.
type ShapeError struct {
	Label string
	Err   *schema.FieldError
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Label, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
