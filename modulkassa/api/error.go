package api

import "fmt"

// RequestError carries a non-2xx FN response.
type RequestError struct {
	StatusCode int
	Err        error
	Body       string
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d err: %v message: %s", r.StatusCode, r.Err, r.Body)
}

func (r *RequestError) Unwrap() error {
	return r.Err
}
