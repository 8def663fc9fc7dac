package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"GoNLP/internal/module"
	"GoNLP/internal/value"
)

var (
	errBodyTooLarge   = errors.New("request body too large")
	errInvalidRequest = errors.New("invalid request")
	errCanceled       = errors.New("invocation canceled")
)

// errorBody is the "error" member of every failed response.
type errorBody struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

const (
	kindShape    = "shape"
	kindNotFound = "not_found"
	kindRequest  = "invalid_request"
	kindTooLarge = "too_large"
	kindCanceled = "canceled"
	kindInternal = "internal"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, requestID string, body errorBody) {
	writeJSON(w, status, map[string]interface{}{
		"request_id": requestID,
		"error":      body,
	})
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: malformed body: %v", errInvalidRequest, err)
	}
	return nil
}

// classify maps an invocation or decoding error to a status and body.
func classify(err error) (int, errorBody) {
	var se *value.ShapeError
	switch {
	case errors.As(err, &se):
		return http.StatusUnprocessableEntity, errorBody{
			Kind:     kindShape,
			Message:  err.Error(),
			Path:     se.Path,
			Expected: se.Expected,
			Actual:   se.Actual,
		}
	case errors.Is(err, module.ErrNotFound):
		return http.StatusNotFound, errorBody{Kind: kindNotFound, Message: err.Error()}
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, errorBody{Kind: kindTooLarge, Message: err.Error()}
	case errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest, errorBody{Kind: kindRequest, Message: err.Error()}
	case errors.Is(err, errCanceled):
		return http.StatusServiceUnavailable, errorBody{Kind: kindCanceled, Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Kind: kindInternal, Message: err.Error()}
	}
}
