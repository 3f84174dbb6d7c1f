package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func WriteJSON(rw http.ResponseWriter, status int, v interface{}) error {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("httputil.WriteJSON: could not encode response: %w", err)
	}

	rw.Header().Set("content-type", "application/json; charset=utf-8")
	rw.WriteHeader(status)

	if _, err := rw.Write(d); err != nil {
		return fmt.Errorf("httputil.WriteJSON: could not write response: %w", err)
	}

	return nil
}

func WriteText(rw http.ResponseWriter, status int, s string) error {
	rw.Header().Set("content-type", "text/plain; charset=utf-8")
	rw.WriteHeader(status)

	if _, err := io.WriteString(rw, s); err != nil {
		return fmt.Errorf("httputil.WriteText: %w", err)
	}

	return nil
}

func NoContent(rw http.ResponseWriter) {
	rw.WriteHeader(http.StatusNoContent)
}

// NotFound writes a 404 with an empty body.
func NotFound(rw http.ResponseWriter, r *http.Request) {
	rw.WriteHeader(http.StatusNotFound)
}

// ReadBody reads at most limit bytes of the request body. A limit of zero
// or less means no limit.
func ReadBody(rw http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(rw, r.Body, limit)
	}

	d, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("httputil.ReadBody: %w", err)
	}

	return d, nil
}
