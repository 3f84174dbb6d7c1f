package ctxrequestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func serve(r *http.Request) (*httptest.ResponseRecorder, string) {
	var seen string

	rw := httptest.NewRecorder()
	Register()(rw, r, func(rw http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	})

	return rw, seen
}

func TestRegisterGeneratesID(t *testing.T) {
	a := assert.New(t)

	rw, seen := serve(httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	a.NoError(err)
	a.Equal(seen, rw.Header().Get(HeaderName))
}

func TestRegisterKeepsIncomingID(t *testing.T) {
	a := assert.New(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderName, "abc-123")

	rw, seen := serve(r)

	a.Equal("abc-123", seen)
	a.Equal("abc-123", rw.Header().Get(HeaderName))
}
