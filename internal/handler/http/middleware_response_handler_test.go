package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResponseWriter_RecordsStatusAndSize verifies that the decorator captures
// the status code and the cumulative body size.
func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.Write([]byte("hello "))
	rw.Write([]byte("world"))

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, len("hello world"), rw.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestResponseWriter_ImplicitWriteHeader verifies that a Write without a prior
// WriteHeader records 200 OK.
func TestResponseWriter_ImplicitWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("body"))

	assert.Equal(t, http.StatusOK, rw.status)
}

// TestResponseWriter_SecondWriteHeaderIgnored verifies that only the first
// WriteHeader call is forwarded.
func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
