package reqbody

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddleware_ExposesBodyThroughContext(t *testing.T) {
	var got []byte
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/rest/whiskys", strings.NewReader(`{"name":"Oban"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if string(got) != `{"name":"Oban"}` {
		t.Fatalf("materialized body: %q", got)
	}
}

func TestMiddleware_ResetsBodyForDownstreamReaders(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil || string(b) != "payload" {
			t.Fatalf("replayed body: %q err=%v", b, err)
		}
	}))

	req := httptest.NewRequest("POST", "/rest/whiskys", strings.NewReader("payload"))
	h.ServeHTTP(httptest.NewRecorder(), req)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestMiddleware_ReadFailureIs400(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the body cannot be read")
	}))

	req := httptest.NewRequest("POST", "/rest/whiskys", io.NopCloser(brokenReader{}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
	if rr.Body.String() != "unable to read request body" {
		t.Fatalf("body: %q", rr.Body.String())
	}
}

func TestFromContext_NilWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if b := FromContext(req.Context()); b != nil {
		t.Fatalf("expected nil, got %q", b)
	}
}
