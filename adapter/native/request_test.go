package native

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"SoundX/adapter"
)

func TestEnvelopeCodeIsDataNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Denied login: HTTP 200, envelope code 401.
		fmt.Fprint(w, `{"code":401,"message":"Access denied","data":null}`)
	}))
	defer ts.Close()

	a := New(ts.URL, "")
	res, err := a.Auth().Login(context.Background(), adapter.Credentials{Username: "u", Password: "wrong"})
	if err != nil {
		t.Fatalf("Login returned error for a denied attempt: %v", err)
	}
	if res.Code != 401 {
		t.Errorf("code = %d, want 401", res.Code)
	}
	if res.Message != "Access denied" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestHTTPFailureIsProtocolError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"database exploded"}`)
	}))
	defer ts.Close()

	_, err := get[string](context.Background(), NewClient(ts.URL, ""), "/hello", nil)
	var perr *adapter.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *adapter.ProtocolError", err)
	}
	if perr.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", perr.Code)
	}
	if perr.Message != "database exploded" {
		t.Errorf("message = %q, want the server's message", perr.Message)
	}
}

func TestUnreachableIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(ts.URL, "")
	ts.Close()

	_, err := get[string](context.Background(), c, "/hello", nil)
	var terr *adapter.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *adapter.TransportError", err)
	}
}

func TestBearerHeader(t *testing.T) {
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"code":200,"message":"ok","data":"hello"}`)
	}))
	defer ts.Close()

	a := New(ts.URL, "session-token")
	if _, err := a.Auth().Hello(context.Background()); err != nil {
		t.Fatalf("Hello: %v", err)
	}
	if auth != "Bearer session-token" {
		t.Errorf("Authorization = %q, want Bearer session-token", auth)
	}
}

func TestAnonymousRequestOmitsAuthHeader(t *testing.T) {
	var sawHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		fmt.Fprint(w, `{"code":200,"message":"ok","data":"hello"}`)
	}))
	defer ts.Close()

	a := New(ts.URL, "")
	if _, err := a.Auth().Hello(context.Background()); err != nil {
		t.Fatalf("Hello: %v", err)
	}
	if sawHeader {
		t.Error("anonymous request must not carry an Authorization header")
	}
}

func TestCheckSwallowsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := New(ts.URL, "")
	ts.Close()

	res, err := a.Auth().Check(context.Background())
	if err != nil {
		t.Fatalf("Check must not error on an unreachable backend: %v", err)
	}
	if res.Data {
		t.Error("Check = true against an unreachable backend")
	}
}
