package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SoundX/adapter"
	"SoundX/adapter/native"
	"SoundX/adapter/subsonic"
	"SoundX/store"
)

// unsignedToken builds a JWT-shaped token with the given claims and an empty
// signature. SessionExpired decodes without verifying, so this is enough.
func unsignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return fmt.Sprintf("%s.%s.", enc.EncodeToString(header), enc.EncodeToString(payload))
}

func TestSessionExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour).Unix()
	future := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired", unsignedToken(t, map[string]any{"exp": past}), true},
		{"valid", unsignedToken(t, map[string]any{"exp": future}), false},
		{"no exp claim", unsignedToken(t, map[string]any{"sub": "u1"}), false},
		{"empty token", "", false},
		{"garbage", "not-a-jwt", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SessionExpired(c.token); got != c.want {
				t.Errorf("SessionExpired = %v, want %v", got, c.want)
			}
		})
	}
}

func TestLoginTransportFailurePersistsNothing(t *testing.T) {
	// Point the binding at a server that is down.
	Bind(native.New("http://127.0.0.1:1", ""))

	_, err := Login(context.Background(), adapter.Credentials{Username: "u", Password: "p"})
	var terr *adapter.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *adapter.TransportError", err)
	}

	// Without a store connection there is nowhere to write; the call must not
	// have tried to connect one.
	if store.Configured() {
		t.Error("login failure must not leave a store connection behind")
	}
}

// Login fills in the device identity before the request goes out, so the
// backend can tell installs apart even when the caller omits both fields.
func TestLoginSendsDeviceIdentity(t *testing.T) {
	var body map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/login" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		fmt.Fprint(w, `{"code":200,"message":"ok","data":{"id":"u1","username":"u","token":"tok"}}`)
	}))
	defer ts.Close()

	Bind(native.New(ts.URL, ""))
	res, err := Login(context.Background(), adapter.Credentials{Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Code != 200 {
		t.Fatalf("code = %d, want 200", res.Code)
	}

	if body["deviceName"] == "" {
		t.Error("login body is missing deviceName")
	}
	if body["deviceId"] == "" {
		t.Error("login body is missing deviceId")
	}
}

func TestBindingInfo(t *testing.T) {
	Bind(native.New("http://api.example", "session-token"))
	baseURL, source, token := BindingInfo()
	if baseURL != "http://api.example" || source != "native" || token != "session-token" {
		t.Errorf("native binding info = (%q, %q, %q)", baseURL, source, token)
	}

	Bind(subsonic.New(subsonic.Config{BaseURL: "http://navi.example", Username: "u", Password: "p"}))
	baseURL, source, token = BindingInfo()
	if baseURL != "http://navi.example" || source != "subsonic" {
		t.Errorf("subsonic binding info = (%q, %q)", baseURL, source)
	}
	// Subsonic stream URLs sign themselves; no bearer token leaks out.
	if token != "" {
		t.Errorf("subsonic binding leaked token %q", token)
	}
}

func TestCurrentReflectsSwap(t *testing.T) {
	Bind(native.New("http://a", ""))
	if got := Current().Source(); got != "native" {
		t.Fatalf("source = %q, want native", got)
	}
	Bind(subsonic.New(subsonic.Config{BaseURL: "http://b"}))
	if got := Current().Source(); got != "subsonic" {
		t.Errorf("source = %q, want subsonic", got)
	}
}
