package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poppy-paws/internal/domain/dogs"
)

// El request va con isSponsored y la respuesta vuelve con
// is_sponsored; el cliente traduce en ambas direcciones.
func TestClient_WireTranslation(t *testing.T) {
	var gotBody []byte
	var gotAuth, gotReqID string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/dogs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "name": "Rocky", "is_sponsored": true}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, "session-token")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	created, err := c.CreateDog(context.Background(), dogs.Dog{Name: "Rocky", IsSponsored: true})
	if err != nil {
		t.Fatalf("CreateDog error: %v", err)
	}

	if !strings.Contains(string(gotBody), `"isSponsored":true`) {
		t.Fatalf("request must carry isSponsored, body=%s", string(gotBody))
	}
	if strings.Contains(string(gotBody), "is_sponsored") {
		t.Fatalf("request must not carry is_sponsored, body=%s", string(gotBody))
	}
	if gotAuth != "Bearer session-token" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("expected X-Request-ID header")
	}

	if created.ID != 7 || !created.IsSponsored {
		t.Fatalf("response translation failed: %#v", created)
	}
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, "")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if _, err := c.ListDogs(context.Background()); err != nil {
		t.Fatalf("ListDogs error: %v", err)
	}
	if sawAuth {
		t.Fatalf("anonymous client must not send Authorization")
	}
}

func TestClient_MapsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"dog not found","code":"not_found"}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, "")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = c.GetDog(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Login(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "hunter2" {
			t.Errorf("expected password in body, got %#v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"signed-token"}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, "")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	tok, err := c.Login(context.Background(), "hunter2")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if tok != "signed-token" {
		t.Fatalf("expected signed-token, got %q", tok)
	}
}
