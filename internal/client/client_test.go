package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestEncodeQueryBracketNotation(t *testing.T) {
	got := EncodeQuery(map[string]any{
		"locale": "en",
		"filters": map[string]any{
			"slug": map[string]any{"$eq": "lucky-palace"},
		},
		"populate": []string{"logo", "bonuses"},
	})

	decoded, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("failed to parse encoded query: %v", err)
	}
	if decoded.Get("locale") != "en" {
		t.Fatalf("missing locale: %q", got)
	}
	if decoded.Get("filters[slug][$eq]") != "lucky-palace" {
		t.Fatalf("missing bracket filter: %q", got)
	}
	if decoded.Get("populate[0]") != "logo" || decoded.Get("populate[1]") != "bonuses" {
		t.Fatalf("missing indexed populate: %q", got)
	}
}

func TestEncodeQueryEmpty(t *testing.T) {
	if got := EncodeQuery(nil); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}

func TestFetchInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token", nil)
	envelope := c.Fetch(context.Background(), "/api/articles", nil)

	if envelope.Error != nil {
		t.Fatalf("unexpected error: %+v", envelope.Error)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestFetchNon2xxReturnsErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"data": null, "error": {"status": 400, "message": "invalid bonus type"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	envelope := c.Fetch(context.Background(), "/api/bonuses/type/mystery", nil)

	if envelope.Error == nil {
		t.Fatal("expected error envelope")
	}
	if envelope.Error.Status != 400 || envelope.Error.Message != "invalid bonus type" {
		t.Fatalf("unexpected error: %+v", envelope.Error)
	}
	if envelope.Data != nil {
		t.Fatal("expected data to be cleared on error")
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "", nil)
	envelope := c.Fetch(context.Background(), "/api/articles", nil)

	if envelope.Error == nil || envelope.Error.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 envelope, got %+v", envelope.Error)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	envelope := c.Fetch(context.Background(), "/api/articles", nil)

	if envelope.Error == nil || envelope.Error.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 envelope, got %+v", envelope.Error)
	}
}
