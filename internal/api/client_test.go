package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
)

func TestClientSendsBearerToken(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "abc123")
	if _, err := client.Get(context.Background(), "/api/products/1", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "Bearer abc123" {
		t.Errorf("unexpected Authorization header: %q", got)
	}
}

func TestClientErrorMessageExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"cart is empty"}`))
		case "/text":
			http.Error(w, "Cart not found", http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Post(context.Background(), "/json", nil, map[string]any{})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "cart is empty" || apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected error: %+v", apiErr)
	}

	_, err = client.Post(context.Background(), "/text", nil, map[string]any{})
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Cart not found" {
		t.Errorf("expected raw text message, got %q", apiErr.Message)
	}

	_, err = client.Post(context.Background(), "/empty", nil, map[string]any{})
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message == "" {
		t.Error("expected status line fallback, got empty message")
	}
}

func TestClientRetriesGetOnServerError(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	payload, err := client.Get(context.Background(), "/api/orders/user/1", nil)
	if err != nil {
		t.Fatalf("get after retry: %v", err)
	}
	if ok, found := payload.Field("ok").Bool(); !found || !ok {
		t.Error("retry did not return the second response")
	}
	if hits.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", hits.Load())
	}
}

func TestClientDoesNotRetryGetOnClientError(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "Cart not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.Get(context.Background(), "/api/carts/user/1", nil); err == nil {
		t.Fatal("expected error")
	}
	if hits.Load() != 1 {
		t.Errorf("404 should not be retried, got %d requests", hits.Load())
	}
}

func TestClientDoesNotRetryMutations(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.Post(context.Background(), "/api/orders", nil, map[string]any{}); err == nil {
		t.Fatal("expected error")
	}
	if hits.Load() != 1 {
		t.Errorf("mutation was retried: %d requests", hits.Load())
	}
}

func TestClientRejectsNonJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>login page</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.Post(context.Background(), "/api/orders", nil, map[string]any{}); err == nil {
		t.Fatal("expected decode error for HTML body")
	}
}

func TestClientEmptyBodyIsNilPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	payload, err := client.Delete(context.Background(), "/api/cart-items/5")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !payload.IsNil() {
		t.Error("expected nil payload for empty body")
	}
}

func TestClientQueryEncoding(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("query")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	query := url.Values{"query": {"wireless headphones"}}
	if _, err := client.Get(context.Background(), "/api/products/search", query); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "wireless headphones" {
		t.Errorf("unexpected query: %q", got)
	}
}
