package sequencer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestSendUserMessage(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jsonrpc" {
			t.Errorf("path = %s, want /jsonrpc", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL)
	if err := c.SendUserMessage(context.Background(), SeverityWarning, "conditions reloaded"); err != nil {
		t.Fatalf("SendUserMessage failed: %v", err)
	}

	if got.Method != "user_message" {
		t.Errorf("method = %q, want user_message", got.Method)
	}
	if got.Severity != "2" {
		t.Errorf("severity = %q, want 2", got.Severity)
	}
	if got.Params.Content != "conditions reloaded" {
		t.Errorf("content = %q", got.Params.Content)
	}
}

func TestSendUserMessageHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL)
	if err := c.SendUserMessage(context.Background(), SeverityInfo, "hi"); err == nil {
		t.Error("expected error from 400 response")
	}
}

// clientFor builds a Client pointed at the test server.
func clientFor(t *testing.T, url string) *Client {
	t.Helper()
	hostPort := strings.TrimPrefix(url, "http://")
	host, portStr, ok := strings.Cut(hostPort, ":")
	if !ok {
		t.Fatalf("unexpected test server URL %s", url)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(host, port)
	c.retryDelay = time.Millisecond
	return c
}
