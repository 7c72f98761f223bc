package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log, _ := logger.New("test")
	c, err := NewClient(context.Background(), log, Config{APIKey: "k", Endpoint: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	log, _ := logger.New("test")
	if _, err := NewClient(context.Background(), log, Config{APIKey: "  "}); err == nil {
		t.Fatalf("expected error for blank key")
	}
}

func TestGenerateTextSendsSystemInstruction(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/v1beta/models/"+DefaultModel+":generateContent" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Goog-Api-Key") != "k" {
			t.Errorf("api key not sent")
		}
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		sys, _ := json.Marshal(body["systemInstruction"])
		if !strings.Contains(string(sys), "GPSC") {
			t.Errorf("system instruction missing: %s", sys)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Read "},{"text":"Laxmikanth."}]}}]}`)
	})

	got, err := c.GenerateText(context.Background(), "Provide helpful GPSC advice.", "How do I start polity?")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "Read Laxmikanth." {
		t.Fatalf("unexpected text: %q", got)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

func TestGenerateTextUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded"}}`)
	})
	_, err := c.GenerateText(context.Background(), "", "hi")
	var herr *HTTPError
	if !errors.As(err, &herr) || herr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
	if got := statusFromErr(err); got != "429" {
		t.Fatalf("statusFromErr: got %q", got)
	}
}

func TestStatusFromErr(t *testing.T) {
	if got := statusFromErr(context.Canceled); got != "canceled" {
		t.Fatalf("canceled: got %q", got)
	}
	if got := statusFromErr(errors.New("boom")); got != "error" {
		t.Fatalf("plain: got %q", got)
	}
}

func TestNewClientDefaultsEndpoint(t *testing.T) {
	log, _ := logger.New("test")
	c, err := NewClient(context.Background(), log, Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	impl := c.(*client)
	if impl.baseURL != DefaultEndpoint || impl.model != DefaultModel {
		t.Fatalf("unexpected defaults: %s %s", impl.baseURL, impl.model)
	}
}

func TestGenerateTextNoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	})
	_, err := c.GenerateText(context.Background(), "", "hi")
	if err == nil || !strings.Contains(err.Error(), "SAFETY") {
		t.Fatalf("expected blocked error, got %v", err)
	}
}
