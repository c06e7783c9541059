package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yishak-cs/calboost/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, logger.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	t.Parallel()
	if _, err := NewClient(Config{APIKey: "  "}, logger.Nop()); err == nil {
		t.Fatalf("expected an error without api key")
	}
}

func TestCompleteJSONSendsChatRequest(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"foods\":[]}"}}]}`))
	})

	out, err := c.CompleteJSON(context.Background(), []Message{
		SystemMessage("sys"),
		UserImageMessage("describe", "data:image/png;base64,AAAA"),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `{"foods":[]}` {
		t.Fatalf("unexpected content %q", out)
	}
	if got["model"] != "gpt-4o" {
		t.Fatalf("default model not sent: %v", got["model"])
	}
	if rf, _ := got["response_format"].(map[string]any); rf["type"] != "json_object" {
		t.Fatalf("json response format not requested: %v", got["response_format"])
	}
	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	parts, _ := msgs[1].(map[string]any)["content"].([]any)
	if len(parts) != 2 || parts[1].(map[string]any)["type"] != "image_url" {
		t.Fatalf("image part missing: %v", msgs[1])
	}
}

func TestCompleteJSONStatusError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	})

	_, err := c.CompleteJSON(context.Background(), []Message{UserMessage("x")})
	var se *StatusError
	if !errors.As(err, &se) || se.HTTPStatusCode() != http.StatusTooManyRequests {
		t.Fatalf("expected 429 StatusError, got %v", err)
	}
}

func TestCompleteJSONEmptyResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  "}}]}`))
	})

	if _, err := c.CompleteJSON(context.Background(), []Message{UserMessage("x")}); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
