package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func chatResponse(content string) string {
	return `{"choices":[{"message":{"content":` + jsonQuote(content) + `}}]}`
}

func jsonQuote(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + replacer.Replace(s) + `"`
}

func newGenerator(url string) OpenAIGenerator {
	return OpenAIGenerator{BaseURL: url, Model: "test-model", APIKey: "key"}
}

func TestOpenAIGeneratorParsesFencedJSON(t *testing.T) {
	body := "```json\n[{\"title\":\"Build API\",\"description\":\"REST endpoints\",\"points\":8},{\"title\":\"Huge one\",\"description\":\"too big\",\"points\":40}]\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("missing auth header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatResponse(body)))
	}))
	defer srv.Close()

	stories, err := newGenerator(srv.URL).GenerateStories(context.Background(), "Epic", "desc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(stories))
	}
	if stories[0].Title != "Build API" || stories[0].Points != 8 {
		t.Fatalf("unexpected first story %+v", stories[0])
	}
	if stories[1].Points != 21 {
		t.Fatalf("points must clamp to 21, got %d", stories[1].Points)
	}
	if stories[0].ID == stories[1].ID {
		t.Fatalf("story ids must be unique")
	}
}

func TestOpenAIGeneratorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newGenerator(srv.URL).GenerateStories(context.Background(), "Epic", "desc")
	if err == nil || !strings.Contains(err.Error(), "http error") {
		t.Fatalf("expected a distinct http error, got %v", err)
	}
}

func TestOpenAIGeneratorMalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("here are your stories: 1) do stuff")))
	}))
	defer srv.Close()

	_, err := newGenerator(srv.URL).GenerateStories(context.Background(), "Epic", "desc")
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestOpenAIGeneratorEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newGenerator(srv.URL).GenerateStories(context.Background(), "Epic", "desc")
	if err == nil || !strings.Contains(err.Error(), "no content") {
		t.Fatalf("expected a missing-content error, got %v", err)
	}
}

func TestOpenAIGeneratorUnconfigured(t *testing.T) {
	_, err := OpenAIGenerator{}.GenerateStories(context.Background(), "Epic", "desc")
	if err == nil {
		t.Fatalf("expected configuration error")
	}
	_, err = OpenAIGenerator{BaseURL: "http://localhost:1"}.GenerateStories(context.Background(), "Epic", "desc")
	if err == nil {
		t.Fatalf("expected model configuration error")
	}
}
