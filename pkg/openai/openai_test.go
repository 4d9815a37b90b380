package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inbox-triage/pkg/openai"
)

func TestNew(t *testing.T) {
	_, err := openai.New(openai.Config{})
	if err == nil {
		t.Fatalf("expected error when API key is missing")
	}

	client, err := openai.New(openai.Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatalf("expected client")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected auth header %q", auth)
		}

		var req openai.Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "gpt-3.5-turbo" {
			t.Errorf("expected default model, got %q", req.Model)
		}

		json.NewEncoder(w).Encode(openai.Response{
			Choices: []openai.Choice{
				{Message: openai.Message{Role: "assistant", Content: `{"hasAction":true}`}},
			},
		})
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != `{"hasAction":true}` {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "sk-bad", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &openai.Request{})
	if err == nil {
		t.Fatalf("expected error for 401 response")
	}
}
