// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcribe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIProviderTranscribe(t *testing.T) {
	var captured chatRequest
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"# Chapter One\n\nText."}}]}`)
	}))
	defer ts.Close()

	old := openAIAPIURL
	openAIAPIURL = ts.URL
	defer func() { openAIAPIURL = old }()

	p := &OpenAIProvider{APIKey: "sk-test", Model: "gpt-4o", Client: ts.Client()}
	image := []byte("jpeg bytes")

	text, err := p.Transcribe(context.Background(), image)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "# Chapter One\n\nText." {
		t.Errorf("text = %q, want first choice content", text)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if captured.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", captured.Model)
	}
	if captured.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", captured.Temperature)
	}
	if captured.MaxTokens != defaultMaxTokens {
		t.Errorf("max_tokens = %d, want %d", captured.MaxTokens, defaultMaxTokens)
	}

	if len(captured.Messages) != 1 {
		t.Fatalf("len(messages) = %d, want 1", len(captured.Messages))
	}
	msg := captured.Messages[0]
	if msg.Role != "user" {
		t.Errorf("role = %q, want user", msg.Role)
	}
	if len(msg.Content) != 2 {
		t.Fatalf("len(content) = %d, want instruction + image", len(msg.Content))
	}
	if msg.Content[0].Type != "text" || !strings.Contains(msg.Content[0].Text, "markdown") {
		t.Errorf("first block should carry the instruction, got %+v", msg.Content[0])
	}
	wantURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
	if msg.Content[1].Type != "image_url" || msg.Content[1].ImageURL == nil ||
		msg.Content[1].ImageURL.URL != wantURL {
		t.Errorf("second block should carry the data URI, got %+v", msg.Content[1])
	}
}

func TestOpenAIProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "non-200 status",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"rate limit"}}`,
			wantErr: "429",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "no choices",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{"choices":`,
			wantErr: "decoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			old := openAIAPIURL
			openAIAPIURL = ts.URL
			defer func() { openAIAPIURL = old }()

			p := &OpenAIProvider{APIKey: "sk-test", Model: "gpt-4o", Client: ts.Client()}
			_, err := p.Transcribe(context.Background(), []byte("img"))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
