package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openaiChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		assert.InDelta(t, 0.2, req.Temperature, 1e-9)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"ok": true}`}},
			},
		})
	}))
	defer ts.Close()

	p := newOpenAIProvider(&Config{
		OpenAIAPIKey:  "test-key",
		OpenAIModel:   "gpt-4",
		OpenAIBaseURL: ts.URL,
		HTTPTimeoutS:  5,
	})

	out, err := p.Complete(context.Background(), CompletionRequest{Prompt: "hi", Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, out)
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	p := newOpenAIProvider(&Config{OpenAIAPIKey: "k", OpenAIModel: "gpt-4", OpenAIBaseURL: ts.URL, HTTPTimeoutS: 5})

	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	assert.Error(t, err)
}

func TestOllamaComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req ollamaChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.InDelta(t, 1.2, req.Options.Temperature, 1e-9)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": map[string]string{"content": "response text"},
		})
	}))
	defer ts.Close()

	p := newOllamaProvider(&Config{OllamaBaseURL: ts.URL, OllamaModel: "llama3.2", HTTPTimeoutS: 5})

	out, err := p.Complete(context.Background(), CompletionRequest{Prompt: "hi", Temperature: 1.2})
	require.NoError(t, err)
	assert.Equal(t, "response text", out)
}

func TestNewProviderSelection(t *testing.T) {
	p, err := NewProvider(&Config{Provider: ProviderOllama, OllamaBaseURL: "http://x", OllamaModel: "m", HTTPTimeoutS: 5})
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, p.Name())

	p, err = NewProvider(&Config{Provider: ProviderOpenAI, OpenAIAPIKey: "k", OpenAIModel: "m", OpenAIBaseURL: "http://x", HTTPTimeoutS: 5})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())

	_, err = NewProvider(&Config{Provider: "watsonx"})
	assert.Error(t, err)
}

func TestNewConfigDefaultsToOllama(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OLLAMA_HOST", "")

	cfg := NewConfig()
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://host.docker.internal:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama3.2", cfg.OllamaModel)
}
