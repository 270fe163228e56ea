package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRouterClient_Generate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "choices": [
    {"message": {"role": "assistant", "content": "Kitchen Sink Stir-Fry"}}
  ]
}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(ts.URL, "test-key", "test-model")
	content, err := client.Generate(context.Background(), "make something")

	assert.NoError(t, err)
	assert.Equal(t, "Kitchen Sink Stir-Fry", content)
}

func TestOpenRouterClient_GenerateErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream unavailable"}}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(ts.URL, "test-key", "test-model")
	_, err := client.Generate(context.Background(), "make something")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestOpenRouterClient_GenerateEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(ts.URL, "test-key", "test-model")
	_, err := client.Generate(context.Background(), "make something")

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
