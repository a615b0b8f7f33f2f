package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspager/pkg/config"
	"github.com/umputun/newspager/pkg/domain"
)

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{Temperature: 0.2, MaxTokens: 500, Timeout: 5 * time.Second}
}

func TestDigester_Digest(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Content: "\nTiny LLM runtime in 2k lines (245 points) https://example.com/tiny-llm\n",
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	provider := config.Provider{
		Name:     "openai",
		APIKey:   "test-key",
		Endpoint: server.URL + "/v1",
		Model:    "gpt-4o-mini",
	}
	digester := NewDigester(provider, testLLMConfig(), "https://news.ycombinator.com")

	stories := []domain.Story{
		{Title: "Tiny LLM runtime in 2k lines", Link: "https://example.com/tiny-llm", Score: "245 points"},
		{Title: "World cup final tonight", Link: "https://example.com/cup", Score: "900 points"},
	}

	digest, err := digester.Digest(context.Background(), stories)
	require.NoError(t, err)
	assert.Equal(t, "Tiny LLM runtime in 2k lines (245 points) https://example.com/tiny-llm", digest,
		"reply comes back trimmed")

	// request carried the configured model parameters
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.InEpsilon(t, 0.2, gotReq.Temperature, 0.001)
	assert.Equal(t, 500, gotReq.MaxTokens)

	// system prompt states the rules, user message carries the stories
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, NoUpdates)
	assert.Contains(t, gotReq.Messages[0].Content, "hey, check this out...")
	assert.Contains(t, gotReq.Messages[0].Content, "at most 3 matching stories")
	assert.Equal(t, openai.ChatMessageRoleUser, gotReq.Messages[1].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "1. Tiny LLM runtime in 2k lines (245 points) - https://example.com/tiny-llm")
	assert.Contains(t, gotReq.Messages[1].Content, "2. World cup final tonight (900 points) - https://example.com/cup")
}

func TestDigester_Digest_EmptyList(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: NoUpdates}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	provider := config.Provider{APIKey: "test-key", Endpoint: server.URL + "/v1", Model: "gpt-4o-mini"}
	digester := NewDigester(provider, testLLMConfig(), "https://news.ycombinator.com")

	// an empty page still goes to the model, the reply decides
	digest, err := digester.Digest(context.Background(), []domain.Story{})
	require.NoError(t, err)
	assert.Equal(t, NoUpdates, digest)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "the list is empty today", gotReq.Messages[1].Content)
}

func TestDigester_Digest_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(openai.ChatCompletionResponse{}))
	}))
	defer server.Close()

	provider := config.Provider{APIKey: "test-key", Endpoint: server.URL + "/v1", Model: "gpt-4o-mini"}
	digester := NewDigester(provider, testLLMConfig(), "https://news.ycombinator.com")

	digest, err := digester.Digest(context.Background(), []domain.Story{{Title: "Anything"}})
	require.NoError(t, err, "empty choice list is not an error")
	assert.Empty(t, digest)
}

func TestDigester_Digest_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := config.Provider{APIKey: "test-key", Endpoint: server.URL + "/v1", Model: "gpt-4o-mini"}
	digester := NewDigester(provider, testLLMConfig(), "https://news.ycombinator.com")

	_, err := digester.Digest(context.Background(), []domain.Story{{Title: "Anything"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}

func TestDigester_BuildPrompt(t *testing.T) {
	provider := config.Provider{APIKey: "k", Model: "m"}
	digester := NewDigester(provider, testLLMConfig(), "https://news.ycombinator.com")

	stories := []domain.Story{
		{Title: "Postgres 18 released", Link: "https://example.com/pg18", Score: "512 points"},
		{Title: "Ask HN: favorite debugger?", Link: "item?id=42", Score: "77 points"},
		{Title: "Scoreless story", Link: "https://example.com/ns"},
		{Title: "With excerpt", Link: "https://example.com/ex", Score: "10 points", Excerpt: "first paragraph of the article"},
	}

	prompt := digester.buildPrompt(stories)

	assert.Contains(t, prompt, "1. Postgres 18 released (512 points) - https://example.com/pg18")
	assert.Contains(t, prompt, "2. Ask HN: favorite debugger? (77 points) - https://news.ycombinator.com/item?id=42",
		"relative links resolve against the page base")
	assert.Contains(t, prompt, "3. Scoreless story - https://example.com/ns")
	assert.NotContains(t, prompt, "Scoreless story (")
	assert.Contains(t, prompt, "   excerpt: first paragraph of the article")

	// serialization is stable, same list in means same prompt out
	assert.Equal(t, prompt, digester.buildPrompt(stories))

	// ranking order is positional, not alphabetical
	assert.Less(t, strings.Index(prompt, "Postgres"), strings.Index(prompt, "debugger"))
}
