package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newspager/pkg/config"
	"github.com/umputun/newspager/pkg/domain"
)

// Digester turns the scraped story list into a short text-message digest
// using an OpenAI-compatible chat model
type Digester struct {
	client   *openai.Client
	provider config.Provider
	cfg      config.LLMConfig
	base     *url.URL
}

// NewDigester creates a digester talking to the given provider. Relative
// story links resolve against baseURL before they reach the model.
func NewDigester(provider config.Provider, cfg config.LLMConfig, baseURL string) *Digester {
	clientConfig := openai.DefaultConfig(provider.APIKey)
	if provider.Endpoint != "" {
		clientConfig.BaseURL = provider.Endpoint
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		lgr.Printf("[WARN] can't parse base URL %q, relative links won't resolve: %v", baseURL, err)
		base = nil
	}

	return &Digester{
		client:   openai.NewClientWithConfig(clientConfig),
		provider: provider,
		cfg:      cfg,
		base:     base,
	}
}

// system prompt for story selection, the no-updates line must stay in sync
// with NoUpdates
const systemPrompt = `You are a news filter for a busy software engineer.
You get the current front page stories of a tech news site, ranked top to bottom.

Scan the list only for stories about AI, machine learning, LLMs, or software
engineering. Ignore everything else no matter how popular it is.

When anything qualifies, reply with a short casual digest:
- start the message with "hey, check this out..."
- include at most 3 matching stories
- for each story give its title in lowercase, the link, the score, and one or
  two sentences on why it is relevant
- plain text only, no markdown, the reply goes into a single text message

If nothing on the page qualifies, reply with exactly:
no ai or dev updates right now!`

// Digest asks the model to pick and summarize relevant stories. The reply
// comes back trimmed; an empty choice list from the provider maps to an empty
// digest. Request failures are returned to the caller, the round is decided
// there.
func (d *Digester) Digest(ctx context.Context, stories []domain.Story) (string, error) {
	prompt := d.buildPrompt(stories)

	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       d.provider.Model,
		Temperature: float32(d.cfg.Temperature),
		MaxTokens:   d.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	lgr.Printf("[DEBUG] sending %d stories to %s model %s", len(stories), d.provider.Name, d.provider.Model)
	resp, err := d.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	// some compatible providers return an empty choice list instead of an
	// error, treat that as a blank digest
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildPrompt serializes stories for the model. The same list always yields
// the same prompt.
func (d *Digester) buildPrompt(stories []domain.Story) string {
	if len(stories) == 0 {
		return "the list is empty today"
	}

	var sb strings.Builder
	sb.WriteString("Front page stories, top to bottom:\n\n")
	for i, story := range stories {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, story.Title))
		if story.Score != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", story.Score))
		}
		if link := d.resolve(story.Link); link != "" {
			sb.WriteString(" - " + link)
		}
		sb.WriteString("\n")
		if story.Excerpt != "" {
			sb.WriteString(fmt.Sprintf("   excerpt: %s\n", story.Excerpt))
		}
	}
	return sb.String()
}

// resolve turns a story link absolute against the page base, empty stays empty
func (d *Digester) resolve(link string) string {
	if link == "" || d.base == nil {
		return link
	}
	u, err := d.base.Parse(link)
	if err != nil {
		return link
	}
	return u.String()
}
