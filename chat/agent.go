// Package chat implements the conversational wrapper around a hosted LLM:
// it forwards a message list to the model and, when the user mentions a
// URL, fetches and prepends that page's text as context.
package chat

import (
	"context"
	"fmt"
	"regexp"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

type Agent struct {
	llm     Completer
	fetcher *Fetcher
}

func NewAgent(llm Completer, fetcher *Fetcher) *Agent {
	return &Agent{llm: llm, fetcher: fetcher}
}

// Run answers the latest user message. The first URL in that message, if
// any, is fetched and its text handed to the model before the question.
func (a *Agent) Run(ctx context.Context, messages []Message) (string, error) {
	userText := ""
	for _, m := range messages {
		if m.Role == "user" && m.Content != "" {
			userText = m.Content
		}
	}

	prompt := []Message{{Role: "system", Content: SystemPrompt}}

	if url := urlPattern.FindString(userText); url != "" {
		fetched := a.fetcher.FetchAndExtract(url)
		if fetched != "" {
			prompt = append(prompt, Message{
				Role:    "user",
				Content: fmt.Sprintf("Fetched content from %s:\n%s", url, fetched),
			})
		}
	}

	prompt = append(prompt, Message{Role: "user", Content: userText})

	return a.llm.Complete(ctx, prompt)
}
