package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	prompt []Message
	reply  string
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	f.prompt = messages
	return f.reply, nil
}

func TestAgentRunWithoutURL(t *testing.T) {
	llm := &fakeCompleter{reply: "hi there"}
	agent := NewAgent(llm, NewFetcher())

	reply, err := agent.Run(context.Background(), []Message{
		{Role: "system", Content: "ignored"},
		{Role: "user", Content: "What is agent interoperability?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)

	require.Len(t, llm.prompt, 2)
	assert.Equal(t, "system", llm.prompt[0].Role)
	assert.Equal(t, SystemPrompt, llm.prompt[0].Content)
	assert.Equal(t, "What is agent interoperability?", llm.prompt[1].Content)
}

func TestAgentRunUsesLatestUserMessage(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	agent := NewAgent(llm, NewFetcher())

	_, err := agent.Run(context.Background(), []Message{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "an answer"},
		{Role: "user", Content: "second question"},
	})
	require.NoError(t, err)
	assert.Equal(t, "second question", llm.prompt[len(llm.prompt)-1].Content)
}

func TestAgentRunFetchesURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Protocol Notes</h1><p>Agents talk to agents.</p></body></html>"))
	}))
	defer page.Close()

	llm := &fakeCompleter{reply: "summary"}
	agent := NewAgent(llm, NewFetcher())

	_, err := agent.Run(context.Background(), []Message{
		{Role: "user", Content: "Summarize " + page.URL + " please"},
	})
	require.NoError(t, err)

	require.Len(t, llm.prompt, 3)
	fetched := llm.prompt[1].Content
	assert.Contains(t, fetched, "Fetched content from "+page.URL)
	assert.Contains(t, fetched, "Protocol Notes")
	assert.Contains(t, fetched, "Agents talk to agents.")
}

func TestAgentRunFetchErrorInline(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	llm := &fakeCompleter{reply: "degraded"}
	agent := NewAgent(llm, NewFetcher())

	reply, err := agent.Run(context.Background(), []Message{
		{Role: "user", Content: "look at " + down.URL},
	})
	require.NoError(t, err)
	assert.Equal(t, "degraded", reply)

	// the failure is surfaced to the model, not the caller
	require.Len(t, llm.prompt, 3)
	assert.Contains(t, llm.prompt[1].Content, "[fetch_error]")
}
