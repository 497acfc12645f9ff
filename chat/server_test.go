package chat

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	app := NewServer(NewAgent(&fakeCompleter{}, NewFetcher()))

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestChatEndpoint(t *testing.T) {
	app := NewServer(NewAgent(&fakeCompleter{reply: "an answer"}, NewFetcher()))

	payload, _ := json.Marshal(chatRequest{Messages: []Message{
		{Role: "user", Content: "a question"},
	}})
	req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "an answer", out.Reply)
}

func TestChatEndpointBadPayload(t *testing.T) {
	app := NewServer(NewAgent(&fakeCompleter{}, NewFetcher()))

	req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
