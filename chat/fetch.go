package chat

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/go-resty/resty/v2"
)

const (
	fetchTimeout    = 20 * time.Second
	maxFetchedChars = 15000 // cap to avoid huge prompts
)

// Fetcher retrieves a page and reduces it to readable text.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: resty.New().SetTimeout(fetchTimeout),
	}
}

// FetchAndExtract downloads the URL and strips the HTML down to visible
// text, truncated to maxFetchedChars. Failures never propagate; they come
// back as an inline "[fetch_error] ..." string the model can see.
func (f *Fetcher) FetchAndExtract(url string) string {
	resp, err := f.client.R().Get(url)
	if err != nil {
		return fmt.Sprintf("[fetch_error] %v", err)
	}
	if resp.IsError() {
		return fmt.Sprintf("[fetch_error] unexpected status %d for %s", resp.StatusCode(), url)
	}

	text, err := htmltomarkdown.ConvertString(string(resp.Body()))
	if err != nil {
		return fmt.Sprintf("[fetch_error] %v", err)
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > maxFetchedChars {
		// cap by characters, not bytes; a multibyte page must not be cut mid-rune
		text = string([]rune(text)[:maxFetchedChars])
	}
	return text
}
