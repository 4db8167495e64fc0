// Package gtx implements the Translator port against the public Google
// web-translate endpoint, matching the request shape the translate widget
// itself uses (client=gtx). No API key is required.
package gtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config controls the web-translate request.
type Config struct {
	BaseURL    string
	SourceLang string
	TargetLang string
	HTTPClient *http.Client
}

// Client implements ports.Translator.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://translate.googleapis.com/translate_a/single"
	}
	if cfg.SourceLang == "" {
		cfg.SourceLang = "zh-CN"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "ja"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Translate requests a translation for text. The response payload is a
// positional JSON array; the translated sentence segments live in the
// first element as [translated, source, ...] tuples.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", c.cfg.SourceLang)
	query.Set("tl", c.cfg.TargetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	return parseSegments(body)
}

func parseSegments(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("unexpected translate payload: %w", err)
	}
	if len(payload) == 0 {
		return "", errors.New("empty translate payload")
	}

	var groups [][]any
	if err := json.Unmarshal(payload[0], &groups); err != nil {
		return "", fmt.Errorf("unexpected segment payload: %w", err)
	}

	var sb strings.Builder
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		segment, ok := group[0].(string)
		if !ok {
			continue
		}
		sb.WriteString(segment)
	}

	out := sb.String()
	if out == "" {
		return "", errors.New("translate response contained no segments")
	}
	return out, nil
}
