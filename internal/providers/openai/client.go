// Package openai implements the Translator port on top of the OpenAI
// Responses API. It is an optional engine for users who want an LLM to
// handle register and phrasing instead of the web-translate endpoint.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const translationInstructions = "You are a Chinese to Japanese translator. " +
	"Translate the user's Simplified Chinese text into natural Japanese. " +
	"Reply with the translation only, no commentary."

// Config controls the LLM translation engine. BaseURL and HTTPClient
// override the API defaults, mainly for tests.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements ports.Translator.
type Client struct {
	client openai.Client
	model  openai.ChatModel
}

func NewClient(cfg Config) *Client {
	model := openai.ChatModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.ChatModelGPT4oMini
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	instructions := responses.ResponseInputMessageContentListParam{
		{
			OfInputText: &responses.ResponseInputTextParam{Text: translationInstructions},
		},
	}
	user := responses.ResponseInputMessageContentListParam{
		{
			OfInputText: &responses.ResponseInputTextParam{Text: text},
		},
	}

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(instructions, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(user, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(resp.OutputText())
	if out == "" {
		return "", errors.New("model returned an empty translation")
	}
	return out, nil
}
