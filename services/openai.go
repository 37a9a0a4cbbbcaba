package services

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator 使用 openai-go 的 chat completions 接口，关闭 SDK 自带重试
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewOpenAIGenerator(opts GeneratorOptions) *OpenAIGenerator {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(newHTTPClient(opts.Timeout)),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := openai.NewClient(reqOpts...)
	return &OpenAIGenerator{client: &client, model: opts.Model, temperature: opts.Temperature}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, failure := withFailureCapture(ctx)
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.temperature),
	})
	if err != nil {
		status, body := failure.get()
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			if status == 0 {
				status = apiErr.StatusCode
			}
			body += " " + apiErr.Message
		}
		return "", classifyFailure("openai", err, status, body)
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: "openai", Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}
