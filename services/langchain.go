package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// LangchainGenerator 通过 langchaingo 调用 OpenAI 兼容接口（默认指向 Gemini）
type LangchainGenerator struct {
	llm         llms.Model
	temperature float64
}

func NewLangchainGenerator(opts GeneratorOptions) (*LangchainGenerator, error) {
	llm, err := openai.New(
		openai.WithToken(opts.APIKey),
		openai.WithBaseURL(opts.BaseURL),
		openai.WithModel(opts.Model),
		openai.WithHTTPClient(newHTTPClient(opts.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain client: %w", err)
	}
	return &LangchainGenerator{llm: llm, temperature: opts.Temperature}, nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	ctx, failure := withFailureCapture(ctx)
	resp, err := g.llm.GenerateContent(ctx, messages, llms.WithTemperature(g.temperature))
	if err != nil {
		status, body := failure.get()
		return "", classifyFailure("langchain", err, status, body)
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: "langchain", Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Content, nil
}
