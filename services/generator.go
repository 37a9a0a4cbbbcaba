package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"MindMirrorGo/config"
)

// Generator 调用生成模型，返回原始文本
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	ErrUnauthorized  = errors.New("generation: unauthorized")
	ErrRateLimited   = errors.New("generation: rate limited")
	ErrModelNotFound = errors.New("generation: model not found")
	ErrEmptyResponse = errors.New("generation: empty response")
)

// GenerationError 上游调用失败，Kind 为上面的哨兵错误之一或 nil（普通失败）
type GenerationError struct {
	Provider   string
	StatusCode int
	Kind       error
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s generation failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Err}
}

// kindForStatus 状态码到错误类型
func kindForStatus(status int) error {
	switch status {
	case 401, 403:
		return ErrUnauthorized
	case 429:
		return ErrRateLimited
	case 404:
		return ErrModelNotFound
	default:
		return nil
	}
}

var statusCodePattern = regexp.MustCompile(`status code:? (\d{3})`)

// classifyFailure 先看状态码；状态码不能说明问题时（Gemini 用 400 表示密钥无效）再看响应体和错误文本
func classifyFailure(provider string, err error, status int, body string) *GenerationError {
	genErr := &GenerationError{Provider: provider, StatusCode: status, Err: err}
	msg := strings.ToLower(err.Error() + " " + body)
	if genErr.StatusCode == 0 {
		if m := statusCodePattern.FindStringSubmatch(msg); m != nil {
			genErr.StatusCode, _ = strconv.Atoi(m[1])
		}
	}
	if genErr.Kind = kindForStatus(genErr.StatusCode); genErr.Kind != nil {
		return genErr
	}

	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "resource_exhausted"):
		genErr.Kind = ErrRateLimited
	case strings.Contains(msg, "api key not valid") || strings.Contains(msg, "api_key_invalid") ||
		strings.Contains(msg, "invalid api key") || strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "unauthorized"):
		genErr.Kind = ErrUnauthorized
	case strings.Contains(msg, "model not found") || strings.Contains(msg, "model_not_found"):
		genErr.Kind = ErrModelNotFound
	}
	return genErr
}

// classifyByMessage 只有错误文本可用时的分类
func classifyByMessage(provider string, err error) *GenerationError {
	return classifyFailure(provider, err, 0, "")
}

// NewGenerator 根据 LLM_PROVIDER 创建生成客户端。没有配置密钥时返回 nil，
// 此时分析接口会直接返回 api_key_missing。
func NewGenerator(cfg config.Config) (Generator, error) {
	if cfg.LLMAPIKey == "" {
		config.Logger.Warnw("GEMINI_API_KEY 未设置，分析接口将不可用")
		return nil, nil
	}
	opts := GeneratorOptions{
		APIKey:      cfg.LLMAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	}
	switch cfg.LLMProvider {
	case "langchain":
		return NewLangchainGenerator(opts)
	case "openai":
		return NewOpenAIGenerator(opts), nil
	default:
		return nil, fmt.Errorf("不支持的模型提供方: %s", cfg.LLMProvider)
	}
}

// GeneratorOptions 两种客户端共用的参数
type GeneratorOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}
