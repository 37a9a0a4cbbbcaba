package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"MindMirrorGo/config"
	"MindMirrorGo/models"
)

// ErrAPIKeyMissing 未配置模型密钥，分析前直接返回，不会调用模型
var ErrAPIKeyMissing = errors.New("generation: api key missing")

type AnalysisOptions struct {
	// Credentialed 是否配置了 GEMINI_API_KEY
	Credentialed bool
	// FallbackOnUpstreamError 普通上游错误时返回默认内容而不是报错；
	// 密钥无效、限流、模型不存在仍然返回错误
	FallbackOnUpstreamError bool
}

// AnalysisService 构建提示词 -> 调用模型 -> 规整输出
type AnalysisService struct {
	gen  Generator
	opts AnalysisOptions
}

func NewAnalysisService(gen Generator, opts AnalysisOptions) *AnalysisService {
	return &AnalysisService{gen: gen, opts: opts}
}

// Ready 是否可以调用模型
func (s *AnalysisService) Ready() bool {
	return s.opts.Credentialed && s.gen != nil
}

// 启动自检用的固定提示词
const verifyPrompt = "Hello, respond with a short greeting."

// Verify 发一个最小请求检查密钥和模型是否可用，不走兜底
func (s *AnalysisService) Verify(ctx context.Context) error {
	if !s.Ready() {
		return ErrAPIKeyMissing
	}
	out, err := s.gen.Generate(ctx, verifyPrompt)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		return &GenerationError{Provider: "verify", Err: ErrEmptyResponse}
	}
	return nil
}

// AnalyzeMood 只选择了情绪、没有文本时直接返回选择结果
func (s *AnalysisService) AnalyzeMood(ctx context.Context, req models.MoodAnalysisRequest) (models.MoodAnalysis, error) {
	if !s.Ready() {
		return models.MoodAnalysis{}, ErrAPIKeyMissing
	}
	if req.Text == "" && req.SelectedMood != "" {
		return SelectedMoodAnalysis(req.SelectedMood, req.SelectedMoodScore), nil
	}
	fallback := MoodFallback(req.SelectedMood, req.SelectedMoodScore)
	return generate(ctx, s, models.TaskMood, BuildMoodPrompt(req.Text, req.Language), fallback)
}

func (s *AnalysisService) ClarifyThoughts(ctx context.Context, req models.TextAnalysisRequest) (models.ThoughtClarification, error) {
	if !s.Ready() {
		return models.ThoughtClarification{}, ErrAPIKeyMissing
	}
	return generate(ctx, s, models.TaskThoughts, BuildThoughtsPrompt(req.Text, req.Language), ThoughtsFallback())
}

func (s *AnalysisService) AnalyzeRelationship(ctx context.Context, req models.TextAnalysisRequest) (models.RelationshipAnalysis, error) {
	if !s.Ready() {
		return models.RelationshipAnalysis{}, ErrAPIKeyMissing
	}
	return generate(ctx, s, models.TaskRelationship, BuildRelationshipPrompt(req.Text, req.Language), RelationshipFallback())
}

func (s *AnalysisService) GenerateDailyTips(ctx context.Context, req models.DailyTipsRequest) (models.DailyTips, error) {
	if !s.Ready() {
		return models.DailyTips{}, ErrAPIKeyMissing
	}
	return generate(ctx, s, models.TaskDailyTips, BuildDailyTipsPrompt(models.Mood(req.Mood), req.Language), DailyTipsFallback())
}

func (s *AnalysisService) AnalyzeSocialMedia(ctx context.Context, req models.TextAnalysisRequest) (models.SocialMediaAnalysis, error) {
	if !s.Ready() {
		return models.SocialMediaAnalysis{}, ErrAPIKeyMissing
	}
	return generate(ctx, s, models.TaskSocialMedia, BuildSocialMediaPrompt(req.Text, req.Language), SocialMediaFallback())
}

func generate[T any](ctx context.Context, s *AnalysisService, task models.TaskKind, prompt string, fallback T) (T, error) {
	start := time.Now()
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		if s.opts.FallbackOnUpstreamError && !IsClassified(err) {
			config.Logger.Warnw("模型调用失败，返回默认内容", "task", task, "error", err)
			return fallback, nil
		}
		config.Logger.Errorw("模型调用失败", "task", task, "error", err, "duration", time.Since(start))
		return fallback, err
	}

	config.Logger.Debugw("模型调用完成", "task", task, "length", len(raw), "duration", time.Since(start))
	return Normalize(raw, fallback), nil
}

// IsClassified 是否是密钥、限流、模型不存在这三类需要告知调用方的错误
func IsClassified(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrRateLimited) || errors.Is(err, ErrModelNotFound)
}
