package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/ai"
	"github.com/ayanchyaziz123/career-AI/internal/logger"
	"github.com/ayanchyaziz123/career-AI/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryBackoff        = 2 * time.Second
)

// Advisor generates career guidance through Gemini.
type Advisor struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

// NewAdvisor wraps a content generator as an ai.Advisor. maxRetries bounds
// transient-failure retries; maxLogLength bounds prompt/response previews in
// debug logs.
func NewAdvisor(generator contentGenerator, log *zap.Logger, maxRetries, maxLogLength int) *Advisor {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator:  generator,
		logger:     log,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// Advise builds the guidance prompt for the request and queries Gemini,
// retrying transient failures with a fixed backoff.
func (a *Advisor) Advise(ctx context.Context, req *ai.Request) (*ai.Guidance, error) {
	if req == nil || req.Match == nil {
		return nil, fmt.Errorf("a career match is required for guidance")
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini guidance request",
		zap.String("career_id", req.Match.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	var raw string
	for attempt := 0; ; attempt++ {
		raw, err = a.generator.GenerateContent(ctx, prompt)
		if err == nil {
			break
		}

		if attempt >= a.maxRetries {
			return nil, err
		}

		a.logger.Warn("gemini guidance attempt failed; retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		if waitErr := utils.WaitFor(ctx, retryBackoff); waitErr != nil {
			return nil, waitErr
		}
	}

	a.logger.Debug("gemini guidance response",
		zap.String("career_id", req.Match.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	return &ai.Guidance{Text: strings.TrimSpace(raw), Raw: raw}, nil
}

func buildPrompt(req *ai.Request) (string, error) {
	profileJSON, err := json.MarshalIndent(req.Profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile payload: %w", err)
	}

	matchPayload := map[string]any{
		"id":     req.Match.ID,
		"title":  req.Match.Title,
		"salary": req.Match.Salary,
		"growth": req.Match.Growth,
		"skills": req.Match.Skills,
	}
	matchJSON, err := json.MarshalIndent(matchPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal match payload: %w", err)
	}

	gaps := "none"
	if len(req.PriorityGaps) > 0 {
		gaps = strings.Join(req.PriorityGaps, ", ")
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{PROFILE_JSON}}", string(profileJSON))
	prompt = strings.ReplaceAll(prompt, "{{MATCH_JSON}}", string(matchJSON))
	prompt = strings.ReplaceAll(prompt, "{{READINESS}}", fmt.Sprintf("%d", req.Readiness))
	prompt = strings.ReplaceAll(prompt, "{{PRIORITY_GAPS}}", gaps)

	return prompt, nil
}
