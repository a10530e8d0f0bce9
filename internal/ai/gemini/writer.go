package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	systemInstruction   = "You are a hiring assistant for a technology recruitment agency. " +
		"Write focused, production-oriented interview questions. Never evaluate candidates."
	minQuestionLen = 10
)

var listMarkerRe = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)

// QuestionWriter asks Gemini for interview questions about a free-text stack.
type QuestionWriter struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewQuestionWriter wraps generator. Previews longer than maxLogLength runes are truncated in debug logs.
func NewQuestionWriter(generator contentGenerator, logger *zap.Logger, maxLogLength int) *QuestionWriter {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuestionWriter{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// WriteQuestions returns at most count questions.
func (w *QuestionWriter) WriteQuestions(ctx context.Context, techStack string, count int) ([]string, error) {
	techStack = strings.TrimSpace(techStack)
	if techStack == "" {
		return nil, errors.New("tech stack is required")
	}
	if count <= 0 {
		return nil, fmt.Errorf("invalid question count %d", count)
	}

	prompt := buildPrompt(techStack, count)
	w.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, w.maxLogLen)),
	)

	questions := parseQuestions(raw)
	if len(questions) == 0 {
		return nil, errors.New("gemini response contained no questions")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func buildPrompt(techStack string, count int) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{TECH_STACK}}", techStack)
	return strings.ReplaceAll(prompt, "{{COUNT}}", strconv.Itoa(count))
}

// parseQuestions accepts a JSON array of strings and falls back to question-like lines.
func parseQuestions(raw string) []string {
	var list []string
	if err := json.Unmarshal([]byte(extractJSON(raw)), &list); err == nil {
		out := make([]string, 0, len(list))
		for _, q := range list {
			if q = strings.TrimSpace(q); q != "" {
				out = append(out, q)
			}
		}
		return out
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(listMarkerRe.ReplaceAllString(strings.TrimSpace(line), ""))
		line = strings.Trim(line, `"',`)
		if strings.HasSuffix(line, "?") && utf8.RuneCountInString(line) > minQuestionLen {
			out = append(out, line)
		}
	}
	return out
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
