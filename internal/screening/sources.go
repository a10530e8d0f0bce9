package screening

import (
	"context"
	"math/rand/v2"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/ai"
	"github.com/spigell/talent-screener/internal/questionbank"
)

// Source is one step of question building. Sources run in order and each sees the
// questions gathered so far.
type Source interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Collect(ctx context.Context, in SourceInput, have []Question) ([]Question, Step, error)
}

// SourceInput is the session data question sources draw from.
type SourceInput struct {
	Profile Profile
	Resume  []Question
}

// Step describes what a source contributed.
type Step struct {
	Before int
	Added  int
	After  int
}

// Status represents runtime information about a source.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// DisableByName marks a source with the provided name as disabled while keeping it in the list.
func DisableByName(sources []Source, name, reason string) {
	for _, src := range sources {
		if src.Name() == name {
			src.Disable(reason)
		}
	}
}

// Collect runs the enabled sources in order. A failing source is logged and
// contributes nothing; question building itself never fails.
func Collect(ctx context.Context, logger *zap.Logger, sources []Source, in SourceInput) []Question {
	if logger == nil {
		logger = zap.NewNop()
	}

	var questions []Question
	for _, src := range sources {
		if !src.IsEnabled() {
			logger.Debug("question source disabled", zap.String("name", src.Name()))
			continue
		}

		next, info, err := src.Collect(ctx, in, questions)
		if err != nil {
			logger.Warn("question source failed", zap.String("name", src.Name()), zap.Error(err))
			continue
		}

		logger.Info("question source",
			zap.String("name", src.Name()),
			zap.Int("before", info.Before),
			zap.Int("added", info.Added),
			zap.Int("after", info.After),
		)
		questions = next
	}
	return questions
}

// Describe returns status entries for the provided sources.
func Describe(sources []Source) []Status {
	statuses := make([]Status, 0, len(sources))
	for _, src := range sources {
		if reporter, ok := src.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}
		statuses = append(statuses, Status{Name: src.Name(), Enabled: src.IsEnabled()})
	}
	return statuses
}

func hasOrigin(questions []Question, origins ...Origin) bool {
	for _, q := range questions {
		for _, o := range origins {
			if q.Origin == o {
				return true
			}
		}
	}
	return false
}

func added(have, next []Question) Step {
	return Step{Before: len(have), Added: len(next) - len(have), After: len(next)}
}

type resumeSource struct {
	limit int
}

// NewResumeSource puts up to limit résumé questions at the front of the list.
func NewResumeSource(limit int) Source {
	return &resumeSource{limit: limit}
}

func (s *resumeSource) Name() string { return "resume" }

func (s *resumeSource) Disable(string) {}

func (s *resumeSource) IsEnabled() bool { return true }

func (s *resumeSource) Collect(_ context.Context, in SourceInput, have []Question) ([]Question, Step, error) {
	next := append([]Question(nil), have...)
	for i, q := range in.Resume {
		if i == s.limit {
			break
		}
		next = append(next, q)
	}
	return next, added(have, next), nil
}

func (s *resumeSource) Status() Status {
	return Status{Name: s.Name(), Enabled: true, Details: map[string]string{"limit": strconv.Itoa(s.limit)}}
}

type bankSource struct {
	bank    *questionbank.Bank
	rng     *rand.Rand
	perTech int
}

// NewBankSource samples curated questions for the declared stack and experience.
func NewBankSource(bank *questionbank.Bank, rng *rand.Rand, perTech int) Source {
	return &bankSource{bank: bank, rng: rng, perTech: perTech}
}

func (s *bankSource) Name() string { return "bank" }

func (s *bankSource) Disable(string) {}

func (s *bankSource) IsEnabled() bool { return s.bank != nil }

func (s *bankSource) Collect(_ context.Context, in SourceInput, have []Question) ([]Question, Step, error) {
	items, _ := s.bank.Select(s.rng, in.Profile.TechStack, in.Profile.Experience, s.perTech)

	next := append([]Question(nil), have...)
	for _, item := range items {
		next = append(next, Question{
			Text:   item.Question,
			Origin: OriginBank,
			Tier:   item.Tier,
			Tech:   item.Tech,
		})
	}
	return next, added(have, next), nil
}

func (s *bankSource) Status() Status {
	return Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Details: map[string]string{"per_tech": strconv.Itoa(s.perTech)},
	}
}

type aiSource struct {
	writer   ai.QuestionWriter
	count    int
	disabled bool
	reason   string
}

// NewAISource asks the writer for questions when the bank matched nothing.
func NewAISource(writer ai.QuestionWriter, count int) Source {
	src := &aiSource{writer: writer, count: count}
	if writer == nil {
		src.Disable("question writer is not configured")
	}
	return src
}

func (s *aiSource) Name() string { return "ai" }

func (s *aiSource) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *aiSource) IsEnabled() bool { return !s.disabled }

func (s *aiSource) Collect(ctx context.Context, in SourceInput, have []Question) ([]Question, Step, error) {
	if hasOrigin(have, OriginBank) {
		return have, added(have, have), nil
	}

	texts, err := s.writer.WriteQuestions(ctx, in.Profile.TechStack, s.count)
	if err != nil {
		return have, Step{}, err
	}

	next := append([]Question(nil), have...)
	for _, text := range texts {
		if len(next)-len(have) == s.count {
			break
		}
		next = append(next, Question{Text: text, Origin: OriginAI})
	}
	return next, added(have, next), nil
}

func (s *aiSource) Status() Status {
	return Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Reason:  s.reason,
		Details: map[string]string{"count": strconv.Itoa(s.count)},
	}
}

type fallbackSource struct{}

// NewFallbackSource adds the fixed general questions when nothing technical was found.
func NewFallbackSource() Source {
	return &fallbackSource{}
}

func (s *fallbackSource) Name() string { return "fallback" }

func (s *fallbackSource) Disable(string) {}

func (s *fallbackSource) IsEnabled() bool { return true }

func (s *fallbackSource) Collect(_ context.Context, _ SourceInput, have []Question) ([]Question, Step, error) {
	if hasOrigin(have, OriginBank, OriginAI) {
		return have, added(have, have), nil
	}

	next := append([]Question(nil), have...)
	for _, text := range fallbackQuestions {
		next = append(next, Question{Text: text, Origin: OriginFallback})
	}
	return next, added(have, next), nil
}
