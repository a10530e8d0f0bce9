// Package screening drives the candidate intake dialogue: it collects and validates
// profile fields, optionally scans a résumé, builds the interview question list and
// walks the candidate through it.
package screening

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/ai"
	"github.com/spigell/talent-screener/internal/logger"
	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/resume"
	"github.com/spigell/talent-screener/internal/storage"
	"github.com/spigell/talent-screener/internal/textextract"
)

const (
	DefaultResumeLimit = 3
	aiQuestionCount    = len(fallbackQuestions)
)

// TextExtractor turns uploaded document bytes into plain text.
type TextExtractor interface {
	Extract(data []byte, mediaType string) (string, error)
}

// Saver persists the summary of a finished session.
type Saver interface {
	Save(ctx context.Context, rec storage.Record) error
}

// Config tunes question building.
type Config struct {
	PerTech     int    `mapstructure:"per-tech"`
	ResumeLimit int    `mapstructure:"resume-limit"`
	Seed        uint64 `mapstructure:"seed"`
}

// Deps are the collaborators a Controller calls out to. Only Bank is required.
type Deps struct {
	Bank      *questionbank.Bank
	Extractor TextExtractor
	Store     Saver
	Writer    ai.QuestionWriter
	Rand      *rand.Rand
	Logger    *zap.Logger
}

// Controller is the dialogue state machine. It holds no per-session data, so one
// Controller serves any number of independent States.
type Controller struct {
	extractor TextExtractor
	store     Saver
	sources   []Source
	logger    *zap.Logger
}

// New builds a controller. Zero config values fall back to the defaults.
func New(cfg Config, deps Deps) *Controller {
	if cfg.PerTech <= 0 {
		cfg.PerTech = questionbank.DefaultPerTech
	}
	if cfg.ResumeLimit <= 0 {
		cfg.ResumeLimit = DefaultResumeLimit
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Bank == nil {
		deps.Bank = questionbank.Default()
	}
	if deps.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		deps.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	return &Controller{
		extractor: deps.Extractor,
		store:     deps.Store,
		sources: []Source{
			NewResumeSource(cfg.ResumeLimit),
			NewBankSource(deps.Bank, deps.Rand, cfg.PerTech),
			NewAISource(deps.Writer, aiQuestionCount),
			NewFallbackSource(),
		},
		logger: deps.Logger,
	}
}

// Sources exposes the question sources for status reporting.
func (c *Controller) Sources() []Source {
	return c.sources
}

// Start opens a fresh session and greets the candidate.
func (c *Controller) Start(_ context.Context) (*State, []Message) {
	st := newState()
	return st, c.greet(st)
}

// Restart wipes st completely and greets again.
func (c *Controller) Restart(_ context.Context, st *State) []Message {
	previous := st.ID
	*st = *newState()
	c.logger.Info("session restarted", zap.String("previous_"+logger.FieldSession, previous))
	return c.greet(st)
}

func (c *Controller) greet(st *State) []Message {
	msgs := []Message{st.say(greetingText)}
	c.advance(st, CollectName)
	c.logger.Info("session started", logger.Session(st.ID))
	return msgs
}

// HandleText processes one line typed by the candidate and returns what the
// assistant says back. Input after the session has ended is ignored.
func (c *Controller) HandleText(ctx context.Context, st *State, text string) []Message {
	if st.Ended {
		return nil
	}
	text = strings.TrimSpace(text)
	st.heard(text)

	if isExit(text) {
		st.Ended = true
		c.logger.Info("session ended by candidate", logger.Session(st.ID), zap.Stringer("stage", st.Stage))
		return []Message{st.say(goodbyeText)}
	}

	switch {
	case st.Stage.IsCollect():
		return c.collect(st, text)
	case st.Stage == CollectResume:
		if skipWords[strings.ToLower(text)] {
			return c.skipResume(ctx, st)
		}
		return []Message{st.say(resumeHintText)}
	case st.Stage == AskQuestions:
		return c.answer(ctx, st, text)
	default:
		return []Message{st.say(continueText)}
	}
}

func (c *Controller) collect(st *State, text string) []Message {
	field := profileFields[st.Stage]

	if ok, reason := field.validate(text); !ok {
		c.logger.Debug("invalid input",
			logger.Session(st.ID),
			zap.String("field", field.name),
			zap.String("reason", reason),
		)
		return []Message{st.say(invalidText(reason))}
	}

	if err := st.Profile.set(field, text); err != nil {
		c.logger.Error("profile update rejected", logger.Session(st.ID), zap.Error(err))
		return []Message{st.say(continueText)}
	}

	next, _ := st.Stage.Next()
	c.advance(st, next)
	return []Message{st.say(promptFor(next, st.Profile))}
}

func (c *Controller) skipResume(ctx context.Context, st *State) []Message {
	st.ResumeSkipped = true
	st.ResumeProcessed = true
	msgs := []Message{st.say(resumeSkipText)}
	return append(msgs, c.generate(ctx, st)...)
}

// HandleUpload processes a résumé file. Once a file has been read, later uploads
// only repeat the résumé hint. A file rejected for size was never read, so
// another file may follow it.
func (c *Controller) HandleUpload(ctx context.Context, st *State, up Upload) []Message {
	if st.Ended || st.Stage != CollectResume {
		return nil
	}
	if st.ResumeProcessed {
		c.logger.Debug("upload already processed", logger.Session(st.ID), zap.String("file", up.Name))
		return []Message{st.say(resumeHintText)}
	}
	st.ResumeProcessed = true
	st.heard("Uploaded: " + up.Name)

	text, err := c.extract(up)
	if err != nil {
		c.logger.Info("résumé not usable",
			logger.Session(st.ID),
			zap.String("file", up.Name),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, textextract.ErrTooLarge):
			st.ResumeProcessed = false
			return []Message{st.say(tooLargeResumeText)}
		case errors.Is(err, textextract.ErrNoText):
			msgs := []Message{st.say(scannedResumeText)}
			return append(msgs, c.generate(ctx, st)...)
		default:
			msgs := []Message{st.say(unreadableResumeText)}
			return append(msgs, c.generate(ctx, st)...)
		}
	}

	st.Resume = resume.Analyze(text)
	c.logger.Info("résumé analyzed",
		logger.Session(st.ID),
		zap.Int("skills", len(st.Resume.Skills)),
		zap.Int("companies", len(st.Resume.Companies)),
		zap.Int("projects", len(st.Resume.Projects)),
		zap.Int("questions", len(st.Resume.Questions)),
	)

	msgs := []Message{st.say(resumeSummaryText(st.Profile.FirstName(), st.Resume))}
	return append(msgs, c.generate(ctx, st)...)
}

func (c *Controller) extract(up Upload) (string, error) {
	if c.extractor == nil {
		return "", textextract.ErrUnsupportedType
	}
	return c.extractor.Extract(up.Data, up.MediaType)
}

// generate builds the question list and presents the first question.
func (c *Controller) generate(ctx context.Context, st *State) []Message {
	c.advance(st, GenerateQuestions)

	in := SourceInput{Profile: st.Profile}
	if st.Resume != nil {
		for _, q := range st.Resume.Questions {
			in.Resume = append(in.Resume, Question{Text: q.Text, Origin: OriginResume, Source: q.Source})
		}
	}

	st.Questions = Collect(ctx, c.logger, c.sources, in)
	st.Answers = make([]Answer, 0, len(st.Questions))
	st.Cursor = 0

	var msgs []Message
	if !hasOrigin(st.Questions, OriginResume) {
		msgs = append(msgs, st.say(readinessText(st.Profile.FirstName(), st.Questions)))
	}

	c.advance(st, AskQuestions)
	if len(st.Questions) == 0 {
		return append(msgs, c.farewell(ctx, st)...)
	}
	return append(msgs, st.say(questionText(0, st.Questions)))
}

func (c *Controller) answer(ctx context.Context, st *State, text string) []Message {
	st.Answers = append(st.Answers, Answer{Question: st.Questions[st.Cursor].Text, Text: text})
	msgs := []Message{st.say(acknowledgements[st.Cursor%len(acknowledgements)])}

	st.Cursor++
	if st.Cursor < len(st.Questions) {
		return append(msgs, st.say(questionText(st.Cursor, st.Questions)))
	}
	return append(msgs, c.farewell(ctx, st)...)
}

func (c *Controller) farewell(ctx context.Context, st *State) []Message {
	c.advance(st, Farewell)
	st.Ended = true

	analyzed := st.Resume != nil
	msg := st.say(farewellText(st.Profile, analyzed))

	if st.Saved || c.store == nil {
		return []Message{msg}
	}
	st.Saved = true

	rec := storage.Record{
		SessionID:         st.ID,
		Name:              st.Profile.Name,
		Email:             st.Profile.Email,
		Phone:             st.Profile.Phone,
		Experience:        st.Profile.Experience,
		Position:          st.Profile.Position,
		Location:          st.Profile.Location,
		TechStack:         st.Profile.TechStack,
		QuestionsAsked:    len(st.Answers),
		ScreeningComplete: true,
		ResumeAnalyzed:    analyzed,
	}
	if err := c.store.Save(ctx, rec); err != nil {
		c.logger.Error("saving screening record failed", logger.Session(st.ID), zap.Error(err))
	} else {
		c.logger.Info("screening record saved", logger.Session(st.ID), zap.Int("questions_asked", rec.QuestionsAsked))
	}

	return []Message{msg}
}

func (c *Controller) advance(st *State, next Stage) {
	from := st.Stage
	if err := st.moveTo(next); err != nil {
		c.logger.Error("stage transition rejected", logger.Session(st.ID), zap.Error(err))
		return
	}
	c.logger.Debug("stage changed", logger.Session(st.ID), zap.Stringer("from", from), zap.Stringer("to", next))
}

func isExit(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if exitKeywords[word] {
			return true
		}
	}
	return false
}
