package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/ai"
	"github.com/spigell/talent-screener/internal/ai/gemini"
	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/screening"
	"github.com/spigell/talent-screener/internal/secrets"
	"github.com/spigell/talent-screener/internal/storage"
	"github.com/spigell/talent-screener/internal/textextract"
)

const (
	PromptNewSession = "Start new session"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var afterSession = promptui.Select{
	Label: "Screening finished",
	Items: []string{PromptNewSession, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive screening session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// The builtin mime table only covers a few web types.
	for ext, mediaType := range map[string]string{
		".pdf":      textextract.MediaPDF,
		".docx":     textextract.MediaDOCX,
		".txt":      textextract.MediaText,
		".md":       "text/markdown",
		".markdown": "text/markdown",
	} {
		_ = mime.AddExtensionType(ext, mediaType)
	}
}

// run is the main command for the cli.
func run() {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the talent-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	bank, err := loadBank(config.Questions)
	if err != nil {
		logger.Fatal("loading question bank", zap.Error(err))
	}

	store, err := storage.Open(config.Storage, logger)
	if err != nil {
		logger.Fatal("opening storage", zap.Error(err))
	}
	defer store.Close()

	writer, err := newQuestionWriter(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("ai question writer disabled", zap.Error(err))
	}

	var qcfg screening.Config
	if config.Questions != nil {
		qcfg = config.Questions.Config
	}

	controller := screening.New(qcfg, screening.Deps{
		Bank:      bank,
		Extractor: textextract.New(config.Resume, logger),
		Store:     store,
		Writer:    writer,
		Logger:    logger,
	})

	for _, status := range screening.Describe(controller.Sources()) {
		logger.Debug("question source status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	if err := converse(ctx, controller, os.Stdout); err != nil {
		if errors.Is(err, errExit) {
			logger.Info("exiting", zap.String("reason", "candidate left"))
			return
		}
		logger.Fatal("exiting", zap.Error(err))
	}
}

// converse runs sessions until the candidate chooses to exit.
func converse(ctx context.Context, controller *screening.Controller, out io.Writer) error {
	st, msgs := controller.Start(ctx)
	render(out, msgs)

	for {
		if st.Ended {
			_, action, err := afterSession.Run()
			if err != nil {
				return promptError(err)
			}
			if action != PromptNewSession {
				return errExit
			}
			render(out, controller.Restart(ctx, st))
			continue
		}

		input := promptui.Prompt{Label: screening.Placeholder(st.Stage)}
		text, err := input.Run()
		if err != nil {
			return promptError(err)
		}

		if st.Stage == screening.CollectResume {
			if upload, ok, err := uploadFromInput(text); ok {
				if err != nil {
					fmt.Fprintf(out, "could not read %s: %v\n\n", upload.Name, err)
					continue
				}
				render(out, controller.HandleUpload(ctx, st, upload))
				continue
			}
		}

		render(out, controller.HandleText(ctx, st, text))
	}
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errExit
	}
	return err
}

// uploadFromInput treats input naming an existing regular file as an upload.
// ok reports whether input was a file path at all.
func uploadFromInput(input string) (screening.Upload, bool, error) {
	path := strings.Trim(strings.TrimSpace(input), `"'`)
	if path == "" {
		return screening.Upload{}, false, nil
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return screening.Upload{}, false, nil
	}

	upload := screening.Upload{
		Name:      filepath.Base(path),
		MediaType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return upload, true, err
	}
	upload.Data = data

	return upload, true, nil
}

func render(out io.Writer, msgs []screening.Message) {
	for _, msg := range msgs {
		if msg.Role != screening.RoleAssistant {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n\n", msg.Role, msg.Text)
	}
}

func loadBank(cfg *QuestionsConfig) (*questionbank.Bank, error) {
	if cfg == nil || strings.TrimSpace(cfg.BankFile) == "" {
		return questionbank.Default(), nil
	}
	return questionbank.Load(cfg.BankFile)
}

func newQuestionWriter(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.QuestionWriter, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, *cfg.Gemini, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewQuestionWriter(generator, logger, cfg.Gemini.MaxLogLength), nil
}

// redacted hides the api key before the config is logged.
func redacted(config *Config) Config {
	out := *config
	if config.AI != nil && config.AI.Gemini != nil {
		aiCfg := *config.AI
		gem := *config.AI.Gemini
		if gem.APIKey != "" {
			gem.APIKey = "***"
		}
		aiCfg.Gemini = &gem
		out.AI = &aiCfg
	}
	return out
}
