package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/ai/gemini"
	"github.com/spigell/talent-screener/internal/logger"
	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/screening"
	"github.com/spigell/talent-screener/internal/storage"
	"github.com/spigell/talent-screener/internal/textextract"
)

const (
	app = "talent-screener"
)

type Config struct {
	Storage   storage.Config     `mapstructure:"storage"`
	Questions *QuestionsConfig   `mapstructure:"questions"`
	Resume    textextract.Config `mapstructure:"resume"`
	AI        *AIConfig          `mapstructure:"ai"`
	Log       *LogConfig         `mapstructure:"log"`
}

type QuestionsConfig struct {
	screening.Config `mapstructure:",squash"`
	BankFile         string `mapstructure:"bank-file"`
}

type AIConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Provider string         `mapstructure:"provider"`
	Gemini   *gemini.Config `mapstructure:"gemini"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talent-screener is an interactive cli that screens candidates before a technical interview",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	for key, env := range map[string]string{
		"ai.gemini.api-key":      "GEMINI_API_KEY",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talent-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("storage.driver", storage.DriverJSONL)
	viper.SetDefault("storage.path", "")
	viper.SetDefault("questions.per-tech", questionbank.DefaultPerTech)
	viper.SetDefault("questions.resume-limit", screening.DefaultResumeLimit)
	viper.SetDefault("questions.seed", 0)
	viper.SetDefault("questions.bank-file", "")
	viper.SetDefault("resume.max-size-bytes", textextract.DefaultMaxBytes)
	viper.SetDefault("resume.max-chars", textextract.DefaultMaxChars)
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.max-retries", 2)
	viper.SetDefault("ai.gemini.max-log-length", 200)
	viper.SetDefault("log.file", "")
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	// GEMINI_API_KEY may live in a .env file next to the config.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// Without a config file the defaults apply, but an explicit or broken one must parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func newLogger() *zap.Logger {
	logger, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  viper.GetString("log.file"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return logger
}
