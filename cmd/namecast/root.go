// Package main provides the namecast CLI application.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/namecast/namecast"
	"github.com/namecast/namecast/cache"
	"github.com/namecast/namecast/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootFlags holds all command-line flag values.
type rootFlags struct {
	Context     string
	ContextFile string
	Format      string
	MaxLength   int
	CacheDir    string
	NoCache     bool
	JSON        bool
	Engine      string
	Model       string
	APIKey      string
	Timeout     time.Duration
	RedisURL    string
	Passthrough bool
	Quiet       bool
	CfgFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "namecast [texts...]",
		Short: "Translate phrases into code-ready English names",
		Long: `namecast translates short phrases (Chinese identifiers and labels) into
English and casts them into a code-naming convention.

Multiple texts are batched into a single AI engine call, and results are
cached on disk so repeated runs never re-translate.

Examples:
  namecast "測試流程"
  namecast "電源板" "顯示板" "成品測試"
  namecast --context "FCT test procedures" "電源板測試"
  namecast --format snake_case --max-length 20 "測試流程"
  namecast --json --no-cache "電源板"`,
		Args:    cobra.MinimumNArgs(1),
		Version: namecast.FullVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, flags)
		},
		SilenceUsage: true,
	}

	setupFlags(cmd, flags)
	cobra.OnInitialize(func() {
		initConfig(flags.CfgFile)
	})

	cmd.AddCommand(newCacheCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setupFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.namecast.yaml)")
	cmd.PersistentFlags().StringVar(&flags.CacheDir, "cache-dir", cache.DefaultCacheDir, "Translation cache directory")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress output")

	cmd.Flags().StringVarP(&flags.Context, "context", "c", "", "Background context for the AI engine")
	cmd.Flags().StringVar(&flags.ContextFile, "context-file", "", "Load context from a file")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", string(namecast.FormatKebab), "Output format (kebab-case, snake_case, camelCase, PascalCase, lowercase, UPPERCASE)")
	cmd.Flags().IntVarP(&flags.MaxLength, "max-length", "l", namecast.DefaultMaxLength, "Maximum output length (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Bypass the translation cache")
	cmd.Flags().BoolVarP(&flags.JSON, "json", "j", false, "Output results as JSON")
	cmd.Flags().StringVar(&flags.Engine, "engine", "claude", "AI engine (claude or openai)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Engine model override")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", engine.DefaultClaudeTimeout, "Engine invocation timeout")
	cmd.Flags().StringVar(&flags.RedisURL, "redis", "", "Use a Redis cache at this URL instead of the file cache")
	cmd.Flags().BoolVar(&flags.Passthrough, "passthrough", false, "Format Latin-script inputs directly without translating")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("max_length", cmd.Flags().Lookup("max-length"))
	viper.BindPFlag("cache_dir", cmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	viper.BindPFlag("model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("redis", cmd.Flags().Lookup("redis"))
}

// initConfig initializes viper configuration.
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".namecast")
	}

	viper.SetEnvPrefix("NAMECAST")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // Missing config file is fine
}

func runTranslate(cmd *cobra.Command, args []string, flags *rootFlags) error {
	logger := newLogger(flags.Quiet)

	// Fail fast on configuration, before any engine call.
	format, err := namecast.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	resolved, err := namecast.ResolveContext(namecast.ContextSources{
		Inline: flags.Context,
		File:   flags.ContextFile,
	})
	if err != nil {
		return err
	}

	store, err := buildStore(flags, logger)
	if err != nil {
		return err
	}

	eng, err := buildEngine(flags)
	if err != nil {
		return err
	}

	opts := []namecast.TranslatorOption{
		namecast.WithFormat(format),
		namecast.WithMaxLength(viper.GetInt("max_length")),
		namecast.WithContext(resolved),
		namecast.WithSkipCache(flags.NoCache),
		namecast.WithPassthrough(flags.Passthrough),
		namecast.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, namecast.WithCache(store))
	}

	translator := namecast.NewTranslator(eng, opts...)

	if !flags.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Translating %d text(s)...\n", len(args))
	}

	start := time.Now()
	result, err := translator.BatchTranslate(context.Background(), args)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	if err := writeResult(cmd, result, flags.JSON); err != nil {
		return err
	}

	if !flags.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(cmd.ErrOrStderr(), "  Translated: %d\n", result.TranslatedCount)
		fmt.Fprintf(cmd.ErrOrStderr(), "  From cache: %d\n", result.CachedCount)
		if result.FailedCount > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Failed:     %d\n", result.FailedCount)
		}
	}

	// Partial failures are reported per text above; only a batch with no
	// successful entry is an unrecoverable failure.
	if result.FailedCount > 0 && result.FailedCount == len(result.Entries) {
		return fmt.Errorf("all %d text(s) failed to translate", result.FailedCount)
	}

	return nil
}

// writeResult prints the batch outcome as text lines or JSON.
func writeResult(cmd *cobra.Command, result *namecast.BatchResult, asJSON bool) error {
	if asJSON {
		out := struct {
			Results map[string]string `json:"results"`
			Failed  map[string]string `json:"failed,omitempty"`
		}{
			Results: result.Outputs(),
		}
		for _, e := range result.Failed() {
			if out.Failed == nil {
				out.Failed = make(map[string]string)
			}
			out.Failed[e.Text] = e.Err.Error()
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, e := range result.Entries {
		if e.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s → ERROR: %v\n", e.Text, e.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", e.Text, e.Output)
	}
	return nil
}

// buildStore selects the cache backend: none, Redis, or the file store.
func buildStore(flags *rootFlags, logger *slog.Logger) (namecast.Cache, error) {
	if flags.NoCache {
		return nil, nil
	}

	if url := viper.GetString("redis"); url != "" {
		store, err := cache.NewRedisStore(cache.RedisConfig{URL: url})
		if err != nil {
			logger.Warn("redis unavailable, proceeding without cache", "error", err)
			return nil, nil
		}
		return store, nil
	}

	store, err := cache.NewFileStore(viper.GetString("cache_dir"), logger)
	if err != nil {
		logger.Warn("cache directory unavailable, proceeding without cache", "error", err)
		return nil, nil
	}
	return store, nil
}

// buildEngine constructs the configured AI engine, wrapped with retry.
func buildEngine(flags *rootFlags) (namecast.Engine, error) {
	model := viper.GetString("model")

	var eng namecast.Engine
	switch viper.GetString("engine") {
	case "claude":
		eng = engine.NewClaudeEngine(engine.ClaudeConfig{
			Model:   model,
			Timeout: flags.Timeout,
		})
	case "openai":
		key := flags.APIKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, &namecast.ConfigError{Message: "OpenAI API key required (--api-key or OPENAI_API_KEY env)"}
		}
		eng = engine.NewOpenAIEngine(engine.OpenAIConfig{
			APIKey: key,
			Model:  model,
		})
	default:
		return nil, &namecast.ConfigError{Message: "unknown engine: " + viper.GetString("engine")}
	}

	return namecast.NewRetryableEngine(eng, namecast.DefaultRetryConfig()), nil
}

// newLogger builds the CLI logger; quiet mode only surfaces errors.
func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelWarn
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
