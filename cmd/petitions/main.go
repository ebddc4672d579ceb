package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"petitions/internal/config"
	"petitions/internal/logging"
	"petitions/internal/petitions"
	"petitions/internal/ui"
)

// flags holds the command line overrides applied on top of the config file
type flags struct {
	configPath string
	mode       string
	baseURL    string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "petitions",
		Short: "Browse We The People petitions in the terminal",
		Long: `petitions fetches petitions from the We The People API and shows them
in a searchable list. Two tabs show the most recent petitions and the ones
above a signature floor; opening a petition shows its text.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/petitions/config.toml)")
	pf.StringVar(&f.mode, "mode", "", "Feed to show first: all or popular")
	pf.StringVar(&f.baseURL, "base-url", "", "Petitions API endpoint")
	pf.StringVar(&f.logFile, "log-file", "", "Log file path")
	pf.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newDumpCmd(&f))
	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(f flags) (*config.Config, error) {
	svc := config.NewConfigService()
	if f.configPath != "" {
		svc = config.NewConfigServiceForPath(f.configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", svc.Path(), err)
	}

	if f.mode != "" {
		cfg.UI.StartTab = f.mode
	}
	if f.baseURL != "" {
		cfg.API.BaseURL = f.baseURL
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, func() error, error) {
	return logging.New(logging.Config{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
}

func newClient(cfg *config.Config, logger *zap.Logger) *petitions.Client {
	return petitions.NewClient(
		petitions.WithBaseURL(cfg.API.BaseURL),
		petitions.WithLimit(cfg.API.Limit),
		petitions.WithSignatureFloor(cfg.API.SignatureFloor),
		petitions.WithTimeout(cfg.API.Timeout.Std()),
		petitions.WithLogger(logger),
	)
}

func runTUI(ctx context.Context, f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("starting",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("start_tab", cfg.StartMode().String()))

	model := ui.NewModel(ctx, cfg, newClient(cfg, logger), logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
