package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kerbaras/maniverse/pkg/app"
	"github.com/kerbaras/maniverse/pkg/config"
	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/integrations"
	"github.com/kerbaras/maniverse/pkg/logging"
	"github.com/kerbaras/maniverse/pkg/services"
)

var (
	configPath string
	dataDir    string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "maniverse",
	Short:         "Design your next manicure from the terminal",
	Long:          "Pick a nail shape and a color, then preview the result. Your picks are remembered between sessions.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("data-dir") {
			loaded.DataDir = dataDir
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		logger, closer, err := logging.OpenFile(cfg.LogPath(), logging.Options{Level: cfg.LogLevel})
		if err != nil {
			return err
		}
		defer closer.Close()

		var kv data.KeyValueStore
		repo, err := data.NewDuckDBRepository(cfg.DatabasePath())
		if err != nil {
			logger.Warn("selection will not be persisted this session", "err", err)
			kv = data.NewMemoryStore()
		} else {
			defer repo.Close()
			kv = repo
		}

		store := services.NewSelectionStore(kv, logger)
		store.Load()

		nav := services.NewNavigator(store, cfg.LoadingDelay)
		assets := integrations.NewAssetLoader(cfg.AssetsDir, logger)

		logger.Info("starting designer", "data_dir", cfg.DataDir, "delay", cfg.LoadingDelay)
		return app.NewApp(nav, assets, logger).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.maniverse/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the database and log")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// cliLogger is the stderr logger for non-interactive commands.
func cliLogger(cmd *cobra.Command) *log.Logger {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return logging.Discard()
	}
	return logger
}

// openStore loads the persisted selection. Subcommands need the database,
// so a failure here is an error rather than a fallback.
func openStore(logger *log.Logger) (*services.SelectionStore, io.Closer, error) {
	repo, err := data.NewDuckDBRepository(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open selection database: %w", err)
	}
	store := services.NewSelectionStore(repo, logger)
	store.Load()
	return store, repo, nil
}
