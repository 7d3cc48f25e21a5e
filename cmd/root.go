package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solview/internal/adapters/gallerycache"
	"solview/internal/adapters/helius"
	"solview/internal/core/classify"
	"solview/internal/core/ports"
	"solview/internal/core/services"
	"solview/pkg/config"
	"solview/pkg/ui"
)

var (
	// Config and logging
	appConfig *config.Config
	appLogger *zap.Logger

	// Adapters
	assetSource  ports.AssetSource
	galleryCache ports.GalleryCache
	fileCache    *gallerycache.FileCache

	// Services
	galleryService *services.GalleryService
	statsService   *services.StatsService

	// Rule table, validated at startup
	artistRules []classify.CustomArtistRule

	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solview",
	Short: "SolView - browse a wallet's NFTs by artist",
	Long: ui.StyleTitle.Render("SolView") + " - NFT Wallet Gallery\n\n" +
		"Fetch the NFTs owned or created by a Solana address, group them by\n" +
		"inferred artist, and browse the result in the terminal.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(artistsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	appLogger, err = buildLogger(verboseFlag || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// A malformed rule table is a startup error, not a per-request one.
	artistRules = classify.DefaultCustomArtists()
	if err := classify.ValidateRules(artistRules); err != nil {
		return fmt.Errorf("invalid artist rule table: %w", err)
	}

	assetSource = helius.NewClient(
		cfg.Endpoint,
		cfg.APIKey,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
		appLogger,
	)

	if cfg.EnableCache {
		dir, err := cfg.ResolveCacheDir()
		if err != nil {
			return err
		}
		fc, err := gallerycache.New(dir, time.Duration(cfg.CacheTTLMinutes)*time.Minute, appLogger)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
		fileCache = fc
		galleryCache = fc
	}

	galleryService = services.NewGalleryService(assetSource, galleryCache, artistRules, appLogger)
	statsService = services.NewStatsService(assetSource, artistRules, appLogger)

	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return logCfg.Build()
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
