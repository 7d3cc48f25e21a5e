package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"solview/pkg/config"
	"solview/pkg/ui"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration after merging defaults, the
config file, and environment overrides.

Use --init to write a default config file to edit.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	if configInit {
		if err := config.DefaultConfig().Save(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Println(ui.FormatSuccess("Config written to " + path))
		return nil
	}

	apiKey := "(not set)"
	if appConfig.APIKey != "" {
		apiKey = "(set)"
	}
	cacheDir, _ := appConfig.ResolveCacheDir()

	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("File", path))
	fmt.Println(ui.RenderKeyValue("API key", apiKey))
	fmt.Println(ui.RenderKeyValue("Endpoint", orDefault(appConfig.Endpoint, "mainnet")))
	fmt.Println(ui.RenderKeyValue("Timeout", fmt.Sprintf("%ds", appConfig.TimeoutSeconds)))
	fmt.Println(ui.RenderKeyValue("Cache", fmt.Sprintf("%v (%s, %d min)", appConfig.EnableCache, cacheDir, appConfig.CacheTTLMinutes)))
	fmt.Println(ui.RenderKeyValue("Default view", appConfig.DefaultView))
	fmt.Println(ui.RenderKeyValue("Default sort", appConfig.DefaultSort))
	fmt.Println(ui.RenderKeyValue("Default filter", appConfig.DefaultFilter))
	fmt.Println(ui.RenderKeyValue("Theme", appConfig.ColorTheme))
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
