package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"solview/pkg/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the gallery cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache location and entry count",
	RunE:  runCacheStatus,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all cached galleries",
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	if fileCache == nil {
		fmt.Println(ui.FormatWarning("Caching is disabled in the config"))
		return nil
	}
	fmt.Println(ui.RenderKeyValue("Directory", fileCache.Dir()))
	fmt.Println(ui.RenderKeyValue("Entries", fmt.Sprintf("%d", fileCache.Size())))
	fmt.Println(ui.RenderKeyValue("TTL", fmt.Sprintf("%d min", appConfig.CacheTTLMinutes)))
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	if fileCache == nil {
		fmt.Println(ui.FormatWarning("Caching is disabled in the config"))
		return nil
	}
	n, err := fileCache.Purge()
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %d cache entries", n)))
	return nil
}
