package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"solview/internal/core/classify"
	"solview/internal/core/services"
	"solview/pkg/ui"
)

var (
	browseView     string
	browseSort     string
	browseFilter   string
	browseQuantity string
	browseRefresh  bool
	browseLimit    int
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse <address>",
	Short: "Show a wallet's NFTs grouped by artist",
	Long: `Fetch the NFTs of a wallet address, classify them, and print the
artist groups as a table.

Examples:
  solview browse 86xCnPeV...
  solview browse 86xCnPeV... --view created
  solview browse 86xCnPeV... --filter drip --sort nameAsc
  solview browse 86xCnPeV... --filter spam --quantity ">3"
  solview browse 86xCnPeV... --refresh`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseView, "view", "owned", "View type (owned, created)")
	browseCmd.Flags().StringVar(&browseSort, "sort", "quantityDesc", "Sort key (quantityDesc, quantityAsc, nameAsc, nameDesc)")
	browseCmd.Flags().StringVar(&browseFilter, "filter", "all", "Category filter (all, drip, legit, spam, ???)")
	browseCmd.Flags().StringVar(&browseQuantity, "quantity", "all", "Group size filter (all, >3, 1)")
	browseCmd.Flags().BoolVar(&browseRefresh, "refresh", false, "Bypass the cache and fetch fresh data")
	browseCmd.Flags().IntVar(&browseLimit, "limit", 0, "Show at most N artist groups (0 = no limit)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts, err := parseGalleryOptions(cmd, browseView, browseSort, browseFilter, browseQuantity)
	if err != nil {
		return err
	}

	req := services.GalleryRequest{
		Address:    args[0],
		View:       opts.View,
		Sort:       opts.Sort,
		Filter:     opts.Filter,
		Quantity:   opts.Quantity,
		Refresh:    browseRefresh,
		OnProgress: terminalProgress(),
	}

	resp, err := galleryService.Execute(getContext(), req)
	clearProgress()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load gallery"))
		return err
	}

	gallery := resp.Gallery
	if gallery.ArtistCount() == 0 {
		fmt.Println(ui.FormatWarning("No NFTs found for this address and filter"))
		return nil
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Artists (%s)", opts.Filter)) + "  " + ui.CategoryBadge(opts.Filter))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Artist", Width: 32, Align: "left"},
		{Header: "Assets", Width: 6, Align: "right"},
		{Header: "Sample", Width: 40, Align: "left"},
	})

	shown := 0
	for _, group := range gallery.Groups {
		if browseLimit > 0 && shown >= browseLimit {
			break
		}
		sample := ""
		if len(group.Assets) > 0 {
			sample = group.Assets[0].Name
		}
		table.AddRow([]string{
			ui.Truncate(classify.ProjectDisplayName(group.Name), 32),
			fmt.Sprintf("%d", len(group.Assets)),
			ui.Truncate(sample, 40),
		})
		shown++
	}
	fmt.Print(table.Render())
	fmt.Println()

	summary := fmt.Sprintf("%s across %s (of %s fetched)",
		pluralize(gallery.AssetCount(), "NFT"),
		pluralize(gallery.ArtistCount(), "artist"),
		pluralize(resp.TotalAssets, "asset"))
	if resp.FromCache {
		summary += "  [cached]"
	}
	fmt.Println(ui.StyleMuted.Render(summary))
	return nil
}

// terminalProgress returns a carriage-return progress printer, or nil when
// stdout is not a terminal.
func terminalProgress() func(int) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	return func(p int) {
		fmt.Printf("\r%s %3d%%", ui.StyleInfo.Render("⟳ loading"), p)
	}
}

func clearProgress() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print("\r\033[K")
	}
}
