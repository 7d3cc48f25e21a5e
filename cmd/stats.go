package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"solview/internal/core/domain"
	"solview/internal/core/services"
	"solview/pkg/ui"
)

var (
	statsView string
	statsTopN int
	statsHTML string
)

var statsCmd = &cobra.Command{
	Use:   "stats <address>",
	Short: "Show wallet statistics",
	Long: `Aggregate a wallet's NFTs into per-category counts and a
top-artist tally.

Examples:
  solview stats 86xCnPeV...
  solview stats 86xCnPeV... --top 20
  solview stats 86xCnPeV... --html stats.html   # charts for the browser`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsView, "view", "owned", "View type (owned, created)")
	statsCmd.Flags().IntVar(&statsTopN, "top", 10, "Number of top artists to show")
	statsCmd.Flags().StringVar(&statsHTML, "html", "", "Write an HTML chart page to this file")
}

func runStats(cmd *cobra.Command, args []string) error {
	view := statsView
	if !cmd.Flags().Changed("view") {
		view = appConfig.DefaultView
	}
	viewType, err := domain.ParseViewType(view)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatInfo("Analyzing wallet..."))
	resp, err := statsService.Execute(getContext(), services.StatsRequest{
		Address: args[0],
		View:    viewType,
		TopN:    statsTopN,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle("Wallet Analytics"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Total NFTs", fmt.Sprintf("%d", resp.TotalAssets)))
	fmt.Println(ui.RenderKeyValue("Artists", fmt.Sprintf("%d", resp.TotalArtists)))
	fmt.Println(ui.RenderKeyValue("Animated", fmt.Sprintf("%d", resp.AnimatedAssets)))
	fmt.Println()

	catTable := ui.NewTable([]ui.TableColumn{
		{Header: "Category", Width: 12, Align: "left"},
		{Header: "NFTs", Width: 6, Align: "right"},
	})
	for _, cat := range domain.Categories() {
		catTable.AddRow([]string{string(cat), fmt.Sprintf("%d", resp.CategoryCounts[cat])})
	}
	fmt.Print(catTable.Render())
	fmt.Println()

	if len(resp.TopArtists) > 0 {
		fmt.Println(ui.StyleBold.Render("Top Artists"))
		for _, t := range resp.TopArtists {
			fmt.Printf("  %s %s\n", ui.Truncate(t.Name, 32), ui.StyleMuted.Render(fmt.Sprintf("(%d)", t.Count)))
		}
		fmt.Println()
	}

	if statsHTML != "" {
		if err := writeStatsHTML(statsHTML, args[0], resp); err != nil {
			return fmt.Errorf("failed to write chart page: %w", err)
		}
		fmt.Println(ui.FormatSuccess("Chart page written to " + statsHTML))
	}
	return nil
}

// writeStatsHTML renders the aggregates as a bar + pie chart page.
func writeStatsHTML(path, address string, resp *services.StatsResponse) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Top artists",
			Subtitle: address,
		}),
	)
	names := make([]string, 0, len(resp.TopArtists))
	values := make([]opts.BarData, 0, len(resp.TopArtists))
	for _, t := range resp.TopArtists {
		names = append(names, t.Name)
		values = append(values, opts.BarData{Value: t.Count})
	}
	bar.SetXAxis(names).AddSeries("NFTs", values)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Categories"}),
	)
	slices := make([]opts.PieData, 0, len(resp.CategoryCounts))
	for _, cat := range domain.Categories() {
		slices = append(slices, opts.PieData{Name: string(cat), Value: resp.CategoryCounts[cat]})
	}
	pie.AddSeries("categories", slices)

	page := components.NewPage()
	page.AddCharts(bar, pie)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
