package cmd

import (
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"solview/internal/core/classify"
	"solview/internal/core/domain"
	"solview/internal/core/services"
	"solview/pkg/ui"
)

var (
	artistsView   string
	artistsSort   string
	artistsFilter string
	artistsPick   bool
	artistsRules  bool
)

var artistsCmd = &cobra.Command{
	Use:   "artists [address]",
	Short: "List a wallet's artists, or the curated rule table",
	Long: `List the resolved artists of a wallet with their asset counts.

Examples:
  solview artists 86xCnPeV...
  solview artists 86xCnPeV... --filter legit
  solview artists 86xCnPeV... --pick     # fuzzy-pick an artist, show their assets
  solview artists --rules                # print the custom artist rule table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArtists,
}

func init() {
	artistsCmd.Flags().StringVar(&artistsView, "view", "owned", "View type (owned, created)")
	artistsCmd.Flags().StringVar(&artistsSort, "sort", "nameAsc", "Sort key")
	artistsCmd.Flags().StringVar(&artistsFilter, "filter", "all", "Category filter")
	artistsCmd.Flags().BoolVar(&artistsPick, "pick", false, "Fuzzy-pick an artist and show their assets")
	artistsCmd.Flags().BoolVar(&artistsRules, "rules", false, "Print the custom artist rule table")
}

func runArtists(cmd *cobra.Command, args []string) error {
	if artistsRules {
		return runArtistRules()
	}
	if len(args) == 0 {
		return fmt.Errorf("an address is required unless --rules is set")
	}

	opts, err := parseGalleryOptions(cmd, artistsView, artistsSort, artistsFilter, "all")
	if err != nil {
		return err
	}

	resp, err := galleryService.Execute(getContext(), services.GalleryRequest{
		Address:    args[0],
		View:       opts.View,
		Sort:       opts.Sort,
		Filter:     opts.Filter,
		OnProgress: terminalProgress(),
	})
	clearProgress()
	if err != nil {
		return err
	}

	groups := resp.Gallery.Groups
	if len(groups) == 0 {
		fmt.Println(ui.FormatWarning("No artists found"))
		return nil
	}

	if artistsPick {
		return runArtistPicker(groups)
	}

	for _, g := range groups {
		fmt.Printf("%s %s\n",
			ui.StyleBold.Render(classify.ProjectDisplayName(g.Name)),
			ui.StyleMuted.Render(fmt.Sprintf("(%d)", len(g.Assets))))
	}
	fmt.Println()
	fmt.Println(ui.StyleMuted.Render(pluralize(len(groups), "artist")))
	return nil
}

// runArtistPicker launches the fuzzy finder over artist groups
func runArtistPicker(groups []domain.ArtistGroup) error {
	idx, err := fuzzyfinder.Find(
		groups,
		func(i int) string {
			return fmt.Sprintf("%s (%d)", classify.ProjectDisplayName(groups[i].Name), len(groups[i].Assets))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			g := groups[i]
			var b strings.Builder
			b.WriteString(classify.ProjectDisplayName(g.Name) + "\n\n")
			for j, a := range g.Assets {
				if j >= h-4 {
					b.WriteString(fmt.Sprintf("… and %d more\n", len(g.Assets)-j))
					break
				}
				name := a.Name
				if name == "" {
					name = a.ID
				}
				b.WriteString("• " + name + "\n")
			}
			return b.String()
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return nil
		}
		return err
	}

	g := groups[idx]
	fmt.Println(ui.FormatTitle(classify.ProjectDisplayName(g.Name)))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 40, Align: "left"},
		{Header: "ID", Width: 12, Align: "left"},
		{Header: "Media", Width: 6, Align: "left"},
	})
	for _, a := range g.Assets {
		media := "image"
		if a.HasAnimation() {
			media = "video"
		}
		table.AddRow([]string{
			ui.Truncate(a.Name, 40),
			ui.Truncate(a.ID, 12),
			media,
		})
	}
	fmt.Print(table.Render())
	return nil
}

func runArtistRules() error {
	fmt.Println(ui.FormatTitle("Custom Artist Rules"))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Width: 2, Align: "right"},
		{Header: "Artist", Width: 22, Align: "left"},
		{Header: "Rule", Width: 16, Align: "left"},
		{Header: "Values", Width: 40, Align: "left"},
	})
	for i, r := range artistRules {
		values := strings.Join(r.Values, ", ")
		if len(r.Exclude) > 0 {
			values += "  exclude: [" + strings.Join(r.Exclude, ", ") + "]"
		}
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			string(r.Type),
			ui.Truncate(values, 60),
		})
	}
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.StyleMuted.Render("Rules are evaluated top to bottom; the first match wins."))
	return nil
}
