package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"solview/internal/core/classify"
	"solview/internal/core/domain"
	"solview/internal/core/services"
	"solview/pkg/ui"
)

var (
	exploreView   string
	exploreSort   string
	exploreFilter string
)

var exploreCmd = &cobra.Command{
	Use:   "explore <address>",
	Short: "Interactive gallery explorer",
	Long: `Browse a wallet's artists and assets interactively.

Vim Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- l / → : Open Artist
- h / ← : Back to Artists
- y     : Copy asset image URL
- r     : Refresh (bypass cache)
- q     : Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().StringVar(&exploreView, "view", "owned", "View type (owned, created)")
	exploreCmd.Flags().StringVar(&exploreSort, "sort", "quantityDesc", "Sort key")
	exploreCmd.Flags().StringVar(&exploreFilter, "filter", "all", "Category filter")
}

func runExplore(cmd *cobra.Command, args []string) error {
	opts, err := parseGalleryOptions(cmd, exploreView, exploreSort, exploreFilter, "all")
	if err != nil {
		return err
	}

	m := newExploreModel(args[0], opts)
	p := tea.NewProgram(m)
	currentProgram = p

	// The pipeline runs off the UI goroutine; progress and the final
	// gallery arrive as messages.
	go loadGallery(p, args[0], opts, false)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

type progressMsg int

type galleryMsg struct {
	resp *services.GalleryResponse
	err  error
}

func loadGallery(p *tea.Program, address string, opts galleryOptions, refresh bool) {
	resp, err := galleryService.Execute(getContext(), services.GalleryRequest{
		Address:    address,
		View:       opts.View,
		Sort:       opts.Sort,
		Filter:     opts.Filter,
		Quantity:   opts.Quantity,
		Refresh:    refresh,
		OnProgress: func(pct int) { p.Send(progressMsg(pct)) },
	})
	if err == services.ErrStale {
		// A newer refresh is in flight; let its result win.
		return
	}
	p.Send(galleryMsg{resp: resp, err: err})
}

// --- TUI Model ---

type exploreModel struct {
	address string
	opts    galleryOptions

	loading  bool
	progress int
	spin     spinner.Model

	gallery domain.Gallery
	err     error

	// artist == -1 means the artist list; otherwise an asset list
	artist int
	cursor int
	status string
}

func newExploreModel(address string, opts galleryOptions) *exploreModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.StyleInfo
	return &exploreModel{
		address: address,
		opts:    opts,
		loading: true,
		spin:    s,
		artist:  -1,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.progress = int(msg)
		return m, nil

	case galleryMsg:
		m.loading = false
		m.err = msg.err
		if msg.resp != nil {
			m.gallery = msg.resp.Gallery
		}
		m.artist = -1
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case "right", "l", "enter":
		if m.artist == -1 && m.cursor < len(m.gallery.Groups) {
			m.artist = m.cursor
			m.cursor = 0
		}

	case "left", "h":
		if m.artist != -1 {
			m.cursor = m.artist
			m.artist = -1
		}

	case "y":
		m.copyImageURL()

	case "r":
		if !m.loading {
			m.loading = true
			m.progress = 0
			m.status = ""
			// Request token handling in the service discards the
			// slower run if keys race.
			p := currentProgram
			if p != nil {
				go loadGallery(p, m.address, m.opts, true)
			}
			return m, m.spin.Tick
		}
	}
	return m, nil
}

func (m *exploreModel) listLen() int {
	if m.artist == -1 {
		return len(m.gallery.Groups)
	}
	return len(m.gallery.Groups[m.artist].Assets)
}

func (m *exploreModel) copyImageURL() {
	if m.artist == -1 || m.cursor >= m.listLen() {
		return
	}
	asset := m.gallery.Groups[m.artist].Assets[m.cursor]
	url := asset.ImageURL
	if url == "" {
		url = asset.AnimationURL
	}
	if url == "" {
		m.status = "no image URL on this asset"
		return
	}
	if err := clipboard.WriteAll(url); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = "image URL copied"
}

func (m *exploreModel) View() string {
	var s strings.Builder
	s.WriteString("\n")

	if m.loading {
		s.WriteString(fmt.Sprintf(" %s loading %s… %d%%\n",
			m.spin.View(), m.address, m.progress))
		return s.String()
	}
	if m.err != nil {
		s.WriteString(ui.FormatError("Failed to load gallery: "+m.err.Error()) + "\n")
		s.WriteString(ui.StyleMuted.Render(" [q] Quit") + "\n")
		return s.String()
	}

	if m.artist == -1 {
		s.WriteString(ui.StyleTitle.Render(" Artists") +
			ui.StyleMuted.Render(fmt.Sprintf("  (%s, %s)", m.opts.Filter, m.address)))
		s.WriteString("\n\n")
		if len(m.gallery.Groups) == 0 {
			s.WriteString(ui.StyleMuted.Render("  (no artists in this view)"))
			s.WriteString("\n")
		}
		for i, g := range m.gallery.Groups {
			line := fmt.Sprintf("%s (%d)", classify.ProjectDisplayName(g.Name), len(g.Assets))
			s.WriteString(m.renderRow(i, line))
		}
	} else {
		g := m.gallery.Groups[m.artist]
		s.WriteString(ui.StyleTitle.Render(" " + classify.ProjectDisplayName(g.Name)))
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf("  %s", pluralize(len(g.Assets), "asset"))))
		s.WriteString("\n\n")
		for i, a := range g.Assets {
			name := a.Name
			if name == "" {
				name = a.ID
			}
			if a.HasAnimation() {
				name += " ▶"
			}
			s.WriteString(m.renderRow(i, name))
		}
	}

	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(ui.StyleSuccess.Render(" "+m.status) + "\n")
	}
	s.WriteString(ui.StyleMuted.Render(" [k/j] Navigate  [l] Open  [h] Back  [y] Copy URL  [r] Refresh  [q] Quit"))
	s.WriteString("\n")
	return s.String()
}

func (m *exploreModel) renderRow(i int, line string) string {
	if m.cursor == i {
		return ui.StyleAccent.Render("→ ") + ui.StyleBold.Render(line) + "\n"
	}
	return "  " + ui.StyleMuted.Render(line) + "\n"
}

// currentProgram lets key handlers kick off background loads. Set by
// runExplore before Run and only read from the UI goroutine.
var currentProgram *tea.Program
