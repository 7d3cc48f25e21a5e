package ui

import (
	"github.com/charmbracelet/lipgloss"

	"solview/internal/core/domain"
)

var (
	// Color palette using terminal colors for consistency
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Magenta/Purple
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"} // Cyan
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"} // Blue

	// Base styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Component styles
	StyleTitle       lipgloss.Style
	StyleBold        lipgloss.Style
	StyleTableHeader lipgloss.Style
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the specified color theme ("auto", "dark", "light").
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		// Auto: lipgloss detects automatically
	}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
}

// FormatError renders an error line.
func FormatError(msg string) string {
	return StyleError.Render("✘ " + msg)
}

// FormatWarning renders a warning line.
func FormatWarning(msg string) string {
	return StyleWarning.Render("⚠ " + msg)
}

// FormatInfo renders an informational line.
func FormatInfo(msg string) string {
	return StyleInfo.Render("ℹ " + msg)
}

// FormatSuccess renders a success line.
func FormatSuccess(msg string) string {
	return StyleSuccess.Render("✔ " + msg)
}

// FormatTitle renders a section title.
func FormatTitle(msg string) string {
	return StyleTitle.Render(msg)
}

// RenderKeyValue renders an aligned "Key: value" line.
func RenderKeyValue(key, value string) string {
	return StyleBold.Render(key+": ") + value
}

// CategoryBadge renders the short colored marker shown next to a category.
func CategoryBadge(cat domain.Category) string {
	switch cat {
	case domain.CategoryDrip:
		return StyleInfo.Render("💧 drip")
	case domain.CategoryLegit:
		return StyleSuccess.Render("★ legit")
	case domain.CategorySpam:
		return StyleError.Render("✘ spam")
	case domain.CategoryUnclassified:
		return StyleMuted.Render("? ???")
	default:
		return StyleAccent.Render("all")
	}
}
