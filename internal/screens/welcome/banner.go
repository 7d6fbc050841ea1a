package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ███╗   ███╗██████╗ ███████╗    ███████╗ ██████╗  ██╗
 ██╔════╝██╔═══██╗████╗ ████║██╔══██╗██╔════╝    ██╔════╝██╔════╝ ███║
 ██║     ██║   ██║██╔████╔██║██████╔╝█████╗      ███████╗███████╗ ╚██║
 ██║     ██║   ██║██║╚██╔╝██║██╔═══╝ ██╔══╝      ╚════██║██╔═══██╗ ██║
 ╚██████╗╚██████╔╝██║ ╚═╝ ██║██║     ███████╗    ███████║╚██████╔╝ ██║
  ╚═════╝ ╚═════╝ ╚═╝     ╚═╝╚═╝     ╚══════╝    ╚══════╝ ╚═════╝  ╚═╝`

const bannerCompact = "C O M P E   5 6 1"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 72 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
