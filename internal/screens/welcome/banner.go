package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗  █████╗ ███╗   ███╗███╗   ███╗ █████╗ ██████╗  ██████╗ ██╗     ██╗
 ██╔════╝ ██╔══██╗██╔══██╗████╗ ████║████╗ ████║██╔══██╗██╔══██╗██╔═══██╗██║     ██║
 ██║  ███╗██████╔╝███████║██╔████╔██║██╔████╔██║███████║██████╔╝██║   ██║██║     ██║
 ██║   ██║██╔══██╗██╔══██║██║╚██╔╝██║██║╚██╔╝██║██╔══██║██╔══██╗██║   ██║██║     ██║
 ╚██████╔╝██║  ██║██║  ██║██║ ╚═╝ ██║██║ ╚═╝ ██║██║  ██║██║  ██║╚██████╔╝███████╗███████╗
  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝`

const bannerCompact = "G R A M M A R O L L"

const tagline = "find the subject, find the predicate, build the diagram"

// RenderBanner returns the GRAMMAROLL banner styled in the primary
// color. Uses a compact fallback for terminals narrower than 92 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 92 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
