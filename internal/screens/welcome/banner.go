package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/miguel/internal/ui/theme"
)

// BannerArt is the block-letter title, shared with the home board.
const BannerArt = `
███╗   ███╗██╗ ██████╗ ██╗   ██╗███████╗██╗
████╗ ████║██║██╔════╝ ██║   ██║██╔════╝██║
██╔████╔██║██║██║  ███╗██║   ██║█████╗  ██║
██║╚██╔╝██║██║██║   ██║██║   ██║██╔══╝  ██║
██║ ╚═╝ ██║██║╚██████╔╝╚██████╔╝███████╗███████╗
╚═╝     ╚═╝╚═╝ ╚═════╝  ╚═════╝ ╚══════╝╚══════╝`

const bannerCompact = "M I G U E L"

// RenderBanner returns the banner in the primary color, or a one-line
// version for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(BannerArt)
}
