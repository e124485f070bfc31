// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Cell text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#BBBBBB"} // Status bar
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Accent (focus, cursor, active header)
	AccentPrimaryColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Mode indicator colors
	VimNormalModeColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	VimInsertModeColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	VimHeaderModeColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	VimVisualModeColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	VimSearchModeColor = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}

	// Grid colors
	GridHeaderColor       = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#C9C9C9"}
	GridHeaderActiveColor = AccentPrimaryColor
	GridRuleColor         = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#4A4A4A"}
	GridCursorFgColor     = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	GridCursorBgColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#1A5276"}
	GridSelectionBgColor  = lipgloss.AdaptiveColor{Light: "#DCE4F7", Dark: "#3B3052"}
	GridZebraBgColor      = lipgloss.AdaptiveColor{Light: "#F2F2F2", Dark: "#1F1F1F"}

	// Overlay colors
	OverlayTitleColor         = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#C9C9C9"}
	OverlayBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	BorderHighlightFocusColor = AccentPrimaryColor

	// Toast notification colors
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = AccentPrimaryColor
	ToastBorderWarnColor    = StatusWarningColor

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)
)
