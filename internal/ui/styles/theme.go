package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds user color overrides. Empty strings keep the defaults.
type Theme struct {
	Accent  string // Cursor, active header, focus borders
	Muted   string // Hints, help text, grid rules
	Error   string // Error toasts
	Success string // Success toasts
}

// Validate reports the first override that is not a #RGB or #RRGGBB color.
func (t Theme) Validate() error {
	for name, value := range map[string]string{
		"accent":  t.Accent,
		"muted":   t.Muted,
		"error":   t.Error,
		"success": t.Success,
	} {
		if value != "" && !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", name, value)
		}
	}
	return nil
}

// ApplyTheme applies custom theme colors from configuration.
// Derived colors (cursor background, toast borders) follow their source color.
func ApplyTheme(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Accent != "" {
		AccentPrimaryColor = solid(t.Accent)
		VimNormalModeColor = AccentPrimaryColor
		GridHeaderActiveColor = AccentPrimaryColor
		GridCursorBgColor = AccentPrimaryColor
		BorderHighlightFocusColor = AccentPrimaryColor
		ToastBorderInfoColor = AccentPrimaryColor
	}
	if t.Muted != "" {
		TextMutedColor = solid(t.Muted)
		GridRuleColor = TextMutedColor
	}
	if t.Error != "" {
		StatusErrorColor = solid(t.Error)
		ToastBorderErrorColor = StatusErrorColor
	}
	if t.Success != "" {
		StatusSuccessColor = solid(t.Success)
		ToastBorderSuccessColor = StatusSuccessColor
	}
	return nil
}

// solid uses the same color for light and dark backgrounds.
func solid(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
