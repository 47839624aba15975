package playing

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/masks/internal/infrastructure/config"
)

// Fallback colours when a theme leaves a field empty or malformed
var (
	defaultSky      = color.RGBA{26, 26, 46, 255}
	defaultPlatform = color.RGBA{80, 80, 100, 255}
	defaultPlayer   = color.RGBA{100, 200, 100, 255}
	defaultGoal     = color.RGBA{255, 215, 0, 255}

	colorOverlay = color.RGBA{0, 0, 0, 160}
	colorDead    = color.RGBA{100, 0, 0, 180}
)

// palette is the resolved set of fill colours for one level
type palette struct {
	sky      color.RGBA
	platform color.RGBA
	player   color.RGBA
	goal     color.RGBA
	vignette color.RGBA // Zero alpha disables the overlay
}

func newPalette(theme config.ThemeConfig) palette {
	return palette{
		sky:      parseColor(theme.Sky, defaultSky),
		platform: parseColor(theme.Platform, defaultPlatform),
		player:   parseColor(theme.Player, defaultPlayer),
		goal:     parseColor(theme.Goal, defaultGoal),
		vignette: parseColor(theme.Vignette, color.RGBA{}),
	}
}

// parseColor reads #rrggbb or #rrggbbaa, returning fallback on anything else
func parseColor(s string, fallback color.RGBA) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		return fallback
	}
	return c
}

func parseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	// Theme colours are straight alpha; ebiten wants premultiplied
	nrgba := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
