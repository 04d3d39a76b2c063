package style

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/loom/terminal"
)

// themeFile mirrors the TOML theme schema, all fields optional
// Colors are "#rrggbb" strings; missing fields keep the default value
type themeFile struct {
	Bg          string `toml:"bg"`
	Fg          string `toml:"fg"`
	Border      string `toml:"border"`
	Title       string `toml:"title"`
	HintFg      string `toml:"hint_fg"`
	Disable     string `toml:"disable"`
	HighlightBg string `toml:"highlight_bg"`
	HighlightFg string `toml:"highlight_fg"`
	MenuBg      string `toml:"menu_bg"`
	MenuFg      string `toml:"menu_fg"`
	StatusBg    string `toml:"status_bg"`
	StatusFg    string `toml:"status_fg"`
	ModalBg     string `toml:"modal_bg"`
	ButtonBg    string `toml:"button_bg"`
	ButtonFg    string `toml:"button_fg"`
	InputBg     string `toml:"input_bg"`
}

// LoadTheme reads a TOML theme file over DefaultTheme
// Unknown keys are ignored, malformed colors are an error
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return ParseTheme(string(data))
}

// ParseTheme parses TOML theme content over DefaultTheme
func ParseTheme(data string) (Theme, error) {
	var f themeFile
	if _, err := toml.Decode(data, &f); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}

	t := DefaultTheme()
	fields := []struct {
		src string
		dst *terminal.RGB
	}{
		{f.Bg, &t.Bg},
		{f.Fg, &t.Fg},
		{f.Border, &t.Border},
		{f.Title, &t.Title},
		{f.HintFg, &t.HintFg},
		{f.Disable, &t.Disable},
		{f.HighlightBg, &t.HighlightBg},
		{f.HighlightFg, &t.HighlightFg},
		{f.MenuBg, &t.MenuBg},
		{f.MenuFg, &t.MenuFg},
		{f.StatusBg, &t.StatusBg},
		{f.StatusFg, &t.StatusFg},
		{f.ModalBg, &t.ModalBg},
		{f.ButtonBg, &t.ButtonBg},
		{f.ButtonFg, &t.ButtonFg},
		{f.InputBg, &t.InputBg},
	}
	for _, fd := range fields {
		if fd.src == "" {
			continue
		}
		c, err := parseHexColor(fd.src)
		if err != nil {
			return Theme{}, err
		}
		*fd.dst = c
	}
	return t, nil
}

// parseHexColor parses "#rrggbb" into RGB
func parseHexColor(s string) (terminal.RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return terminal.RGB{}, fmt.Errorf("theme: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return terminal.RGB{}, fmt.Errorf("theme: bad color %q", s)
	}
	return terminal.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
