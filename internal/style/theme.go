package style

import "strings"

// Theme holds the colour slots used by the table. Values are anything
// lipgloss.Color accepts: ANSI indices ("1", "244") or hex ("#c94f6d").
type Theme struct {
	Name string

	// Address and raw byte columns
	Index       string
	IndexZeros  string
	IndexPrefix string
	IndexBg     string

	// Glyph cell
	Glyph   string
	GlyphBg string

	// Text
	Plain     string
	Faint     string
	Highlight string

	// Category families
	Control      string
	ControlAlt   string
	Separator    string
	SeparatorAlt string
	Number       string
	Punctuation  string
	Symbol       string
	Mark         string
	Invalid      string
	Unassigned   string
	Surrogate    string
	SurrogateBg  string
	PrivateUse   string
	PrivateUseBg string
}

var themes = map[string]Theme{
	"default":  defaultTheme(),
	"nightfox": nightfoxTheme(),
	"kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"default", "nightfox", "kanagawa"}

// GetTheme returns a theme by name, case-insensitively. Unknown names fall
// back to the default theme.
func GetTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return defaultTheme()
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func defaultTheme() Theme {
	// 16-colour ANSI plus a few greys from the 256-colour ramp.
	return Theme{
		Name: "default",

		Index:       "244", // grey 50%
		IndexZeros:  "237", // grey 23%
		IndexPrefix: "239", // grey 30%
		IndexBg:     "0",

		Glyph:   "15",
		GlyphBg: "0",

		Plain:     "244",
		Faint:     "239",
		Highlight: "15",

		Control:      "1",
		ControlAlt:   "9",
		Separator:    "6",
		SeparatorAlt: "14",
		Number:       "4",
		Punctuation:  "3",
		Symbol:       "2",
		Mark:         "11",
		Invalid:      "5",
		Unassigned:   "8",
		Surrogate:    "11",
		SurrogateBg:  "88",
		PrivateUse:   "0",
		PrivateUseBg: "1",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "nightfox",

		Index:       "#71839b", // fg3
		IndexZeros:  "#39506d", // bg4
		IndexPrefix: "#738091", // comment
		IndexBg:     "#131a24", // bg0

		Glyph:   "#cdcecf", // fg1
		GlyphBg: "#131a24", // bg0

		Plain:     "#aeafb0", // fg2
		Faint:     "#738091", // comment
		Highlight: "#dfdfe0", // white bright

		Control:      "#c94f6d", // red
		ControlAlt:   "#d16983", // red bright
		Separator:    "#63cdcf", // cyan
		SeparatorAlt: "#7ad5d6", // cyan bright
		Number:       "#719cd6", // blue
		Punctuation:  "#dbc074", // yellow
		Symbol:       "#81b29a", // green
		Mark:         "#f4a261", // orange
		Invalid:      "#9d79d6", // magenta
		Unassigned:   "#575860", // black bright
		Surrogate:    "#e0c989", // yellow bright
		SurrogateBg:  "#8a3a4e", // red dim
		PrivateUse:   "#131a24", // bg0
		PrivateUseBg: "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "kanagawa",

		Index:       "#727169", // fujiGray
		IndexZeros:  "#54546D", // sumiInk6
		IndexPrefix: "#625e5a", // katanaGray
		IndexBg:     "#16161D", // sumiInk0

		Glyph:   "#DCD7BA", // fujiWhite
		GlyphBg: "#16161D", // sumiInk0

		Plain:     "#C8C093", // oldWhite
		Faint:     "#727169", // fujiGray
		Highlight: "#DCD7BA", // fujiWhite

		Control:      "#C34043", // autumnRed
		ControlAlt:   "#E82424", // samuraiRed
		Separator:    "#6A9589", // waveAqua1
		SeparatorAlt: "#7AA89F", // waveAqua2
		Number:       "#7E9CD8", // crystalBlue
		Punctuation:  "#C0A36E", // boatYellow2
		Symbol:       "#98BB6C", // springGreen
		Mark:         "#E6C384", // carpYellow
		Invalid:      "#957FB8", // oniViolet
		Unassigned:   "#54546D", // sumiInk6
		Surrogate:    "#FF9E3B", // roninYellow
		SurrogateBg:  "#43242B", // winterRed
		PrivateUse:   "#16161D", // sumiInk0
		PrivateUseBg: "#E46876", // waveRed
	}
}
