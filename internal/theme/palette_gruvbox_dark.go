package theme

import "github.com/opencode-ai/tint/internal/color"

// gruvboxDark adapts the gruvbox dark palette.
var gruvboxDark = &Theme{
	Source: sourceBuiltin,
	Colors: color.NewPalette(
		col("default", "default default default"),
		col("dark0_hard", "black h234 #1d2021"),
		col("dark2", "dark_gray h239 #504945"),
		col("gray_244", "dark_gray h244 #928374"),
		col("light2", "white h250 #d5c4a1"),
		col("light4", "light_gray h246 #a89984"),
		col("bright_blue", "light_blue h109 #83a598"),
		col("bright_green", "light_green h142 #b8bb26"),
		col("bright_red", "light_red h167 #fb4934"),
		col("bright_aqua", "light_cyan h108 #8ec07c"),
		col("bright_purple", "light_magenta h175 #d3869b"),
		col("bright_orange", "brown h208 #fe8019"),
		col("bright_yellow", "yellow h214 #fabd2f"),
		col("neutral_blue", "dark_blue h66 #458588"),
		col("neutral_yellow", "yellow h172 #d79921"),
		col("faded_red", "dark_red h88 #9d0006"),
		col("light2_bold", "white h250 #d5c4a1 , bold"),
		col("bright_yellow_bold", "yellow h214 #fabd2f , bold"),
		col("bright_blue_underline", "light_blue h109 #83a598 , underline"),
	),
	Styles: NewStyleTable(
		sty("default", "light2", "dark0_hard"),
		sty("selected", "light2", "dark2"),
		sty("header", "light2_bold", "neutral_blue"),
		sty("footer", "dark0_hard", "light4"),
		sty("title", "light2_bold", "dark0_hard"),
		sty("bar", "light2", "dark2"),
		sty("popup_border", "light4", "dark0_hard"),
		sty("popup_contrast", "light2", "dark2"),
		sty("unread", "bright_yellow_bold", "dark0_hard"),
		sty("starred", "bright_yellow", "dark0_hard"),
		sty("time", "gray_244", "dark0_hard"),
		sty("author", "light2_bold", "dark0_hard"),
		sty("mention", "bright_purple", "dark0_hard"),
		sty("link", "bright_blue_underline", "dark0_hard"),
		sty("quote", "bright_aqua", "dark0_hard"),
		sty("code", "bright_green", "dark2"),
		sty("error", "bright_red", "dark0_hard"),
		sty("search_highlight", "dark0_hard", "neutral_yellow"),
	),
	Meta: &Meta{
		Pygments: &Pygments{
			Styles: []TokenStyle{
				tok("", "#ebdbb2"),
				tok("k", "bold #fb4934"),
				tok("kd", "bold #fb4934"),
				tok("kn", "bold #fb4934"),
				tok("kr", "bold #fb4934"),
				tok("kt", "#fabd2f"),
				tok("n", "#ebdbb2"),
				tok("nc", "bold #8ec07c"),
				tok("nf", "#b8bb26"),
				tok("o", "#fe8019"),
				tok("c", "italic #928374"),
				tok("c1", "italic #928374"),
				tok("s", "#b8bb26"),
				tok("sd", "#b8bb26"),
				tok("m", "#d3869b"),
				tok("w", "#ebdbb2"),
				tok("err", "#fb4934"),
			},
			Background: "h234",
			Overrides: map[string]string{
				"err": "#9d0006, bold",
			},
		},
	},
}
