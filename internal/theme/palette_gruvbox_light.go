package theme

import "github.com/opencode-ai/tint/internal/color"

// gruvboxLight adapts the gruvbox light palette.
var gruvboxLight = &Theme{
	Source: sourceBuiltin,
	Colors: color.NewPalette(
		col("default", "default default default"),
		col("light0_hard", "white h230 #f9f5d7"),
		col("light2", "light_gray h250 #d5c4a1"),
		col("gray_244", "dark_gray h244 #928374"),
		col("dark2", "dark_gray h239 #504945"),
		col("dark1", "black h237 #3c3836"),
		col("faded_blue", "dark_blue h24 #076678"),
		col("faded_green", "dark_green h100 #79740e"),
		col("faded_red", "dark_red h88 #9d0006"),
		col("faded_aqua", "dark_cyan h65 #427b58"),
		col("faded_purple", "dark_magenta h96 #8f3f71"),
		col("faded_orange", "brown h130 #af3a03"),
		col("faded_yellow", "yellow h136 #b57614"),
		col("neutral_yellow", "yellow h172 #d79921"),
		col("dark1_bold", "black h237 #3c3836 , bold"),
		col("faded_blue_bold", "dark_blue h24 #076678 , bold"),
		col("faded_blue_underline", "dark_blue h24 #076678 , underline"),
	),
	Styles: NewStyleTable(
		sty("default", "dark1", "light0_hard"),
		sty("selected", "dark1", "light2"),
		sty("header", "faded_blue_bold", "light2"),
		sty("footer", "light0_hard", "dark2"),
		sty("title", "dark1_bold", "light0_hard"),
		sty("bar", "dark1", "light2"),
		sty("popup_border", "dark2", "light0_hard"),
		sty("popup_contrast", "dark1", "light2"),
		sty("unread", "faded_blue_bold", "light0_hard"),
		sty("starred", "faded_orange", "light0_hard"),
		sty("time", "gray_244", "light0_hard"),
		sty("author", "dark1_bold", "light0_hard"),
		sty("mention", "faded_purple", "light0_hard"),
		sty("link", "faded_blue_underline", "light0_hard"),
		sty("quote", "faded_aqua", "light0_hard"),
		sty("code", "faded_green", "light2"),
		sty("error", "faded_red", "light0_hard"),
		sty("search_highlight", "dark1", "neutral_yellow"),
	),
	Meta: &Meta{
		Pygments: &Pygments{
			Styles: []TokenStyle{
				tok("", "#3c3836"),
				tok("k", "bold #9d0006"),
				tok("kd", "bold #9d0006"),
				tok("kn", "bold #9d0006"),
				tok("kr", "bold #9d0006"),
				tok("kt", "#b57614"),
				tok("n", "#3c3836"),
				tok("nc", "bold #427b58"),
				tok("nf", "#79740e"),
				tok("o", "#af3a03"),
				tok("c", "italic #928374"),
				tok("c1", "italic #928374"),
				tok("s", "#79740e"),
				tok("sd", "#79740e"),
				tok("m", "#8f3f71"),
				tok("w", "#3c3836"),
				tok("err", "#9d0006"),
			},
			Background: "h230",
			Overrides: map[string]string{
				"err": "#cc241d, bold",
			},
		},
	},
}
