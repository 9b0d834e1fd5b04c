package theme

import "github.com/opencode-ai/tint/internal/color"

// tintBlue is a mid-contrast theme on a blue canvas.
var tintBlue = &Theme{
	Source: sourceBuiltin,
	Colors: color.NewPalette(
		col("default", "default default default"),
		col("black", "black g19 g19"),
		col("dark_red", "dark_red h88 #870000"),
		col("dark_green", "dark_green h22 #005f00"),
		col("brown", "brown h94 #875f00"),
		col("dark_blue", "dark_blue h25 #005faf"),
		col("dark_magenta", "dark_magenta h90 #870087"),
		col("dark_cyan", "dark_cyan h30 #008787"),
		col("dark_gray", "dark_gray h245 g54"),
		col("light_red", "light_red h196 #ff0000"),
		col("light_green", "light_green h40 #00d700"),
		col("yellow", "yellow h220 #ffd700"),
		col("light_blue", "light_blue h75 #5fafff"),
		col("light_cyan", "light_cyan h87 #5fffff"),
		col("light_gray", "light_gray h250 g74"),
		col("white", "white h255 g93"),
		col("white_bold", "white h255 g93 , bold"),
		col("yellow_bold", "yellow h220 #ffd700 , bold"),
		col("light_cyan_underline", "light_cyan h87 #5fffff , underline"),
	),
	Styles: NewStyleTable(
		sty("default", "white", "dark_blue"),
		sty("selected", "dark_blue", "light_gray"),
		sty("header", "white_bold", "dark_cyan"),
		sty("footer", "dark_blue", "light_gray"),
		sty("title", "white_bold", "dark_blue"),
		sty("bar", "white", "dark_cyan"),
		sty("popup_border", "light_gray", "dark_blue"),
		sty("popup_contrast", "white", "dark_cyan"),
		sty("unread", "yellow_bold", "dark_blue"),
		sty("starred", "yellow", "dark_blue"),
		sty("time", "light_gray", "dark_blue"),
		sty("author", "white_bold", "dark_blue"),
		sty("mention", "light_red", "dark_blue"),
		sty("link", "light_cyan_underline", "dark_blue"),
		sty("quote", "light_cyan", "dark_blue"),
		sty("code", "light_green", "black"),
		sty("error", "light_red", "dark_blue"),
		sty("search_highlight", "dark_blue", "yellow"),
	),
	Meta: &Meta{
		Pygments: &Pygments{
			Styles: []TokenStyle{
				tok("", "#e8f0ff"),
				tok("k", "bold #ffd75f"),
				tok("kd", "bold #ffd75f"),
				tok("kn", "bold #ffd75f"),
				tok("kr", "bold #ffd75f"),
				tok("kt", "#5fffff"),
				tok("n", "#e8f0ff"),
				tok("nc", "bold #5fffaf"),
				tok("nf", "#5fffaf"),
				tok("o", "#ffd75f"),
				tok("c", "italic #87afd7"),
				tok("c1", "italic #87afd7"),
				tok("s", "#afff87"),
				tok("sd", "#afff87"),
				tok("m", "#ff87d7"),
				tok("w", "#e8f0ff"),
				tok("err", "#ff5f5f"),
			},
			Background: "h24",
			Overrides: map[string]string{
				"err": "#ff0000, bold",
			},
		},
	},
}
