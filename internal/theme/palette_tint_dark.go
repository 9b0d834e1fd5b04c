package theme

import "github.com/opencode-ai/tint/internal/color"

// tintDark is the default dark theme.
var tintDark = &Theme{
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
		col("light_magenta", "light_magenta h207 #ff5fff"),
		col("light_cyan", "light_cyan h87 #5fffff"),
		col("light_gray", "light_gray h250 g74"),
		col("white", "white h255 g93"),
		col("white_bold", "white h255 g93 , bold"),
		col("yellow_bold", "yellow h220 #ffd700 , bold"),
		col("light_blue_underline", "light_blue h75 #5fafff , underline"),
	),
	Styles: NewStyleTable(
		sty("default", "white", "black"),
		sty("selected", "white", "dark_blue"),
		sty("header", "white_bold", "dark_blue"),
		sty("footer", "black", "light_gray"),
		sty("title", "white_bold", "black"),
		sty("bar", "white", "dark_gray"),
		sty("popup_border", "light_gray", "black"),
		sty("popup_contrast", "white", "dark_gray"),
		sty("unread", "yellow_bold", "black"),
		sty("starred", "yellow", "black"),
		sty("time", "light_gray", "black"),
		sty("author", "white_bold", "black"),
		sty("mention", "light_magenta", "black"),
		sty("link", "light_blue_underline", "black"),
		sty("quote", "light_cyan", "black"),
		sty("code", "light_green", "dark_gray"),
		sty("error", "light_red", "black"),
		sty("search_highlight", "black", "yellow"),
	),
	Meta: &Meta{
		Pygments: &Pygments{
			Styles: []TokenStyle{
				tok("", "#f8f8f2"),
				tok("k", "bold #ff79c6"),
				tok("kd", "bold #ff79c6"),
				tok("kn", "bold #ff79c6"),
				tok("kr", "bold #ff79c6"),
				tok("kt", "#8be9fd"),
				tok("n", "#f8f8f2"),
				tok("nc", "bold #50fa7b"),
				tok("nf", "#50fa7b"),
				tok("o", "#ff79c6"),
				tok("c", "italic #6272a4"),
				tok("c1", "italic #6272a4"),
				tok("s", "#f1fa8c"),
				tok("sd", "#f1fa8c"),
				tok("m", "#bd93f9"),
				tok("w", "#f8f8f2"),
				tok("err", "#ff5555"),
			},
			Background: "h235",
			Overrides: map[string]string{
				"err": "#ff5555, bold",
			},
		},
	},
}
