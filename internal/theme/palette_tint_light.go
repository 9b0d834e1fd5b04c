package theme

import "github.com/opencode-ai/tint/internal/color"

// tintLight mirrors tintDark for light terminal backgrounds.
var tintLight = &Theme{
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
		col("yellow", "yellow h220 #ffd700"),
		col("light_blue", "light_blue h75 #5fafff"),
		col("light_gray", "light_gray h250 g74"),
		col("white", "white h255 g93"),
		col("black_bold", "black g19 g19 , bold"),
		col("dark_blue_bold", "dark_blue h25 #005faf , bold"),
		col("dark_red_bold", "dark_red h88 #870000 , bold"),
		col("dark_blue_underline", "dark_blue h25 #005faf , underline"),
	),
	Styles: NewStyleTable(
		sty("default", "black", "white"),
		sty("selected", "black", "light_gray"),
		sty("header", "dark_blue_bold", "light_gray"),
		sty("footer", "white", "dark_gray"),
		sty("title", "black_bold", "white"),
		sty("bar", "black", "light_gray"),
		sty("popup_border", "dark_gray", "white"),
		sty("popup_contrast", "black", "light_gray"),
		sty("unread", "dark_blue_bold", "white"),
		sty("starred", "brown", "white"),
		sty("time", "dark_gray", "white"),
		sty("author", "black_bold", "white"),
		sty("mention", "dark_magenta", "white"),
		sty("link", "dark_blue_underline", "white"),
		sty("quote", "dark_cyan", "white"),
		sty("code", "dark_green", "light_gray"),
		sty("error", "dark_red_bold", "white"),
		sty("search_highlight", "black", "yellow"),
	),
	Meta: &Meta{
		Pygments: &Pygments{
			Styles: []TokenStyle{
				tok("", "#000000"),
				tok("k", "bold #8959a8"),
				tok("kd", "bold #8959a8"),
				tok("kn", "bold #8959a8"),
				tok("kr", "bold #8959a8"),
				tok("kt", "#4271ae"),
				tok("n", "#1d1f21"),
				tok("nc", "bold #c82829"),
				tok("nf", "#4271ae"),
				tok("o", "#3e999f"),
				tok("c", "italic #8e908c"),
				tok("c1", "italic #8e908c"),
				tok("s", "#718c00"),
				tok("sd", "#718c00"),
				tok("m", "#f5871f"),
				tok("w", "#1d1f21"),
				tok("err", "#c82829"),
			},
			Background: "h254",
			Overrides: map[string]string{
				"err": "#a3001b, bold",
			},
		},
	},
}
