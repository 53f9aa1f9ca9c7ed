package render

import (
	"github.com/gdamore/tcell/v2"
)

// UpperHalfBlock carries two vertical pixels per terminal cell:
// foreground paints the upper pixel, background the lower
const UpperHalfBlock = '▀'

// FlushToScreen presents the framebuffer on a terminal screen, folding
// each pair of vertically adjacent pixel rows into one cell row. An odd
// trailing pixel row is dropped.
func FlushToScreen(fb *Framebuffer, screen tcell.Screen) {
	rows := fb.Height() / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < fb.Width(); cx++ {
			top, _ := fb.At(cx, cy*2)
			bot, _ := fb.At(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R()), int32(top.G()), int32(top.B()))).
				Background(tcell.NewRGBColor(int32(bot.R()), int32(bot.G()), int32(bot.B())))
			screen.SetContent(cx, cy, UpperHalfBlock, nil, style)
		}
	}
	screen.Show()
}
