package util

import "image/color"

// Colours shared by every host: live cells are drawn in orange over a
// green background.
var (
	Background = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LiveCell   = color.RGBA{R: 255, G: 128, B: 0, A: 255}
)
