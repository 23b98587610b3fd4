package render

import "github.com/lixenwraith/firemen/sprite"

// Renderer is the display service used by game tasks
// Coordinates are LCD pixels; draws are fire-and-forget and become visible on Show
type Renderer interface {
	// RenderPose draws an entity's asset at one of its precomputed poses
	RenderPose(e sprite.Entity, pose int)
	// ClearPose erases whatever an entity drew at a pose
	ClearPose(e sprite.Entity, pose int)
	// DrawText writes s starting at (x, y), replacing overlapped text
	DrawText(x, y int, s string)
	// DrawNumber writes n in decimal starting at (x, y)
	DrawNumber(x, y int, n int)
	// ClearScreen erases everything including the background
	ClearScreen()
	// DrawBackground paints the landscape wallpaper
	DrawBackground()
	// Show flushes pending draws to the display
	Show()
}
