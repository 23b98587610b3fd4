package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/sprite"
)

// layerOrder lists the sprite layers bottom to top
var layerOrder = []sprite.Entity{
	sprite.EntityCrash,
	sprite.EntityFiremen,
	sprite.EntityDummy,
	sprite.EntityLife,
}

// textItem is a retained HUD string anchored at a cell
type textItem struct {
	col, row int
	text     string
}

// TerminalRenderer emulates the LCD on a tcell screen
// Retained mode: draws update a scene model; Show repaints it bottom to top,
// so erasing one sprite never damages an overlapping one
// Not safe for concurrent use; owned by the task consumer
type TerminalRenderer struct {
	screen tcell.Screen

	background bool
	visible    map[sprite.Entity]map[int]bool
	texts      []textItem
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.ClearScreen()
	return r
}

// cellOf converts LCD pixels to a terminal cell
func cellOf(x, y int) (col, row int) {
	return x / constants.CellWidth, y / constants.CellHeight
}

// RenderPose marks a pose visible
func (r *TerminalRenderer) RenderPose(e sprite.Entity, pose int) {
	s := sprite.Of(e)
	if s == nil || pose < 0 || pose >= s.Count() {
		return
	}
	r.visible[e][pose] = true
}

// ClearPose hides a pose
func (r *TerminalRenderer) ClearPose(e sprite.Entity, pose int) {
	if poses, ok := r.visible[e]; ok {
		delete(poses, pose)
	}
}

// DrawText places text, dropping retained text it overlaps on the same row
func (r *TerminalRenderer) DrawText(x, y int, s string) {
	col, row := cellOf(x, y)
	end := col + len(s)

	kept := r.texts[:0]
	for _, t := range r.texts {
		if t.row == row && t.col < end && col < t.col+len(t.text) {
			continue
		}
		kept = append(kept, t)
	}
	r.texts = append(kept, textItem{col: col, row: row, text: s})
}

// DrawNumber places a decimal number
func (r *TerminalRenderer) DrawNumber(x, y int, n int) {
	r.DrawText(x, y, strconv.Itoa(n))
}

// ClearScreen drops the whole scene
func (r *TerminalRenderer) ClearScreen() {
	r.background = false
	r.texts = r.texts[:0]
	r.visible = make(map[sprite.Entity]map[int]bool, len(layerOrder))
	for _, e := range layerOrder {
		r.visible[e] = make(map[int]bool)
	}
}

// DrawBackground enables the landscape layer
func (r *TerminalRenderer) DrawBackground() {
	r.background = true
}

// Show repaints the scene and flushes it to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Clear()

	if r.background {
		for _, l := range landscape {
			r.putString(l.col, l.row, l.text, l.style)
		}
	}

	for _, e := range layerOrder {
		s := sprite.Of(e)
		for pose := 0; pose < s.Count(); pose++ {
			if r.visible[e][pose] {
				r.drawPose(s, pose)
			}
		}
	}

	for _, t := range r.texts {
		r.putString(t.col, t.row, t.text, styleDefault)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawPose(s *sprite.Sprite, pose int) {
	p := s.Poses[pose]
	g, ok := glyphs[p.Asset]
	if !ok {
		return
	}
	col, row := cellOf(p.X, p.Y)
	for dy, line := range g.rows {
		r.putString(col, row+dy, line, g.style)
	}
}

// putString writes runes left to right; spaces are transparent
func (r *TerminalRenderer) putString(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		if ch == ' ' {
			continue
		}
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

// Visible reports whether a pose is currently shown
func (r *TerminalRenderer) Visible(e sprite.Entity, pose int) bool {
	return r.visible[e][pose]
}
