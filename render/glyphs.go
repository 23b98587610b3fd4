package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/firemen/sprite"
)

// glyph is the cell art of one asset, one string per row
type glyph struct {
	rows  []string
	style tcell.Style
}

var (
	styleDefault    = tcell.StyleDefault
	styleDummy      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFiremen    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCrash      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleLife       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBackground = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFlames     = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
)

// Art sized to the sprite tables at 8x16 pixels per cell
var glyphs = map[sprite.Asset]glyph{
	sprite.AssetFiremen:  {[]string{" o    o ", "/|====|\\"}, styleFiremen},
	sprite.AssetCrash:    {[]string{" \\ * / ", "_x_x_x__"}, styleCrash},
	sprite.AssetDummy0:   {[]string{"\\o/ ", "/ \\ "}, styleDummy},
	sprite.AssetDummy90:  {[]string{"  o_", "-<  "}, styleDummy},
	sprite.AssetDummy180: {[]string{"\\ / ", "/o\\ "}, styleDummy},
	sprite.AssetDummy270: {[]string{"_o  ", "  >-"}, styleDummy},
	sprite.AssetLife:     {[]string{"<3"}, styleLife},
}

// Landscape: burning building on the left, ambulance on the right
var landscape = []struct {
	col, row int
	text     string
	style    tcell.Style
}{
	{0, 2, "^^", styleFlames},
	{0, 3, "##", styleBackground},
	{0, 4, "#", styleBackground},
	{0, 5, "#", styleBackground},
	{0, 6, "##", styleBackground},
	{0, 7, "##", styleBackground},
	{0, 8, "##", styleBackground},
	{0, 9, "##", styleBackground},
	{0, 10, "##", styleBackground},
	{0, 11, "##", styleBackground},
	{0, 12, "##", styleBackground},
	{0, 13, "##", styleBackground},
	{36, 12, " ___", styleBackground},
	{36, 13, "[_+_]", styleBackground},
	{0, 14, "########################################", styleBackground},
}
