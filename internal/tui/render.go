// Package tui рисует снимок игры в терминале через tcell.
package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/pkg/web"
)

// Grid — та часть tcell.Screen, которая нужна отрисовке.
type Grid interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

const (
	laneSamples = 12 // точек на одну линию паутины

	glyphLane       = '.'
	glyphInner      = 'o'
	glyphOuter      = '+'
	glyphProjectile = '|'
	glyphBurst      = '#'
	glyphPlayer     = 'A'
)

var (
	styleLane       = styleOf(config.LaneColor)
	styleInner      = styleOf(config.InnerRingColor)
	styleOuter      = styleOf(config.OuterRingColor)
	styleProjectile = styleOf(config.ProjectileColor)
	styleBurst      = styleOf(config.BurstColor)
	stylePlayer     = styleOf(config.PlayerColor).Bold(true)
	styleText       = styleOf(config.TextLightColor)
	styleGameOver   = styleOf(config.GameOverColor).Bold(true)
)

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// projection переводит экранные координаты паутины в клетки терминала.
// Клетка примерно вдвое выше своей ширины, поэтому по X шаг удвоен.
type projection struct {
	center     web.Point
	originCol  int
	originRow  int
	rowsPerPix float64
}

func newProjection(g web.Geometry, center web.Point, width, height int) projection {
	var maxDX, maxDY float64
	for _, pts := range [][]web.Point{g.Inner, g.Outer} {
		for _, p := range pts {
			maxDX = math.Max(maxDX, math.Abs(p.X-center.X))
			maxDY = math.Max(maxDY, math.Abs(p.Y-center.Y))
		}
	}
	// Верхняя строка занята сводкой.
	playRows := height - 1
	scale := math.Inf(1)
	if maxDX > 0 {
		scale = math.Min(scale, float64(width/2-1)/(2*maxDX))
	}
	if maxDY > 0 {
		scale = math.Min(scale, float64(playRows/2-1)/maxDY)
	}
	if math.IsInf(scale, 1) || scale < 0 {
		scale = 0
	}
	return projection{
		center:     center,
		originCol:  width / 2,
		originRow:  1 + playRows/2,
		rowsPerPix: scale,
	}
}

func (p projection) cell(pt web.Point) (int, int) {
	col := p.originCol + int(math.Round((pt.X-p.center.X)*2*p.rowsPerPix))
	row := p.originRow + int(math.Round((pt.Y-p.center.Y)*p.rowsPerPix))
	return col, row
}

// Renderer рисует паутину, сущности и сводку.
type Renderer struct {
	center web.Point
}

func NewRenderer(center web.Point) *Renderer {
	return &Renderer{center: center}
}

// Draw полностью перерисовывает grid по снимку.
func (r *Renderer) Draw(grid Grid, snap entity.Snapshot) {
	width, height := grid.Size()
	if width <= 0 || height <= 0 {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	proj := newProjection(snap.Web, r.center, width, height)
	put := func(pt web.Point, ch rune, style tcell.Style) {
		x, y := proj.cell(pt)
		if x < 0 || y < 1 || x >= width || y >= height {
			return
		}
		grid.SetContent(x, y, ch, nil, style)
	}

	for i := 0; i < snap.Web.LaneCount(); i++ {
		inner, outer := snap.Web.Lane(i)
		for s := 1; s < laneSamples; s++ {
			put(inner.Lerp(outer, float64(s)/laneSamples), glyphLane, styleLane)
		}
		put(inner, glyphInner, styleInner)
		put(outer, glyphOuter, styleOuter)
	}

	for _, b := range snap.Bursts {
		put(b.Position, glyphBurst, styleBurst)
	}
	for _, p := range snap.Projectiles {
		put(p.Position, glyphProjectile, styleProjectile)
	}
	for _, e := range snap.Enemies {
		def := defs.EnemyLibrary[e.Type]
		put(e.Position, def.Glyph, styleOf(def.Color))
	}

	playerStyle := stylePlayer
	if snap.GameOver {
		playerStyle = styleGameOver
	}
	put(snap.Player.Position, glyphPlayer, playerStyle)

	writeText(grid, 0, 0, width, statusLine(snap), styleText)
	if snap.GameOver {
		msg := "GAME OVER - Esc to quit"
		writeText(grid, (width-len(msg))/2, 1+(height-1)/2, width, msg, styleGameOver)
	}
}

func statusLine(snap entity.Snapshot) string {
	return fmt.Sprintf("L%d %s  SCORE %d  KILLS %d/%d  ZAP %d",
		snap.Level+1, snap.Config.Shape, snap.Player.Score, snap.Kills, snap.Config.KillQuota, snap.Player.SuperzapperCharges)
}

func writeText(grid Grid, x, y, width int, msg string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, ch := range []rune(msg) {
		if x+i >= width {
			return
		}
		grid.SetContent(x+i, y, ch, nil, style)
	}
}
