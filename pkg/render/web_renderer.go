package render

import (
	"image/color"

	"go-tempest/pkg/web"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WebRenderer рисует паутину уровня. Паутина меняется только при смене
// уровня, поэтому она рисуется в отдельное изображение один раз.
type WebRenderer struct {
	colors       WebColors
	screenWidth  int
	screenHeight int
	webImage     *ebiten.Image // предрендеренная паутина
	renderedFor  int           // уровень, для которого готов webImage
	dimmed       bool
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
}

func NewWebRenderer(colors WebColors, screenWidth, screenHeight int) *WebRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &WebRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		webImage:     ebiten.NewImage(screenWidth, screenHeight),
		renderedFor:  -1,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 32),
		fillIs:       make([]uint16, 0, 48),
	}
}

// RenderWebImage перерисовывает задник для новой паутины.
func (r *WebRenderer) RenderWebImage(g web.Geometry, level int, dimmed bool) {
	r.webImage.Clear()

	colors := r.colors
	if dimmed {
		colors = colors.Darkened()
	}
	n := g.LaneCount()
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		strokeSegment(r.webImage, g.Inner[i], g.Outer[i], colors.StrokeWidth, colors.LaneColor)
		strokeSegment(r.webImage, g.Inner[i], g.Inner[next], colors.StrokeWidth, colors.InnerRingColor)
		strokeSegment(r.webImage, g.Outer[i], g.Outer[next], colors.StrokeWidth, colors.OuterRingColor)
	}
	r.renderedFor = level
	r.dimmed = dimmed
}

// Draw рисует паутину одним вызовом, перестраивая задник при смене уровня.
func (r *WebRenderer) Draw(screen *ebiten.Image, g web.Geometry, level int, dimmed bool) {
	screen.Fill(r.colors.BackgroundColor)
	if level != r.renderedFor || dimmed != r.dimmed {
		r.RenderWebImage(g, level, dimmed)
	}
	screen.DrawImage(r.webImage, nil)
}

// FillPolygon заливает замкнутый многоугольник.
func (r *WebRenderer) FillPolygon(target *ebiten.Image, pts []web.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func strokeSegment(target *ebiten.Image, a, b web.Point, width float32, clr color.RGBA) {
	vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}
