package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// camera maps y-up world units to screen pixels, centred on focus.
type camera struct {
	focus  cp.Vector
	scale  float64
	width  float64
	height float64
}

func (c camera) toScreen(v cp.Vector) cp.Vector {
	return cp.Vector{
		X: (v.X-c.focus.X)*c.scale + c.width/2,
		Y: c.height/2 - (v.Y-c.focus.Y)*c.scale,
	}
}

func (c camera) drawLine(screen *ebiten.Image, a, b cp.Vector, clr color.Color) {
	sa, sb := c.toScreen(a), c.toScreen(b)
	ebitenutil.DrawLine(screen, sa.X, sa.Y, sb.X, sb.Y, clr)
}

// drawBox outlines a world-space box.
func (c camera) drawBox(screen *ebiten.Image, center, size cp.Vector, clr color.Color) {
	hw, hh := size.X/2, size.Y/2
	corners := [4]cp.Vector{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
	for i := range corners {
		c.drawLine(screen, corners[i], corners[(i+1)%len(corners)], clr)
	}
}

// spaceDrawer renders chipmunk shapes through the camera.
type spaceDrawer struct {
	screen *ebiten.Image
	cam    camera
}

func drawSpace(screen *ebiten.Image, space *cp.Space, cam camera) {
	if screen == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, cam: cam})
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.cam.drawLine(d.screen, prev, cur, c)
		prev = cur
	}
	d.cam.drawLine(d.screen, pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, c)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.cam.drawLine(d.screen, a, b, fcolorToRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.cam.drawLine(d.screen, a, b, fcolorToRGBA(outline))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	for i := 0; i < count; i++ {
		d.cam.drawLine(d.screen, verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	l := size / 2 / d.cam.scale
	d.cam.drawLine(d.screen, cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.cam.drawLine(d.screen, cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return rgbaToFColor(colornames.Limegreen)
}

// ShapeColor picks the outline: gold for triggers, blue for level geometry,
// crimson for characters.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return rgbaToFColor(colornames.White)
	}
	if shape.Sensor() {
		return rgbaToFColor(colornames.Gold)
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return rgbaToFColor(colornames.Cornflowerblue)
	}
	return rgbaToFColor(colornames.Crimson)
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return rgbaToFColor(colornames.Lightgrey)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return rgbaToFColor(colornames.Red)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func rgbaToFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
