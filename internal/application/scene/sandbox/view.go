package sandbox

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/kinetic/internal/domain/entity"
)

// axis picks a world component for a view axis
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// view projects two world axes onto a screen rectangle centered on a world point.
// Screen y grows downward, so v is flipped.
type view struct {
	bounds image.Rectangle
	u, v   axis
	ppm    float64

	centerU, centerV float64
}

func (vw view) toScreen(u, v float64) (float64, float64) {
	cx := float64(vw.bounds.Min.X) + float64(vw.bounds.Dx())/2
	cy := float64(vw.bounds.Min.Y) + float64(vw.bounds.Dy())/2
	return cx + (u-vw.centerU)*vw.ppm, cy - (v-vw.centerV)*vw.ppm
}

// rect returns the screen rectangle covering [u0,u1]×[v0,v1]
func (vw view) rect(u0, v0, u1, v1 float64) (x, y, w, h float64) {
	x0, y0 := vw.toScreen(u0, v1)
	x1, y1 := vw.toScreen(u1, v0)
	return x0, y0, x1 - x0, y1 - y0
}

func (vw view) boxRect(b entity.Box) (x, y, w, h float64) {
	return vw.rect(b.Min[vw.u], b.Min[vw.v], b.Max[vw.u], b.Max[vw.v])
}

// clip returns the part of screen this view may draw into
func (vw view) clip(screen *ebiten.Image) *ebiten.Image {
	return screen.SubImage(vw.bounds).(*ebiten.Image)
}

func (vw view) fillBox(dst *ebiten.Image, b entity.Box, c color.Color) {
	x, y, w, h := vw.boxRect(b)
	ebitenutil.DrawRect(dst, x, y, w, h, c)
}

func (vw view) line(dst *ebiten.Image, u0, v0, u1, v1 float64, c color.Color) {
	x0, y0 := vw.toScreen(u0, v0)
	x1, y1 := vw.toScreen(u1, v1)
	ebitenutil.DrawLine(dst, x0, y0, x1, y1, c)
}
