package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/jtestard/classic-pong/fonts"
	"golang.org/x/image/font"
)

type discKey struct {
	radius int
	clr    color.RGBA
}

// Canvas draws onto the ebiten screen image of the current frame.
// Errors from ebiten are kept and returned by the next Present.
type Canvas struct {
	screen *ebiten.Image
	face   font.Face
	ascent int
	discs  map[discKey]*ebiten.Image
	err    error
}

// NewCanvas creates a canvas rendering text with face.
func NewCanvas(face font.Face) *Canvas {
	return &Canvas{
		face:   face,
		ascent: fonts.Ascent(face),
		discs:  make(map[discKey]*ebiten.Image),
	}
}

// SetTarget sets the image the next frame is drawn on.
func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) keep(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Canvas) Fill(clr color.Color) {
	c.keep(c.screen.Fill(clr))
}

func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	ebitenutil.DrawRect(c.screen, float64(x), float64(y), float64(w), float64(h), clr)
}

func (c *Canvas) FillCircle(x, y, r int, clr color.Color) {
	disc, err := c.disc(r, clr)
	if err != nil {
		c.keep(err)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-r), float64(y-r))
	c.keep(c.screen.DrawImage(disc, op))
}

// disc returns a cached image of a filled circle.
func (c *Canvas) disc(r int, clr color.Color) (*ebiten.Image, error) {
	key := discKey{radius: r, clr: color.RGBAModel.Convert(clr).(color.RGBA)}
	if img, ok := c.discs[key]; ok {
		return img, nil
	}

	img, err := ebiten.NewImageFromImage(discImage(r, key.clr), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	c.discs[key] = img
	return img, nil
}

// discImage rasterizes a circle of radius r centered in a (2r+1)-pixel square.
func discImage(r int, clr color.RGBA) *image.RGBA {
	size := 2*r + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx, dy := px-r, py-r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(px, py, clr)
			}
		}
	}
	return img
}

func (c *Canvas) DrawText(s string, x, y int, clr color.Color) {
	text.Draw(c.screen, s, c.face, x, y+c.ascent, clr)
}

func (c *Canvas) TextSize(s string) (int, int) {
	return fonts.Measure(c.face, s)
}

// Present reports the first drawing error of the frame. ebiten shows the
// screen itself once Update returns.
func (c *Canvas) Present() error {
	err := c.err
	c.err = nil
	return err
}
