package focus

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	debugBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	debugOutline    = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
	debugDisabled   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	debugFocused    = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	debugTracking   = color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0x60}
	debugLabel      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// RenderDebug writes a PNG showing every registered layout. The focused
// item is filled, ancestors holding focus are tinted and each box is
// labelled with its key.
func (n *Navigator) RenderDebug(w io.Writer, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render debug: invalid size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(debugBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for _, key := range n.order {
		e := n.focusables[key]
		r := e.rect()
		if !r.IsValid() {
			continue
		}
		box := image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)).Intersect(img.Bounds())
		if box.Empty() {
			continue
		}

		switch {
		case key == n.focusKey:
			draw.Draw(img, box, image.NewUniform(debugFocused), image.Point{}, draw.Over)
		case slices.Contains(n.parentsHavingFocusedChild, key):
			draw.Draw(img, box, image.NewUniform(debugTracking), image.Point{}, draw.Over)
		}

		outline := debugOutline
		if !e.Focusable {
			outline = debugDisabled
		}
		strokeRect(img, box, outline)

		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(debugLabel),
			Face: face,
			Dot:  fixed.P(box.Min.X+3, box.Min.Y+face.Ascent+2),
		}
		d.DrawString(key)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render debug: %w", err)
	}
	return nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
