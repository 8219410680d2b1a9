package encode

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"time"

	"github.com/pkg/errors"
)

type PNGFormat struct{}

func (PNGFormat) Extensions() []string {
	return []string{"png"}
}

func (PNGFormat) Encode(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "png")
}

func (f PNGFormat) EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error {
	return sequence(w, stream, f.Encode)
}

type JPGFormat struct{}

func (JPGFormat) Extensions() []string {
	return []string{"jpg", "jpeg"}
}

func (JPGFormat) Encode(w io.Writer, img image.Image) error {
	return errors.Wrap(jpeg.Encode(w, img, nil), "jpeg")
}

func (f JPGFormat) EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error {
	return sequence(w, stream, f.Encode)
}

// RGB24Format writes raw 8-bit RGB triplets, row by row, without a header.
type RGB24Format struct{}

func (RGB24Format) Extensions() []string {
	return []string{}
}

func (RGB24Format) Encode(w io.Writer, img image.Image) error {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := 0; y < b.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			buf = append(buf, row[x], row[x+1], row[x+2])
		}
	}
	_, err := w.Write(buf)
	return err
}

func (f RGB24Format) EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error {
	return sequence(w, stream, f.Encode)
}

// RGBA32Format writes raw 8-bit RGBA quads, row by row, without a header.
type RGBA32Format struct{}

func (RGBA32Format) Extensions() []string {
	return []string{}
}

func (RGBA32Format) Encode(w io.Writer, img image.Image) error {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	for y := 0; y < b.Dy(); y++ {
		if _, err := w.Write(rgba.Pix[y*rgba.Stride : y*rgba.Stride+b.Dx()*4]); err != nil {
			return err
		}
	}
	return nil
}

func (f RGBA32Format) EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error {
	return sequence(w, stream, f.Encode)
}

type GIFFormat struct{}

func (GIFFormat) Extensions() []string {
	return []string{"gif"}
}

func (f GIFFormat) Encode(w io.Writer, img image.Image) error {
	// Forward to the code stream encoder for easy code reuse.
	stream := make(chan image.Image, 1)
	stream <- img
	close(stream)
	return f.EncodeAnimation(w, stream, 0)
}

func (GIFFormat) EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error {
	gifImg := &gif.GIF{}
	for img := range stream {
		frame := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(frame, img.Bounds(), img, img.Bounds().Min, draw.Src)
		gifImg.Image = append(gifImg.Image, frame)
		gifImg.Delay = append(gifImg.Delay, int(interval/(time.Second/100)))
		gifImg.Disposal = append(gifImg.Disposal, gif.DisposalBackground)
	}
	if len(gifImg.Image) == 0 {
		return errors.New("gif: no frames")
	}
	return errors.Wrap(gif.EncodeAll(w, gifImg), "gif")
}

// toRGBA returns img as an *image.RGBA with its origin at (0, 0), converting
// when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
