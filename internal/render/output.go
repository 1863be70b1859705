package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// EncodeGIF writes frames as a looping animation. delay is in hundredths
// of a second. When width is positive and smaller than the frames they are
// scaled down to it, keeping the aspect ratio.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay, width int) error {
	if len(frames) == 0 {
		return fmt.Errorf("render: no frames to encode")
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		b := frame.Bounds()
		if width > 0 && width < b.Dx() {
			b = image.Rect(0, 0, width, b.Dy()*width/b.Dx())
		}
		p := image.NewPaletted(b, palette.Plan9)
		if b == frame.Bounds() {
			draw.FloydSteinberg.Draw(p, b, frame, frame.Bounds().Min)
		} else {
			scaled := image.NewRGBA(b)
			draw.ApproxBiLinear.Scale(scaled, b, frame, frame.Bounds(), draw.Src, nil)
			draw.FloydSteinberg.Draw(p, b, scaled, image.Point{})
		}
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// SaveGIF is EncodeGIF to a file.
func SaveGIF(path string, frames []*image.RGBA, delay, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames, delay, width); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNGs writes frame_0000.png, frame_0001.png, ... into dir and
// returns the paths.
func WritePNGs(dir string, frames []*image.RGBA) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(frames))
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		if err := png.Encode(f, frame); err != nil {
			f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
