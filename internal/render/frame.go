package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/experiment"
	"github.com/san-kum/heatrod/internal/lattice"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrFrameIndex = errors.New("render: frame index out of range")

const margin = 24

type Options struct {
	Width, Height int
	VMin, VMax    float64
	HeatColumns   int
	HeatRows      int
	HeatHeight    float64
	Colormap      Colormap
}

// OptionsFrom copies the render section of a config.
func OptionsFrom(rc config.RenderConfig) Options {
	return Options{
		Width:       rc.Width,
		Height:      rc.Height,
		VMin:        rc.VMin,
		VMax:        rc.VMax,
		HeatColumns: rc.HeatColumns,
		HeatRows:    rc.HeatRows,
		HeatHeight:  rc.HeatHeight,
		Colormap:    Plasma,
	}
}

// FrameRenderer draws frames of one result. It is safe for concurrent use.
type FrameRenderer struct {
	opts    Options
	res     *experiment.Result
	lat     *lattice.Lattice
	meshX   *mat.Dense
	meshY   *mat.Dense
	unitT   []float64
	profile image.Rectangle
	strip   image.Rectangle
	atoms   image.Rectangle
}

// NewFrameRenderer prepares the heat-strip mesh and panel layout. lat may
// be nil, in which case the profile panel takes its space.
func NewFrameRenderer(res *experiment.Result, lat *lattice.Lattice, opts Options) (*FrameRenderer, error) {
	if opts.Width < 4*margin || opts.Height < 6*margin {
		return nil, fmt.Errorf("render: frame %dx%d too small", opts.Width, opts.Height)
	}
	if opts.HeatColumns < 1 || opts.HeatRows < 1 {
		return nil, fmt.Errorf("render: heat strip needs at least one cell")
	}
	if !(opts.VMax > opts.VMin) {
		return nil, fmt.Errorf("render: vmax must exceed vmin")
	}
	if opts.Colormap == nil {
		opts.Colormap = Plasma
	}

	r := &FrameRenderer{
		opts:  opts,
		res:   res,
		lat:   lat,
		unitT: res.Solution.Time(),
	}
	r.meshX, r.meshY = meshgrid(opts.HeatColumns, opts.HeatRows, opts.HeatHeight)
	r.layout()
	return r, nil
}

// meshgrid samples [0, 1] x [0, height]; row 0 is the top edge.
func meshgrid(cols, rows int, height float64) (*mat.Dense, *mat.Dense) {
	xs := make([]float64, cols)
	ys := make([]float64, rows)
	if cols > 1 {
		floats.Span(xs, 0, 1)
	}
	if rows > 1 {
		floats.Span(ys, height, 0)
	}
	X := mat.NewDense(rows, cols, nil)
	Y := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		X.SetRow(i, xs)
		for j := 0; j < cols; j++ {
			Y.Set(i, j, ys[i])
		}
	}
	return X, Y
}

func (r *FrameRenderer) layout() {
	w, h := r.opts.Width, r.opts.Height
	inner := h - 2*margin
	profileH, stripH := inner*45/100, inner*20/100
	if r.lat == nil {
		profileH = inner * 75 / 100
	}
	y := margin
	r.profile = image.Rect(margin, y, w-margin, y+profileH)
	y += profileH + margin/2
	r.strip = image.Rect(margin, y, w-margin, y+stripH)
	y += stripH + margin/2
	r.atoms = image.Rect(margin, y, w-margin, h-margin)
}

// Frames is the number of time samples available.
func (r *FrameRenderer) Frames() int {
	return len(r.res.Times)
}

// Render draws frame j.
func (r *FrameRenderer) Render(j int) (*image.RGBA, error) {
	if j < 0 || j >= r.Frames() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameIndex, j, r.Frames())
	}

	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	if err := r.drawProfile(dc, j); err != nil {
		return nil, err
	}
	if r.lat != nil {
		if err := r.drawLattice(dc, j); err != nil {
			return nil, err
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Copy(out, image.Point{}, dc.Image(), dc.Image().Bounds(), draw.Src, nil)

	strip, err := r.heatStrip(j)
	if err != nil {
		return nil, err
	}
	draw.NearestNeighbor.Scale(out, r.strip, strip, strip.Bounds(), draw.Src, nil)

	caption(out, fmt.Sprintf("%s  t = %.4f", r.res.Name, r.res.Times[j]), margin, margin-8)
	return out, nil
}

func (r *FrameRenderer) toPanel(rect image.Rectangle, x, y, ymin, ymax float64) (float64, float64) {
	px := float64(rect.Min.X) + x*float64(rect.Dx())
	py := float64(rect.Max.Y) - (y-ymin)/(ymax-ymin)*float64(rect.Dy())
	return px, py
}

func (r *FrameRenderer) drawProfile(dc *gg.Context, j int) error {
	rect := r.profile
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	if err := dc.Stroke(); err != nil {
		return err
	}

	if err := r.strokeColumn(dc, 0, gg.RGB(0.7, 0.7, 0.7), 1); err != nil {
		return err
	}
	return r.strokeColumn(dc, j, gg.RGB(0.8, 0.1, 0.1), 2)
}

func (r *FrameRenderer) strokeColumn(dc *gg.Context, j int, c gg.RGBA, width float64) error {
	col := mat.Col(nil, j, r.res.Temperature)
	pad := 0.05 * (r.opts.VMax - r.opts.VMin)
	lo, hi := r.opts.VMin-pad, r.opts.VMax+pad

	dc.SetColor(c.Color())
	dc.SetLineWidth(width)
	for i, v := range col {
		px, py := r.toPanel(r.profile, r.res.Space[i]/r.res.Length, clampTo(v, lo, hi), lo, hi)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	return dc.Stroke()
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *FrameRenderer) heatStrip(j int) (*image.NRGBA, error) {
	field, err := r.res.Solution.TemperatureOnMesh(r.meshX, r.meshY, r.unitT[j])
	if err != nil {
		return nil, err
	}
	rows, cols := field.Dims()
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := Normalize(field.At(y, x), r.opts.VMin, r.opts.VMax)
			img.SetNRGBA(x, y, toNRGBA(r.opts.Colormap(v)))
		}
	}
	return img, nil
}

func (r *FrameRenderer) drawLattice(dc *gg.Context, j int) error {
	l := r.lat
	pad := 2 * l.Amplitude
	ymin, ymax := -pad, l.Height+pad
	if ymax == ymin {
		ymin, ymax = -1, 1
	}
	radius := float64(r.atoms.Dx()) / float64(4*max(l.NX, 1))

	for _, p := range l.Positions(r.res.Solution, r.unitT[j]) {
		temp := r.res.Solution.TemperatureAt(p.X, r.unitT[j])
		dc.SetColor(r.opts.Colormap(Normalize(temp, r.opts.VMin, r.opts.VMax)).Color())
		px, py := r.toPanel(r.atoms, p.X, p.Y, ymin, ymax)
		dc.DrawCircle(px, py, radius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func caption(img *image.RGBA, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
