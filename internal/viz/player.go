package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatrod/internal/experiment"
	"github.com/san-kum/heatrod/internal/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	canvasWidth  = 60
	canvasHeight = 16
	defaultFPS   = 30
)

type TickMsg time.Time

type PlayerOptions struct {
	FPS        int
	VMin, VMax float64
	Theme      string
	Loop       bool
}

// Player steps through the time samples of a result.
type Player struct {
	res      *experiment.Result
	styles   styles
	canvas   *Canvas
	interval time.Duration
	vmin     float64
	vmax     float64
	loop     bool
	means    []float64
	column   []float64
	frame    int
	running  bool

	// One strip value per block, cached per frame.
	memo   *fourier.Memo
	stripX *mat.Dense
	unitT  []float64
}

func NewPlayer(res *experiment.Result, opts PlayerOptions) Player {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	rows, _ := res.Temperature.Dims()
	p := Player{
		res:      res,
		styles:   newStyles(GetTheme(opts.Theme)),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		interval: time.Second / time.Duration(fps),
		vmin:     opts.VMin,
		vmax:     opts.VMax,
		loop:     opts.Loop,
		means:    res.MeanTemperature(),
		column:   make([]float64, rows),
		running:  true,
	}
	if res.Solution != nil {
		xs := make([]float64, canvasWidth)
		floats.Span(xs, 0, 1)
		p.stripX = fourier.Row(xs)
		p.unitT = res.Solution.Time()
		p.memo = fourier.NewMemo(res.Solution, len(res.Times))
	}
	return p
}

// strip returns the values behind the heat strip of the current frame. A
// result loaded without its solution falls back to the stored samples.
func (p Player) strip() []float64 {
	if p.memo == nil {
		return p.column
	}
	row, err := p.memo.Temperature(p.stripX, fourier.Scalar(p.unitT[p.frame]))
	if err != nil {
		return p.column
	}
	return row.RawRowView(0)
}

func (p Player) Frame() int    { return p.frame }
func (p Player) Running() bool { return p.running }

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.running = !p.running
		}
		return p, nil

	case TickMsg:
		if p.running {
			p.advance()
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) advance() {
	last := len(p.res.Times) - 1
	switch {
	case p.frame < last:
		p.frame++
	case p.loop:
		p.frame = 0
	default:
		p.running = false
	}
}

func (p Player) View() string {
	mat.Col(p.column, p.frame, p.res.Temperature)
	p.canvas.Clear()
	p.canvas.Plot(p.column, p.vmin, p.vmax)

	left := p.styles.canvas.Render(p.canvas.String() + "\n" + HeatStrip(p.strip(), canvasWidth, p.vmin, p.vmax))

	var s strings.Builder
	s.WriteString(p.styles.header.Render(strings.ToUpper(p.res.Name)) + "\n")
	if !p.running {
		s.WriteString(p.styles.paused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString("PLAYING\n\n")
	}

	if hist := p.means[:p.frame+1]; len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean T"))
		s.WriteString(p.styles.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(p.styles.label.Render(label) + p.styles.value.Render(value) + "\n")
	}
	row("Boundary", p.res.Boundary.String())
	row("Time", fmt.Sprintf("%.4f", p.res.Times[p.frame]))
	row("Frame", fmt.Sprintf("%d/%d", p.frame+1, len(p.res.Times)))
	row("Mean T", fmt.Sprintf("%.4f", p.means[p.frame]))
	row("Terms", fmt.Sprintf("%d", p.res.Solution.Terms()))

	s.WriteString(p.styles.help.Render("SP:Pause  Q:Quit"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, p.styles.stats.Render(s.String()))
}
