package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/metrics"
	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/scene"
	"github.com/san-kum/hidden/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	historyCapacity = 600
	wideStroke      = 6 // strokes at least this wide are inked twice
)

type TickMsg time.Time

type Options struct {
	Seed  int64
	FPS   int
	Theme string
	Clock sim.Clock // nil means wall time
}

// Model runs one session in the terminal. The canvas dot grid is the
// session's screen, so one dot is one pixel of airflow.
type Model struct {
	driver       *sim.Driver
	backdrop     *scene.Backdrop
	rng          *rand.Rand
	canvas       *Canvas
	population   *metrics.Population
	speed        *metrics.MeanSpeed
	info         sim.FrameInfo
	theme        Theme
	styles       styles
	tick         time.Duration
	showBackdrop bool
	width        int
	height       int
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	clock := opts.Clock
	if clock == nil {
		clock = sim.NewWallClock()
	}

	canvas := NewCanvas(defaultCols, defaultRows)
	geom := physics.Geometry{Width: float64(canvas.DotsWide()), Height: float64(canvas.DotsHigh())}
	driver := sim.NewSession(geom, opts.Seed, clock)

	pop := metrics.NewPopulation(historyCapacity)
	speed := metrics.NewMeanSpeed()
	driver.AddObserver(pop)
	driver.AddObserver(speed)

	theme := GetTheme(opts.Theme)
	return Model{
		driver:       driver,
		backdrop:     scene.NewBackdrop(noise.NewPerlin(opts.Seed + 1)),
		rng:          rand.New(rand.NewSource(opts.Seed + 2)),
		canvas:       canvas,
		population:   pop,
		speed:        speed,
		theme:        theme,
		styles:       newStyles(theme),
		tick:         time.Second / time.Duration(opts.FPS),
		showBackdrop: true,
		width:        defaultCols + panelWidth + 1,
		height:       defaultRows + 1,
	}
}

func (m Model) Init() tea.Cmd {
	return m.nextTick()
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Driver() *sim.Driver { return m.driver }
func (m Model) Canvas() *Canvas     { return m.canvas }

// Update handles input events and steps the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.driver.Start()
		case "b":
			m.showBackdrop = !m.showBackdrop
		case "t":
			m.theme = m.theme.next()
			m.styles = newStyles(m.theme)
		}
	case tea.MouseMsg:
		m.pointer(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.step()
		return m, m.nextTick()
	}
	return m, nil
}

// pointer forwards the left button to the driver. Cells outside the
// canvas clamp to its edge.
func (m *Model) pointer(msg tea.MouseMsg) {
	col := max(0, min(msg.X, m.canvas.Width-1))
	row := max(0, min(msg.Y, m.canvas.Height-1))
	pos := m.canvas.CellCenter(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.driver.PointerDown(pos)
		}
	case tea.MouseActionMotion:
		m.driver.PointerMove(pos)
	case tea.MouseActionRelease:
		m.driver.PointerMove(pos)
		m.driver.PointerUp()
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.canvas.Resize(w-panelWidth-1, h-1)
	m.driver.Resize(float64(m.canvas.DotsWide()), float64(m.canvas.DotsHigh()))
}

func (m *Model) step() {
	m.info = m.driver.Tick()
	if m.info.Phase != sim.Idle {
		m.backdrop.Advance()
	}
	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear()
	var b *scene.Backdrop
	if m.showBackdrop {
		b = m.backdrop
	}
	fr := scene.Compose(m.driver.Field(), b, m.rng)
	for _, l := range fr.Background {
		m.canvas.Polyline(l.Points, dynamo.Vec2{})
	}
	for _, tr := range fr.Trails {
		m.canvas.Polyline(tr.Points, dynamo.Vec2{})
		if tr.Stroke.Width >= wideStroke {
			m.canvas.Polyline(tr.Points, dynamo.V(0, 1))
		}
	}
}

func (m Model) View() string {
	if m.driver.Phase() == sim.Idle {
		return m.titleView()
	}
	canvasView := m.styles.canvas.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.panelView())
}

func (m Model) titleView() string {
	body := m.styles.title.Render("h i d d e n") + "\n\n" +
		m.styles.value.Render("drag to slice the airflow") + "\n" +
		m.styles.value.Render("it fades after a minute alone") + "\n\n" +
		m.styles.help.Render("S start   T theme   Q quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.box.Render(body))
}

func (m Model) panelView() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.header.Render(strings.ToUpper(m.info.Phase.String())) + "\n")
	b.WriteString(s.label.Render("Frame") + s.value.Render(fmt.Sprintf("%d", m.info.Frame)) + "\n")
	b.WriteString(s.label.Render("Particles") + s.value.Render(fmt.Sprintf("%d", m.info.Population)) + "\n")

	left := m.info.UntilFade()
	b.WriteString(s.label.Render("Fades in") + s.value.Render(fmt.Sprintf("%.0fs", left.Seconds())) + "\n")
	b.WriteString(ProgressBar(float64(left)/float64(physics.FadeAfter), panelWidth-4) + "\n")

	if hist := m.population.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.LowerBound(0),
			asciigraph.Caption("Population"))
		b.WriteString(s.graph.Render(chart) + "\n")
	}

	b.WriteString(s.label.Render("Speed") + Sparkline(m.speed.History(), panelWidth-16) + "\n")

	blade := "sheathed"
	if m.info.Pointer.Active {
		blade = "drawn"
	}
	b.WriteString(s.label.Render("Blade") + s.value.Render(blade) + "\n")
	b.WriteString(s.help.Render("drag:slice  B:backdrop\nT:" + m.theme.Name + "  Q:quit"))

	return s.panel.Height(m.canvas.Height).Render(b.String())
}

// Run starts the terminal program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
