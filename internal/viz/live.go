package viz

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rastermatrix/internal/driver"
	"github.com/san-kum/rastermatrix/internal/raster"
	"github.com/san-kum/rastermatrix/internal/surface"
)

const (
	historyCapacity = 120
	ceilingStep     = 5
)

// Mode selects how pixels are shown in the terminal.
type Mode int

const (
	// ModeColor draws two truecolor pixels per character cell.
	ModeColor Mode = iota
	// ModeBraille draws 2x4 monochrome dots per character cell.
	ModeBraille
)

// ParseMode accepts "color" or "braille".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "color":
		return ModeColor, nil
	case "braille":
		return ModeBraille, nil
	}
	return ModeColor, fmt.Errorf("viz: unknown mode %q", s)
}

type TickMsg time.Time

// canvas is a terminal surface that renders to a string.
type canvas interface {
	raster.Surface
	Clear()
	String() string
}

// Options configures the live view.
type Options struct {
	Driver *driver.Driver
	Mode   Mode
	// Width and Height are the surface size in pixels.
	Width, Height int
	Background    color.Color
	FrameRate     int
	Theme         string
	Logger        *slog.Logger
}

// Model contains the animation driver, its surface and UI state.
type Model struct {
	ctx       context.Context
	drv       *driver.Driver
	canvas    canvas
	width     int
	height    int
	bg        color.Color
	frameRate int
	running   bool
	showHelp  bool
	theme     Theme
	styles    styles
	coverage  []float64
	logger    *slog.Logger
	err       error
}

// NewModel prepares a live view. The driver is stepped from the Bubble Tea
// event loop only.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var c canvas
	bg := opts.Background
	switch opts.Mode {
	case ModeBraille:
		c = surface.NewBraille((opts.Width+1)/2, (opts.Height+3)/4)
		// any visible background would light every dot
		bg = nil
	default:
		c = surface.NewTerminal(opts.Width, opts.Height)
	}

	theme := GetTheme(opts.Theme)
	return Model{
		ctx:       ctx,
		drv:       opts.Driver,
		canvas:    c,
		width:     opts.Width,
		height:    opts.Height,
		bg:        bg,
		frameRate: opts.FrameRate,
		running:   true,
		theme:     theme,
		styles:    newStyles(theme),
		coverage:  make([]float64, 0, historyCapacity),
		logger:    opts.Logger,
	}
}

// Err returns the error that stopped the animation, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				if err := m.step(); err != nil {
					return m, tea.Quit
				}
			}
		case "r":
			m.drv.Reset()
			m.coverage = m.coverage[:0]
		case "up", "k":
			m.adjustCeiling(ceilingStep)
		case "down", "j":
			m.adjustCeiling(-ceilingStep)
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if err := m.step(); err != nil {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// step draws one frame onto the canvas.
func (m *Model) step() error {
	m.canvas.Clear()
	if m.bg != nil {
		m.canvas.FillRect(0, 0, m.width, m.height, m.bg)
	}
	if err := m.drv.Step(m.ctx, m.canvas); err != nil {
		m.err = err
		m.logger.Error("frame failed", "error", err)
		return err
	}

	m.coverage = append(m.coverage, 100*m.drv.Stats().InsideFraction())
	if len(m.coverage) > historyCapacity {
		m.coverage = m.coverage[1:]
	}
	return nil
}

// adjustCeiling changes the maximum iteration count, keeping the current
// cap inside the new range.
func (m *Model) adjustCeiling(delta int) {
	anim := m.drv.Animation()
	anim.MaxIterations = max(1, anim.MaxIterations+delta)
	if anim.Iterations >= anim.MaxIterations {
		anim.Iterations = anim.MaxIterations
		anim.Sign = -1
	}
}

// View renders the canvas and stats panel.
func (m Model) View() string {
	st := m.styles
	anim := m.drv.Animation()
	stats := m.drv.Stats()

	var s strings.Builder
	s.WriteString(st.header.Render("MANDELBROT") + "\n")
	if m.running {
		s.WriteString(st.run.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.pause.Render("PAUSED") + "\n\n")
	}

	if len(m.coverage) > 1 {
		chart := asciigraph.Plot(m.coverage, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("inside %"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Cap", fmt.Sprintf("%d / %d", stats.MaxIterations, anim.MaxIterations))
	row("Frame", fmt.Sprintf("%d", m.drv.Frames()))
	row("Inside", fmt.Sprintf("%.1f%%", 100*stats.InsideFraction()))
	row("Grid", fmt.Sprintf("%dx%d", m.drv.Matrix().Width(), m.drv.Matrix().Height()))
	row("Theme", m.theme.Name)
	s.WriteString("\n" + st.value.Render(progressBar(float64(stats.MaxIterations)/float64(max(1, anim.MaxIterations)), 24)) + "\n")

	s.WriteString(st.help.Render("─────────────────────\nSP:Pause N:Step R:Reset\n↑↓:Ceiling T:Theme ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  N        - Step one frame (paused)  ║
║  R        - Restart from cap zero    ║
║  Up/K     - Raise ceiling (+5)       ║
║  Down/J   - Lower ceiling (-5)       ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live view and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	m := NewModel(ctx, opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run live view: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
