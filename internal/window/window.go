// Package window shows the animation in a desktop window drawn with raylib.
package window

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/rastermatrix/internal/driver"
	"github.com/san-kum/rastermatrix/internal/surface"
)

var (
	colHUD    = rl.NewColor(180, 180, 180, 255)
	colHUDDim = rl.NewColor(60, 60, 60, 255)
)

// Surface draws through raylib's immediate-mode API. It is only valid
// between BeginDrawing and EndDrawing.
type Surface struct {
	font    surface.Font
	align   surface.Align
	measure func(text string, size int32) int32
}

var _ surface.TextSurface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{font: surface.DefaultFont, measure: rl.MeasureText}
}

func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	if c == nil {
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRL(c))
}

func (s *Surface) SetFont(f surface.Font) { s.font = f }

func (s *Surface) SetTextAlign(a surface.Align) { s.align = a }

// FillText treats y as the text baseline.
func (s *Surface) FillText(text string, x, y int, c color.Color) {
	if c == nil {
		return
	}
	size := int32(s.font.Size)
	px, py := s.textOrigin(text, x, y)
	rl.DrawText(text, px, py, size, toRL(c))
	if s.font.Bold {
		rl.DrawText(text, px+1, py, size, toRL(c))
	}
}

// textOrigin converts an aligned baseline position to raylib's top-left.
func (s *Surface) textOrigin(text string, x, y int) (int32, int32) {
	size := int32(s.font.Size)
	px := int32(x)
	switch s.align {
	case surface.AlignCenter:
		px -= s.measure(text, size) / 2
	case surface.AlignRight:
		px -= s.measure(text, size)
	}
	return px, int32(y) - size
}

func toRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

// Options configures the window.
type Options struct {
	Width, Height int
	Title         string
	FPS           int
	Background    color.Color
	ShowHUD       bool
	Logger        *slog.Logger
}

// Run opens a window and steps drv once per frame until the window is
// closed, Q is pressed or ctx is done. It must be called from the main
// goroutine.
func Run(ctx context.Context, drv *driver.Driver, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "rastermatrix"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	bg := rl.Black
	if opts.Background != nil {
		bg = toRL(opts.Background)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)

	opts.Logger.Info("window opened", "width", opts.Width, "height", opts.Height, "fps", opts.FPS)

	s := NewSurface()
	running := true
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		step := running
		switch {
		case rl.IsKeyPressed(rl.KeyQ):
			return nil
		case rl.IsKeyPressed(rl.KeySpace):
			running = !running
		case rl.IsKeyPressed(rl.KeyR):
			drv.Reset()
		case rl.IsKeyPressed(rl.KeyN) && !running:
			step = true
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		if step {
			if err := drv.Step(ctx, s); err != nil {
				rl.EndDrawing()
				return fmt.Errorf("window frame: %w", err)
			}
		} else {
			// immediate mode: paused frames are redrawn from the matrix
			drv.Matrix().Render(s, nil)
		}
		if opts.ShowHUD {
			drawHUD(drv, running, opts.Height)
		}
		rl.EndDrawing()
	}
	return nil
}

func drawHUD(drv *driver.Driver, running bool, height int) {
	status := "RUNNING"
	col := colHUD
	if !running {
		status = "PAUSED"
		col = colHUDDim
	}
	y := int32(height) - 20
	rl.DrawText(status, 10, y, 14, col)
	rl.DrawText(fmt.Sprintf("cap %d/%d  %d FPS", drv.Stats().MaxIterations, drv.Animation().MaxIterations, rl.GetFPS()), 90, y, 14, colHUDDim)
	rl.DrawText("[SPACE] PAUSE  [N] STEP  [R] RESET  [Q] QUIT", 10, y-18, 12, colHUDDim)
}
