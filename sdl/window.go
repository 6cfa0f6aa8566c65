package sdl

import (
	"github.com/serpiente/conway/config"
	"github.com/serpiente/conway/util"
	"github.com/veandco/go-sdl2/sdl"
)

// Window draws a Board as filled squares on an SDL renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	cellSize int32
}

func NewWindow(cfg config.Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow("Conway!", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.WindowWidth), int32(cfg.WindowHeight), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	// The logical size keeps cells square when the window is resized.
	if cfg.Width > 0 && cfg.Height > 0 {
		if err := renderer.SetLogicalSize(int32(cfg.Width*cfg.CellSize), int32(cfg.Height*cfg.CellSize)); err != nil {
			renderer.Destroy()
			window.Destroy()
			sdl.Quit()
			return nil, err
		}
	}

	return &Window{
		window:   window,
		renderer: renderer,
		cellSize: int32(cfg.CellSize),
	}, nil
}

func (w *Window) Destroy() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

// RenderFrame clears the window and draws every live cell of board.
func (w *Window) RenderFrame(board *util.Board) error {
	bg, live := util.Background, util.LiveCell
	if err := w.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(live.R, live.G, live.B, live.A); err != nil {
		return err
	}

	var err error
	board.Each(func(p util.Point) {
		if err != nil {
			return
		}
		err = w.renderer.FillRect(&sdl.Rect{
			X: int32(p.X) * w.cellSize,
			Y: int32(p.Y) * w.cellSize,
			W: w.cellSize,
			H: w.cellSize,
		})
	})
	if err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

// PollEvent returns the next pending SDL event, or nil.
func (w *Window) PollEvent() sdl.Event {
	return sdl.PollEvent()
}
