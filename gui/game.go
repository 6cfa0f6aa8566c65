// Package gui draws a running simulation in an ebiten window with a small
// heads-up display.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/serpiente/conway/config"
	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/util"
	"github.com/serpiente/conway/view"
)

var hudColour = color.White

// maxEventsPerTick bounds how long Update spends draining events so a
// burst of flips never stalls a frame.
const maxEventsPerTick = 256

// Game implements ebiten.Game.
type Game struct {
	cfg        config.Config
	events     <-chan gol.Event
	keyPresses chan<- rune
	view       *view.View
	closed     bool
	quitSent   bool
}

func NewGame(cfg config.Config, events <-chan gol.Event, keyPresses chan<- rune) *Game {
	return &Game{
		cfg:        cfg,
		events:     events,
		keyPresses: keyPresses,
		view:       view.New(cfg.Width, cfg.Height),
	}
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sendKey('p')
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sendKey('q')
	}
	if ebiten.IsWindowBeingClosed() && !g.quitSent {
		g.quitSent = g.sendKey('q')
	}

drain:
	for i := 0; i < maxEventsPerTick; i++ {
		select {
		case event, ok := <-g.events:
			if !ok {
				g.closed = true
				break drain
			}
			if _, err := g.view.Apply(event); err != nil {
				return err
			}
		default:
			break drain
		}
	}

	if g.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(util.Background)
	size := float64(g.cfg.CellSize)
	g.view.Board.Each(func(p util.Point) {
		ebitenutil.DrawRect(screen, float64(p.X)*size, float64(p.Y)*size, size, size, util.LiveCell)
	})
	text.Draw(screen, g.view.Status(), basicfont.Face7x13, 6, 16, hudColour)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width*g.cfg.CellSize, g.cfg.Height*g.cfg.CellSize
	if w == 0 || h == 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}

// sendKey reports whether the key fit in the channel.
func (g *Game) sendKey(key rune) bool {
	select {
	case g.keyPresses <- key:
		return true
	default:
		return false
	}
}

// Run opens the window and blocks until the simulation ends or the
// window is closed. It must be called from the main goroutine.
func Run(cfg config.Config, events <-chan gol.Event, keyPresses chan<- rune) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Conway!")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.FrameRate)

	return ebiten.RunGame(NewGame(cfg, events, keyPresses))
}
