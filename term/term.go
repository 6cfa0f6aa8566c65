// Package term draws a running simulation in the terminal. Each cell takes
// two columns so it looks roughly square.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/serpiente/conway/config"
	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/util"
	"github.com/serpiente/conway/view"
)

var (
	deadStyle = tcell.StyleDefault.Background(tcellColor(util.Background))
	liveStyle = tcell.StyleDefault.Background(tcellColor(util.LiveCell))
)

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run takes over the terminal until the events channel is closed.
func Run(cfg config.Config, events <-chan gol.Event, keyPresses chan<- rune) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return run(screen, cfg, events, keyPresses)
}

func run(screen tcell.Screen, cfg config.Config, events <-chan gol.Event, keyPresses chan<- rune) error {
	go pollKeys(screen, keyPresses)

	v := view.New(cfg.Width, cfg.Height)
	for event := range events {
		redraw, err := v.Apply(event)
		if err != nil {
			return err
		}
		if redraw {
			draw(screen, v)
		}
	}
	return nil
}

// pollKeys forwards key presses until the screen is finalised.
func pollKeys(screen tcell.Screen, keyPresses chan<- rune) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				sendKey(keyPresses, 'q')
			case ev.Rune() == 'p':
				sendKey(keyPresses, 'p')
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func sendKey(keyPresses chan<- rune, key rune) {
	select {
	case keyPresses <- key:
	default:
	}
}

// draw renders the status line on row 0 and the board below it.
func draw(screen tcell.Screen, v *view.View) {
	screen.Clear()
	for i, r := range []rune(v.Status()) {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	for y := 0; y < v.Board.Height; y++ {
		for x := 0; x < v.Board.Width; x++ {
			style := deadStyle
			if v.Board.Alive(util.Point{X: x, Y: y}) {
				style = liveStyle
			}
			screen.SetContent(2*x, y+1, ' ', nil, style)
			screen.SetContent(2*x+1, y+1, ' ', nil, style)
		}
	}
	screen.Show()
}
