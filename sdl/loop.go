package sdl

import (
	"log"

	"github.com/serpiente/conway/config"
	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/view"
	"github.com/veandco/go-sdl2/sdl"
)

var logger = log.New(log.Writer(), "sdl: ", log.LstdFlags)

// Run draws events from a running simulation until the events channel is
// closed. It must be called from the main goroutine.
func Run(cfg config.Config, events <-chan gol.Event, keyPresses chan<- rune) error {
	w, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	defer w.Destroy()

	v := view.New(cfg.Width, cfg.Height)
	var closing quitter
	for {
		for event := w.PollEvent(); event != nil; event = w.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				closing.requested = true
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_p:
					sendKey(keyPresses, 'p')
				case sdl.K_q, sdl.K_ESCAPE:
					sendKey(keyPresses, 'q')
				}
			}
		}
		closing.forward(keyPresses)

		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			redraw, err := v.Apply(event)
			if err != nil {
				return err
			}
			if _, ok := event.(gol.CellsFlipped); !ok && len(event.String()) > 0 {
				logger.Printf("Completed Turns %-8v%v", event.GetCompletedTurns(), event)
			}
			if redraw {
				if err := w.RenderFrame(v.Board); err != nil {
					return err
				}
			}
		default:
			sdl.Delay(1)
		}
	}
}

// sendKey forwards a key without blocking; the distributor drains the
// buffered channel between frames. It reports whether the key was taken.
func sendKey(keyPresses chan<- rune, key rune) bool {
	select {
	case keyPresses <- key:
		return true
	default:
		return false
	}
}

// quitter turns a window close into a single 'q', retried on every pass
// of the loop until the key channel has room.
type quitter struct {
	requested bool
	sent      bool
}

func (q *quitter) forward(keyPresses chan<- rune) {
	if q.requested && !q.sent {
		q.sent = sendKey(keyPresses, 'q')
	}
}
