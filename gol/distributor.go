package gol

import (
	"time"

	"github.com/serpiente/conway/util"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// stepClock converts wall-clock time into a number of fixed simulation
// steps. Time that would exceed maxSteps in one frame is dropped so a slow
// host never falls further and further behind.
type stepClock struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

func newStepClock(updatesPerSecond, maxSteps int) *stepClock {
	step := time.Second
	if updatesPerSecond > 1 {
		step /= time.Duration(updatesPerSecond)
	}
	if step < 1 {
		step = 1
	}
	return &stepClock{
		step:     step,
		maxSteps: maxSteps,
	}
}

// advance adds elapsed to the clock and returns how many steps are due.
func (c *stepClock) advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	steps := int(c.acc / c.step)
	if c.maxSteps > 0 && steps > c.maxSteps {
		c.acc %= c.step
		return c.maxSteps
	}
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// distributor drives the world at the requested rate and reports each frame
// to the host.
func distributor(p Params, world *Grid, c distributorChannels) {
	turn := 0
	shown := make([]bool, world.Len())

	c.events <- StateChange{turn, Executing}
	sendFlipped(world, shown, turn, c.events)
	c.events <- TurnComplete{turn}

	clock := newStepClock(p.UpdatesPerSecond, p.MaxCatchUp)
	frames := time.NewTicker(time.Second / time.Duration(p.FrameRate))
	defer frames.Stop()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	last := time.Now()
	paused := false
	quit := false

	for !quit && !finished(p, turn) {
		select {
		case key, ok := <-c.keyPresses:
			if !ok {
				c.keyPresses = nil
				continue
			}
			wasPaused := paused
			quit = handleKeyPress(key, c, &paused, turn)
			if wasPaused && !paused {
				last = time.Now()
			}
		case <-ticker.C:
			c.events <- AliveCellsCount{turn, world.AliveCount()}
		case now := <-frames.C:
			if paused {
				continue
			}
			steps := clock.advance(now.Sub(last))
			last = now
			for i := 0; i < steps && !finished(p, turn); i++ {
				world.Update()
				turn++
			}
			if steps > 0 {
				sendFlipped(world, shown, turn, c.events)
				c.events <- TurnComplete{turn}
			}
		}
	}

	c.events <- FinalTurnComplete{turn, world.AlivePoints()}
	c.events <- StateChange{turn, Quitting}
	close(c.events)
}

func finished(p Params, turn int) bool {
	return p.Turns > 0 && turn >= p.Turns
}

// handleKeyPress applies a key from the host and reports whether the run
// should stop.
func handleKeyPress(key rune, c distributorChannels, paused *bool, turn int) bool {
	switch key {
	case 'p':
		*paused = !*paused
		if *paused {
			c.events <- StateChange{turn, Paused}
		} else {
			c.events <- StateChange{turn, Executing}
		}
	case 'q':
		return true
	}
	return false
}

// sendFlipped reports the cells whose liveness differs from what the host
// last saw and records the new state in shown.
func sendFlipped(world *Grid, shown []bool, turn int, events chan<- Event) {
	var flipped []util.Point
	world.Each(func(i int, cell Cell) {
		if cell.IsAlive() != shown[i] {
			shown[i] = cell.IsAlive()
			flipped = append(flipped, cell.Point())
		}
	})
	if len(flipped) > 0 {
		events <- CellsFlipped{turn, flipped}
	}
}
