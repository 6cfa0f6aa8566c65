package gol

// Params provides the details of how to run the Game of Life and which
// world size to use.
type Params struct {
	Threads     int
	ImageWidth  int
	ImageHeight int
	Turns       int // 0 runs until the host quits

	UpdatesPerSecond int
	FrameRate        int
	MaxCatchUp       int // most updates applied in a single frame

	Seed    int64
	Density float64
}

const (
	defaultUpdatesPerSecond = 20
	defaultFrameRate        = 60
	defaultMaxCatchUp       = 8
)

// MaxRate is the highest frame rate or update rate a run accepts.
const MaxRate = 1000

func (p Params) withDefaults() Params {
	if p.UpdatesPerSecond <= 0 {
		p.UpdatesPerSecond = defaultUpdatesPerSecond
	}
	if p.UpdatesPerSecond > MaxRate {
		p.UpdatesPerSecond = MaxRate
	}
	if p.FrameRate <= 0 {
		p.FrameRate = defaultFrameRate
	}
	if p.FrameRate > MaxRate {
		p.FrameRate = MaxRate
	}
	if p.MaxCatchUp <= 0 {
		p.MaxCatchUp = defaultMaxCatchUp
	}
	return p
}

// Run seeds a random world from p and starts simulating it. Events are
// sent on events, which is closed once the run ends.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {
	p = p.withDefaults()
	world, err := NewGrid(p.ImageWidth, p.ImageHeight, NewRandomSeed(p.Seed, p.Density), WithThreads(p.Threads))
	if err != nil {
		go func() {
			events <- ErrorEvent{Err: err}
			close(events)
		}()
		return
	}
	RunWorld(p, world, events, keyPresses)
}

// RunWorld simulates an existing world. The distributor owns world until
// events is closed.
func RunWorld(p Params, world *Grid, events chan<- Event, keyPresses <-chan rune) {
	c := distributorChannels{
		events:     events,
		keyPresses: keyPresses,
	}
	go distributor(p.withDefaults(), world, c)
}
