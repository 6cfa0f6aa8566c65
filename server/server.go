package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"net/rpc"
	"sync"

	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/stubs"
)

var logger = log.New(log.Writer(), "server: ", log.LstdFlags)

var ErrBadRequest = errors.New("bad request")

// Engine evolves worlds on behalf of remote clients.
type Engine struct {
	mu    sync.Mutex
	alive int
	turn  int
}

// Evolve advances the requested world by req.Turns generations.
func (e *Engine) Evolve(req stubs.Request, res *stubs.Response) error {
	if req.Width < 0 || req.Height < 0 || (req.Height != 0 && req.Width > math.MaxInt/req.Height) {
		return fmt.Errorf("%w: %dx%d world", ErrBadRequest, req.Width, req.Height)
	}
	if len(req.Cells) != req.Width*req.Height {
		return fmt.Errorf("%w: %d cells for a %dx%d world", ErrBadRequest, len(req.Cells), req.Width, req.Height)
	}
	if req.Turns < 0 {
		return fmt.Errorf("%w: %d turns", ErrBadRequest, req.Turns)
	}

	world, err := gol.NewGrid(req.Width, req.Height, gol.NewSequenceSeed(req.Cells), gol.WithThreads(req.Threads))
	if err != nil {
		return err
	}
	for t := 0; t < req.Turns && world.Len() > 0; t++ {
		world.Update()
	}

	res.Cells = make([]bool, world.Len())
	world.Each(func(i int, c gol.Cell) {
		res.Cells[i] = c.IsAlive()
	})
	res.Alive = world.AlivePoints()
	res.CompletedTurns = req.Turns

	e.mu.Lock()
	e.alive = len(res.Alive)
	e.turn = req.Turns
	e.mu.Unlock()

	logger.Printf("evolved %dx%d world for %d turns, %d alive", req.Width, req.Height, req.Turns, len(res.Alive))
	return nil
}

// AliveCells reports the alive count of the last evolved world.
func (e *Engine) AliveCells(req stubs.Request, res *stubs.AliveResponse) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	res.CellsCount = e.alive
	res.CompletedTurns = e.turn
	return nil
}

func serve(listener net.Listener, engine *Engine) error {
	server := rpc.NewServer()
	if err := server.Register(engine); err != nil {
		return err
	}
	server.Accept(listener)
	return nil
}

func main() {
	pAddr := flag.String("port", ":8030", "Port to listen on")
	flag.Parse()

	listener, err := net.Listen("tcp", *pAddr)
	if err != nil {
		logger.Fatalf("listening on %s: %v", *pAddr, err)
	}
	defer listener.Close()

	logger.Printf("listening on %s", listener.Addr())
	if err := serve(listener, new(Engine)); err != nil {
		logger.Fatalf("serving: %v", err)
	}
}
