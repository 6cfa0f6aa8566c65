package gol

import "golang.org/x/sync/errgroup"

// strip is a half-open index range [from, to) handled by one worker.
type strip struct {
	from int
	to   int
}

// partition splits n indices into at most workers contiguous strips. The
// remainder goes one extra index at a time to the first strips.
func partition(n, workers int) []strip {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	strips := make([]strip, 0, workers)
	size, remainder := n/workers, n%workers
	from := 0
	for i := 0; i < workers; i++ {
		to := from + size
		if i < remainder {
			to++
		}
		strips = append(strips, strip{from: from, to: to})
		from = to
	}
	return strips
}

// worker fills next[s.from:s.to] from the current generation.
func (g *Grid) worker(s strip) {
	for i := s.from; i < s.to; i++ {
		c := g.cells[i]
		g.next[i] = c.NextState(g.AliveNeighbours(c))
	}
}

// computeNext is phase A of Update. Workers only read cells and only write
// their own strip of next, so no locking is needed.
func (g *Grid) computeNext() {
	strips := partition(len(g.cells), g.threads)
	if len(strips) == 1 {
		g.worker(strips[0])
		return
	}

	var eg errgroup.Group
	for _, s := range strips {
		s := s
		eg.Go(func() error {
			g.worker(s)
			return nil
		})
	}
	// Workers never fail; Wait is the barrier before phase B.
	_ = eg.Wait()
}
