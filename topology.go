package batransit

import (
	"context"
	"log"
	"time"
)

// TopologyIndex maps SOFSE branch ids to lines and back. It is built from the
// gerencias and ramales endpoints and replaced wholesale when it expires;
// readers always see a complete snapshot.
type TopologyIndex struct {
	GeneratedAt    time.Time
	LineByRamal    map[int]Line
	NameByRamal    map[int]string
	RamalsByLine   map[Line][]int
	GerenciaByLine map[Line]int
}

// LinesForRamals returns the distinct lines covering the given branch ids, in
// first-seen order. Unknown branches are skipped.
func (idx *TopologyIndex) LinesForRamals(ramalIDs []int) []Line {
	seen := make(map[Line]bool)
	var lines []Line
	for _, id := range ramalIDs {
		line, ok := idx.LineByRamal[id]
		if !ok || seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return lines
}

// trainTopology returns the current topology index, rebuilding it when older
// than the configured TTL. A failed rebuild returns the error; the previous
// index is not served stale.
func (c *Client) trainTopology(ctx context.Context) (*TopologyIndex, error) {
	c.mu.Lock()
	idx := c.topology
	c.mu.Unlock()

	if idx != nil && c.now().Sub(idx.GeneratedAt) < c.topologyTTL {
		return idx, nil
	}

	gerencias, err := c.sofse.Gerencias(ctx)
	if err != nil {
		return nil, err
	}

	next := &TopologyIndex{
		GeneratedAt:    c.now(),
		LineByRamal:    make(map[int]Line),
		NameByRamal:    make(map[int]string),
		RamalsByLine:   make(map[Line][]int),
		GerenciaByLine: make(map[Line]int),
	}

	for _, g := range gerencias {
		line, ok := trainLineForGerencia(g.ID)
		if !ok {
			continue
		}
		next.GerenciaByLine[line] = g.ID

		ramales, err := c.sofse.Ramales(ctx, g.ID)
		if err != nil {
			return nil, err
		}

		ids := make([]int, 0, len(ramales))
		for _, r := range ramales {
			next.LineByRamal[r.ID] = line
			next.NameByRamal[r.ID] = r.Nombre
			ids = append(ids, r.ID)
		}
		next.RamalsByLine[line] = ids
	}

	log.Printf("train topology rebuilt: %d ramales across %d lines", len(next.LineByRamal), len(next.GerenciaByLine))

	c.mu.Lock()
	c.topology = next
	c.mu.Unlock()

	return next, nil
}
