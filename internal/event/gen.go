package event

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/segmentio/ksuid"
)

var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var names = []string{"connect", "query", "commit", "rollback", "evict", "flush"}

// Generator produces a deterministic sequence of synthetic events.
type Generator struct {
	rng *rand.Rand
	seq int
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Next() (*Event, error) {
	payload := make([]byte, 16)
	g.rng.Read(payload)
	id, err := ksuid.FromParts(epoch.Add(time.Duration(g.seq)*time.Second), payload)
	if err != nil {
		return nil, err
	}
	g.seq++
	e := &Event{
		ID:      id,
		Name:    names[g.rng.Intn(len(names))],
		Elapsed: time.Duration(g.rng.Int63n(int64(time.Minute))),
		// Quarters up to 64 are exact in half precision.
		Weight: float32(g.rng.Intn(256)) / 4,
	}
	for k := g.rng.Intn(4); k > 0; k-- {
		e.Tags = append(e.Tags, fmt.Sprintf("t%d", g.rng.Intn(16)))
	}
	if g.rng.Intn(3) > 0 {
		score := g.rng.Float64()
		e.Score = &score
	}
	if g.rng.Intn(4) == 0 {
		e.Status = Text(fmt.Sprintf("error %d", g.rng.Intn(100)))
	} else {
		e.Status = Code(int64(g.rng.Intn(600)))
	}
	for k := g.rng.Intn(3); k > 0; k-- {
		sample := make([]int64, g.rng.Intn(5))
		for j := range sample {
			sample[j] = g.rng.Int63n(1000) - 500
		}
		e.Samples = append(e.Samples, sample)
	}
	return e, nil
}
