package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vanshika/recordfactory/pkg/factory"
)

// seedStride separates the per-record seed ranges of consecutive requests.
const seedStride = 1_000_003

// ErrInvalidCount is returned when a request asks for a negative number of records.
var ErrInvalidCount = errors.New("record count must not be negative")

// Dataset holds generated records grouped by kind. Kinds keeps first-request order.
type Dataset struct {
	Kinds   []factory.Kind         `json:"kinds"`
	Records map[factory.Kind][]any `json:"records"`
}

// Count returns the number of records across all kinds.
func (d Dataset) Count() int {
	total := 0
	for _, recs := range d.Records {
		total += len(recs)
	}
	return total
}

// Generator produces batches of records for a set of requests.
type Generator struct {
	cfg   Config
	pool  pool
	nowFn func() time.Time
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if len(cfg.Requests) == 0 {
		cfg.Requests = DefaultConfig().Requests
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		pool:  newPool(cfg.Workers),
		nowFn: time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (g *Generator) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		g.nowFn = nowFn
	}
}

// Seed reports the effective seed, which is useful when a random one was chosen.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

type task struct {
	request int
	index   int
}

// Generate synthesises every requested record. Each record uses its own
// factory seeded from its position, so results do not depend on worker
// count. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	reqs := make([]Request, len(g.cfg.Requests))
	results := make([][]any, len(reqs))
	var tasks []task
	for r, req := range g.cfg.Requests {
		kind, err := factory.ParseKind(string(req.Kind))
		if err != nil {
			return Dataset{}, fmt.Errorf("request %d: %w", r, err)
		}
		req.Kind = kind
		reqs[r] = req
		if req.Count < 0 {
			return Dataset{}, fmt.Errorf("request %d (%s): %w", r, req.Kind, ErrInvalidCount)
		}
		results[r] = make([]any, req.Count)
		for i := 0; i < req.Count; i++ {
			tasks = append(tasks, task{request: r, index: i})
		}
	}

	now := g.nowFn().UTC()
	clock := func() time.Time { return now }

	err := g.pool.run(ctx, len(tasks), func(idx int) error {
		t := tasks[idx]
		req := reqs[t.request]
		f := factory.New(g.recordSeed(t)).WithClock(clock)
		rec, err := f.Generate(req.Kind, req.Options)
		if err != nil {
			return fmt.Errorf("generate %s #%d: %w", req.Kind, t.index, err)
		}
		results[t.request][t.index] = rec
		return nil
	})
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{Records: make(map[factory.Kind][]any)}
	for r, req := range reqs {
		if _, seen := ds.Records[req.Kind]; !seen {
			ds.Kinds = append(ds.Kinds, req.Kind)
		}
		ds.Records[req.Kind] = append(ds.Records[req.Kind], results[r]...)
	}
	return ds, nil
}

func (g *Generator) recordSeed(t task) int64 {
	seed := g.cfg.Seed + int64(t.request)*seedStride + int64(t.index)
	if seed == 0 {
		// factory.New treats zero as "pick a random seed".
		seed = 1
	}
	return seed
}
