package generator

import "github.com/vanshika/recordfactory/pkg/factory"

// Request asks for Count records of one kind.
type Request struct {
	Kind    factory.Kind
	Count   int
	Options factory.Options
}

// Config drives the batch generator.
type Config struct {
	Requests []Request
	Workers  int
	Seed     int64
}

const (
	defaultCountPerKind = 10
	defaultWorkers      = 4
	defaultSeed         = 42
)

// DefaultConfig asks for a handful of every record kind.
func DefaultConfig() Config {
	return Config{
		Requests: AllKinds(defaultCountPerKind, nil),
		Workers:  defaultWorkers,
		Seed:     defaultSeed,
	}
}

// AllKinds builds one request per record kind, sharing count and options.
func AllKinds(count int, opts factory.Options) []Request {
	kinds := factory.Kinds()
	reqs := make([]Request, 0, len(kinds))
	for _, k := range kinds {
		reqs = append(reqs, Request{Kind: k, Count: count, Options: opts})
	}
	return reqs
}
